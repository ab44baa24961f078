package container

import (
	"github.com/sirupsen/logrus"

	"github.com/stayhealthy/booking-api/config"
	"github.com/stayhealthy/booking-api/internal/application"
)

// app-level container to share constructed components across packages.
// The router auto-wires modules from these singletons.

var (
	cfg     *config.Config
	logger  *logrus.Logger
	service *application.BookingService
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config  { return cfg }

func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger  { return logger }

func SetService(s *application.BookingService) { service = s }
func GetService() *application.BookingService  { return service }
