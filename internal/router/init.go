package router

import (
	"github.com/stayhealthy/booking-api/internal/container"
	handlers "github.com/stayhealthy/booking-api/internal/interface/http"
	"github.com/stayhealthy/booking-api/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// adds them to the registry. Called once during startup.
func InitModules(r *Registry) {
	svc := container.GetService()
	logger := container.GetLogger()

	r.Add(modules.NewAccountModule(handlers.NewAccountHandler(svc, logger), svc))
	r.Add(modules.NewDoctorModule(handlers.NewDoctorHandler(svc, logger)))
	r.Add(modules.NewAppointmentModule(handlers.NewAppointmentHandler(svc, logger), svc))
	r.Add(modules.NewReviewModule(handlers.NewReviewHandler(svc, logger), svc))
}
