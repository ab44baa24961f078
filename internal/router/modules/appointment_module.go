package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/stayhealthy/booking-api/internal/application"
	handlers "github.com/stayhealthy/booking-api/internal/interface/http"
	"github.com/stayhealthy/booking-api/internal/interface/middleware"
)

// AppointmentModule wires booking and the appointments page.
// Listing and cancellation stay open: the page shows all appointments to
// anonymous visitors, and cancel-by-id is unscoped like the original.
type AppointmentModule struct {
	Handler *handlers.AppointmentHandler
	Svc     *application.BookingService
}

func NewAppointmentModule(h *handlers.AppointmentHandler, svc *application.BookingService) *AppointmentModule {
	return &AppointmentModule{Handler: h, Svc: svc}
}

func (m *AppointmentModule) Register(rg *gin.RouterGroup) {
	rg.GET("/appointments", m.Handler.List)
	rg.GET("/appointments/slots", m.Handler.Slots)
	rg.DELETE("/appointments/:id", m.Handler.Cancel)

	gated := rg.Group("/")
	gated.Use(middleware.RequireSession(m.Svc))
	{
		gated.POST("/appointments", m.Handler.Book)
	}
}
