package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/stayhealthy/booking-api/internal/application"
	handlers "github.com/stayhealthy/booking-api/internal/interface/http"
	"github.com/stayhealthy/booking-api/internal/interface/middleware"
)

// ReviewModule wires review submission and listing.
type ReviewModule struct {
	Handler *handlers.ReviewHandler
	Svc     *application.BookingService
}

func NewReviewModule(h *handlers.ReviewHandler, svc *application.BookingService) *ReviewModule {
	return &ReviewModule{Handler: h, Svc: svc}
}

func (m *ReviewModule) Register(rg *gin.RouterGroup) {
	rg.GET("/reviews", m.Handler.List)

	gated := rg.Group("/")
	gated.Use(middleware.RequireSession(m.Svc))
	{
		gated.POST("/reviews", m.Handler.Submit)
	}
}
