package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/stayhealthy/booking-api/internal/application"
	handlers "github.com/stayhealthy/booking-api/internal/interface/http"
	"github.com/stayhealthy/booking-api/internal/interface/middleware"
)

// AccountModule wires registration, login, logout and the profile page.
// Public: POST /register, POST /login, POST /logout
// Gated:  GET /profile
type AccountModule struct {
	Handler *handlers.AccountHandler
	Svc     *application.BookingService
}

func NewAccountModule(h *handlers.AccountHandler, svc *application.BookingService) *AccountModule {
	return &AccountModule{Handler: h, Svc: svc}
}

func (m *AccountModule) Register(rg *gin.RouterGroup) {
	rg.POST("/register", m.Handler.Register)
	rg.POST("/login", m.Handler.Login)
	rg.POST("/logout", m.Handler.Logout)

	gated := rg.Group("/")
	gated.Use(middleware.RequireSession(m.Svc))
	{
		gated.GET("/profile", m.Handler.Profile)
	}
}
