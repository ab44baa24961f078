package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/stayhealthy/booking-api/internal/interface/http"
)

// DoctorModule exposes the read-only catalog.
type DoctorModule struct {
	Handler *handlers.DoctorHandler
}

func NewDoctorModule(h *handlers.DoctorHandler) *DoctorModule {
	return &DoctorModule{Handler: h}
}

func (m *DoctorModule) Register(rg *gin.RouterGroup) {
	rg.GET("/doctors", m.Handler.List)
	rg.GET("/doctors/:id", m.Handler.Get)
	rg.GET("/specialties", m.Handler.Specialties)
}
