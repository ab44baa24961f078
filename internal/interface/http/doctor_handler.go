package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/stayhealthy/booking-api/internal/application"
	"github.com/stayhealthy/booking-api/pkg/response"
)

type DoctorHandler struct {
	Svc    *application.BookingService
	Logger *logrus.Logger
}

func NewDoctorHandler(svc *application.BookingService, logger *logrus.Logger) *DoctorHandler {
	return &DoctorHandler{Svc: svc, Logger: logger}
}

// List GET /api/doctors?q=&specialty=
func (h *DoctorHandler) List(c *gin.Context) {
	docs := h.Svc.SearchDoctors(c.Query("q"), c.Query("specialty"))
	out := make([]gin.H, 0, len(docs))
	for _, d := range docs {
		out = append(out, doctorView(d))
	}
	response.Success(c, http.StatusOK, out, "doctors")
}

// Get GET /api/doctors/:id
func (h *DoctorHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid doctor id", nil)
		return
	}
	d, err := h.Svc.Doctor(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, doctorView(*d), "doctor")
}

// Specialties GET /api/specialties
func (h *DoctorHandler) Specialties(c *gin.Context) {
	response.Success(c, http.StatusOK, h.Svc.Specialties(), "specialties")
}
