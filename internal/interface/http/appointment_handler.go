package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/stayhealthy/booking-api/internal/application"
	"github.com/stayhealthy/booking-api/pkg/response"
	"github.com/stayhealthy/booking-api/pkg/validation"
)

// timeSlots is the fixed slot list the booking form offers.
var timeSlots = []string{
	"9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM",
}

type AppointmentHandler struct {
	Svc    *application.BookingService
	Logger *logrus.Logger
}

func NewAppointmentHandler(svc *application.BookingService, logger *logrus.Logger) *AppointmentHandler {
	return &AppointmentHandler{Svc: svc, Logger: logger}
}

// Book POST /api/appointments
func (h *AppointmentHandler) Book(c *gin.Context) {
	var in application.BookInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	appt, err := h.Svc.BookAppointment(in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, appointmentView(*appt), "appointment booked successfully")
}

// List GET /api/appointments
// Scoped to the session user when logged in, like the original appointments
// page; all appointments otherwise.
func (h *AppointmentHandler) List(c *gin.Context) {
	var forUser *int64
	if u := h.Svc.CurrentUser(); u != nil {
		forUser = &u.ID
	}
	appts := h.Svc.ListAppointments(forUser)
	out := make([]gin.H, 0, len(appts))
	for _, a := range appts {
		out = append(out, appointmentView(a))
	}
	response.Success(c, http.StatusOK, out, "appointments")
}

// Cancel DELETE /api/appointments/:id
// Cancels by id with no ownership check, matching the original behavior.
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid appointment id", nil)
		return
	}
	if err := h.Svc.CancelAppointment(id); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cancelled": true}, "appointment cancelled successfully")
}

// Slots GET /api/appointments/slots
func (h *AppointmentHandler) Slots(c *gin.Context) {
	response.Success(c, http.StatusOK, timeSlots, "time slots")
}
