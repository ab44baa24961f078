package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stayhealthy/booking-api/internal/application"
	"github.com/stayhealthy/booking-api/internal/domain/entity"
	"github.com/stayhealthy/booking-api/pkg/response"
)

// writeServiceError maps service errors onto HTTP statuses. Validation
// errors carry their field map as details.
func writeServiceError(c *gin.Context, err error) {
	if ve := application.AsValidationError(err); ve != nil {
		response.Error(c, http.StatusBadRequest, "validation failed", ve.Fields)
		return
	}
	switch {
	case errors.Is(err, application.ErrDuplicateEmail):
		response.Error(c, http.StatusConflict, "email already registered, please login", nil)
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "invalid email or password", nil)
	case errors.Is(err, application.ErrNotAuthenticated):
		response.Error(c, http.StatusUnauthorized, "please login to continue", nil)
	case errors.Is(err, application.ErrUnknownDoctor):
		response.Error(c, http.StatusNotFound, "doctor not found", nil)
	case errors.Is(err, application.ErrAppointmentNotFound):
		response.Error(c, http.StatusNotFound, "appointment not found", nil)
	default:
		response.Error(c, http.StatusInternalServerError, "internal error", nil)
	}
}

func userView(u *entity.User) gin.H {
	return gin.H{
		"id":    u.ID,
		"role":  u.Role,
		"name":  u.Name,
		"phone": u.Phone,
		"email": u.Email,
	}
}

func doctorView(d entity.Doctor) gin.H {
	return gin.H{
		"id":         d.ID,
		"name":       d.Name,
		"specialty":  d.Specialty,
		"experience": d.Experience,
		"rating":     d.Rating,
		"phone":      d.Phone,
		"avatar":     d.Avatar,
	}
}

func appointmentView(a entity.Appointment) gin.H {
	return gin.H{
		"id":           a.ID,
		"doctor_id":    a.DoctorID,
		"user_id":      a.UserID,
		"doctor_name":  a.DoctorName,
		"specialty":    a.Specialty,
		"patient_name": a.PatientName,
		"phone":        a.Phone,
		"date":         a.Date,
		"time":         a.Time,
		"status":       a.Status,
	}
}

func reviewView(r entity.Review) gin.H {
	return gin.H{
		"id":            r.ID,
		"doctor_id":     r.DoctorID,
		"doctor_name":   r.DoctorName,
		"reviewer_name": r.ReviewerName,
		"text":          r.Text,
		"rating":        r.Rating,
		"date":          r.Date,
	}
}
