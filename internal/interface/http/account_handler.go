package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/stayhealthy/booking-api/internal/application"
	"github.com/stayhealthy/booking-api/pkg/response"
	"github.com/stayhealthy/booking-api/pkg/validation"
)

type AccountHandler struct {
	Svc    *application.BookingService
	Logger *logrus.Logger
}

func NewAccountHandler(svc *application.BookingService, logger *logrus.Logger) *AccountHandler {
	return &AccountHandler{Svc: svc, Logger: logger}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register POST /api/register
func (h *AccountHandler) Register(c *gin.Context) {
	var in application.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Register(in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, userView(u), "registration successful")
}

// Login POST /api/login
func (h *AccountHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Login(req.Email, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, userView(u), "login successful")
}

// Logout POST /api/logout
func (h *AccountHandler) Logout(c *gin.Context) {
	h.Svc.Logout()
	response.Success(c, http.StatusOK, gin.H{"logged_out": true}, "logged out")
}

// Profile GET /api/profile
func (h *AccountHandler) Profile(c *gin.Context) {
	p, err := h.Svc.Profile()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"user":              userView(p.User),
		"appointment_count": p.AppointmentCount,
		"review_count":      p.ReviewCount,
	}, "profile")
}
