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

type ReviewHandler struct {
	Svc    *application.BookingService
	Logger *logrus.Logger
}

func NewReviewHandler(svc *application.BookingService, logger *logrus.Logger) *ReviewHandler {
	return &ReviewHandler{Svc: svc, Logger: logger}
}

// Submit POST /api/reviews
func (h *ReviewHandler) Submit(c *gin.Context) {
	var in application.ReviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	rv, err := h.Svc.SubmitReview(in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, reviewView(*rv), "review submitted successfully")
}

// List GET /api/reviews?doctor_id=
func (h *ReviewHandler) List(c *gin.Context) {
	var doctorID *int64
	if raw := c.Query("doctor_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "invalid doctor id", nil)
			return
		}
		doctorID = &id
	}
	reviews := h.Svc.ListReviews(doctorID)
	out := make([]gin.H, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, reviewView(r))
	}
	response.Success(c, http.StatusOK, out, "reviews")
}
