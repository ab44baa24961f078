package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stayhealthy/booking-api/internal/application"
	"github.com/stayhealthy/booking-api/pkg/response"
)

// RequireSession gates routes that need an authenticated user. Requests with
// no active session are rejected with 401 so the client can redirect to
// login. The user id is stored in the context for handlers.
func RequireSession(svc *application.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := svc.CurrentUser()
		if u == nil {
			response.Error(c, http.StatusUnauthorized, "please login to continue", nil)
			c.Abort()
			return
		}
		c.Set("userID", u.ID)
		c.Next()
	}
}
