package middleware

import (
	"errors"
	"go-swipehire-backend/internal/delivery/http/response"
	"go-swipehire-backend/pkg/apperror"
	"go-swipehire-backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID tags every request with a correlation id surfaced in the
// response envelope and logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("RequestID", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// ErrorHandler maps errors appended to the gin context onto the response
// envelope. AppErrors keep their status and message; anything else is
// logged server-side and surfaced as a generic retryable failure so
// internals never leak to clients.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Err != nil {
					logger.Log.Error("Request failed", "error", appErr.Err, "path", c.FullPath())
				}
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				logger.Log.Error("Unhandled error", "error", err, "path", c.FullPath())
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
