package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apperrors "github.com/podomus/clinic-api/pkg/errors"
)

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorHandler translates errors attached to the context into JSON
// responses. Application errors keep their message and mapped status;
// anything else is logged and surfaced as a 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		requestID := c.GetString(ContextRequestID)
		lastErr := c.Errors.Last().Err

		var appErr *apperrors.AppError
		if errors.As(lastErr, &appErr) {
			if appErr.Code == apperrors.ErrInternal {
				log.Error().
					Err(appErr).
					Str("request_id", requestID).
					Str("path", c.Request.URL.Path).
					Msg("Request error")
			}
			c.JSON(appErr.StatusCode(), ErrorResponse{
				Status:    "error",
				Message:   appErr.Message,
				RequestID: requestID,
			})
			return
		}

		log.Error().
			Err(lastErr).
			Str("request_id", requestID).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Str("client_ip", c.ClientIP()).
			Msg("Request error")

		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Status:    "error",
			Message:   "internal server error",
			RequestID: requestID,
		})
	}
}
