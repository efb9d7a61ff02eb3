package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-contact-backend/internal/delivery/http/response"
	"go-contact-backend/pkg/apperror"
	"go-contact-backend/pkg/logger"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var valErr *apperror.ValidationError
		if errors.As(err, &valErr) {
			response.ValidationErrors(c, valErr.Messages)
			return
		}

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			// SECURITY: the wrapped cause is logged server-side only; clients
			// get the fixed user-facing message to avoid leaking credentials
			// or relay internals.
			if appErr.Err != nil {
				reqID, _ := c.Get("RequestID")
				logger.Log.Error("request failed", "error", appErr.Err, "request_id", reqID, "path", c.FullPath())
			}
			response.Error(c, appErr.Code, appErr.Message)
			return
		}

		logger.Log.Error("unhandled error", "error", err, "path", c.FullPath())
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.")
	}
}
