package middleware

import (
	"errors"
	"net/http"

	"stravigo-website-backend/internal/delivery/http/response"
	"stravigo-website-backend/pkg/apperror"
	"stravigo-website-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler translates errors collected on the gin context into the
// standard response envelope. When exposeDetails is set (non-production
// only), the underlying error text is attached for diagnostics; the default
// posture sends nothing but the message.
func ErrorHandler(exposeDetails bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			var detail interface{}
			if exposeDetails && appErr.Err != nil {
				detail = appErr.Err.Error()
			}
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("request failed",
					"path", c.FullPath(),
					"method", c.Request.Method,
					"status", appErr.Code,
					"error", appErr.Err,
				)
			}
			response.Error(c, appErr.Code, appErr.Message, detail)
			return
		}

		// Unclassified errors never leak internals to the client.
		logger.Log.Error("unhandled error",
			"path", c.FullPath(),
			"method", c.Request.Method,
			"error", err,
		)
		var detail interface{}
		if exposeDetails {
			detail = err.Error()
		}
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", detail)
	}
}
