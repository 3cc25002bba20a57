package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/peoplekit/authkit/errors"
	"github.com/peoplekit/authkit/logger"
)

// Recovery returns a Gin middleware that recovers from panics, logs the
// stack, and returns the standard INTERNAL_ERROR envelope. The panic value
// never reaches the client.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.WithContext(c.Request.Context()).Error("panic recovered",
					logger.Fields(
						logger.FieldError, fmt.Sprintf("%v", rec),
						"stack", string(debug.Stack()),
						logger.FieldMethod, c.Request.Method,
						logger.FieldPath, c.Request.URL.Path,
					))
				appErr := errors.Internal(fmt.Errorf("panic: %v", rec))
				c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse(c.Request.URL.Path))
			}
		}()
		c.Next()
	}
}
