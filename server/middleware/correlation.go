package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/peoplekit/authkit/auth/authctx"
)

// CorrelationHeader is the header carrying the request correlation
// identifier in and out of the service.
const CorrelationHeader = "X-Correlation-Id"

// CorrelationID tags every request with a correlation identifier: an
// incoming X-Correlation-Id is honored, otherwise a fresh UUID is minted.
// The identifier is stored in the request context for loggers and echoed on
// the response.
func CorrelationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(CorrelationHeader)
		if id == "" {
			id = uuid.NewString()
		}

		ctx := authctx.WithCorrelationID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(CorrelationHeader, id)
		c.Next()
	}
}
