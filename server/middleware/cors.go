package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig configures cross-origin access for the HR dashboard.
type CORSConfig struct {
	// AllowOrigins lists permitted origins. "*" allows any origin but then
	// credentials are not allowed by browsers.
	AllowOrigins []string
	// AllowHeaders lists permitted request headers beyond the CORS-safe set.
	AllowHeaders []string
}

// CORS returns a Gin middleware answering preflight requests and stamping
// CORS headers. The Authorization and X-Correlation-Id headers are always
// allowed since every authenticated dashboard call carries them.
func CORS(cfg CORSConfig) gin.HandlerFunc {
	if len(cfg.AllowOrigins) == 0 {
		cfg.AllowOrigins = []string{"*"}
	}
	allowHeaders := append([]string{"Authorization", "Content-Type", CorrelationHeader}, cfg.AllowHeaders...)
	headerList := strings.Join(allowHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && originAllowed(cfg.AllowOrigins, origin) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", headerList)
			c.Header("Access-Control-Expose-Headers", CorrelationHeader)
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func originAllowed(allowed []string, origin string) bool {
	for _, a := range allowed {
		if a == "*" || strings.EqualFold(a, origin) {
			return true
		}
	}
	return false
}
