package endpoint

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Liveness returns a handler for liveness probes. It answers 200 whenever
// the process is serving requests; it deliberately checks nothing else.
func Liveness(serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "alive",
			"service":   serviceName,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// Readiness returns a handler for readiness probes. It consults the
// HealthChecker to decide whether the service can accept traffic.
func Readiness(serviceName string, checker HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "ready"
		httpStatus := http.StatusOK

		if checker != nil {
			for _, r := range checker(c.Request.Context()) {
				if r.Status == StatusUnhealthy {
					status = "not_ready"
					httpStatus = http.StatusServiceUnavailable
					break
				}
			}
		}

		c.JSON(httpStatus, gin.H{
			"status":    status,
			"service":   serviceName,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
