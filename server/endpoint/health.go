// Package endpoint provides the unauthenticated system routes every
// deployment of the HR API exposes: health, liveness, and readiness.
package endpoint

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/peoplekit/authkit/version"
)

// Status values reported by health checks.
const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// CheckResult is one dependency's health report.
type CheckResult struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthChecker returns health results for the service's dependencies.
type HealthChecker func(ctx context.Context) []CheckResult

// Health returns a handler that reports service health including dependency
// statuses. Unhealthy dependencies turn the response into a 503.
func Health(serviceName string, checker HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := StatusHealthy
		var results []CheckResult

		if checker != nil {
			results = checker(c.Request.Context())
			for _, r := range results {
				if r.Status == StatusUnhealthy {
					status = StatusUnhealthy
					break
				}
				if r.Status == StatusDegraded {
					status = StatusDegraded
				}
			}
		}

		httpStatus := http.StatusOK
		if status == StatusUnhealthy {
			httpStatus = http.StatusServiceUnavailable
		}

		c.JSON(httpStatus, gin.H{
			"status":     status,
			"service":    serviceName,
			"version":    version.Short(),
			"timestamp":  time.Now().UTC().Format(time.RFC3339),
			"components": results,
		})
	}
}
