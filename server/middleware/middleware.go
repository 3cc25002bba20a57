// Package middleware provides the HTTP middleware chain guarding the HR API:
// correlation-ID tagging, authentication, authorization, request logging,
// panic recovery, and CORS.
//
// The chain order matters: CorrelationID runs first so every later event is
// taggable, Authenticate populates the request principal, and Authorize
// consumes it.
//
//	r.Use(middleware.CorrelationID())
//	r.GET("/api/reports",
//	    middleware.Authenticate(middleware.AuthnConfig{Verifier: tokens}),
//	    middleware.Authorize(authz.MustRequireAtLeast(auth.RoleManager)),
//	    listReports)
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Middleware wraps an http.Handler with additional behavior.
// This is the standard Go middleware signature and works with any
// http.Handler, not just routes registered on the Gin engine.
type Middleware func(http.Handler) http.Handler

// Chain composes multiple middleware. The first in the list is the outermost
// (runs first on a request, last on a response).
func Chain(middlewares ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			final = middlewares[i](final)
		}
		return final
	}
}

// GinWrap adapts a standard Middleware for use in a Gin middleware chain.
// Use this when you need to apply a Middleware directly on the Gin engine
// instead of at the server handler level.
func GinWrap(mw Middleware) gin.HandlerFunc {
	return func(c *gin.Context) {
		next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			// Propagate any request modifications (e.g. context values) back to Gin.
			c.Request = r
			c.Next()
		})
		mw(next).ServeHTTP(c.Writer, c.Request)
	}
}
