package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/peoplekit/authkit/auth"
	"github.com/peoplekit/authkit/auth/authctx"
	"github.com/peoplekit/authkit/auth/token"
	"github.com/peoplekit/authkit/errors"
	"github.com/peoplekit/authkit/logger"
	"github.com/peoplekit/authkit/observability"
)

// AccessVerifier verifies a bearer credential and returns the principal it
// proves. *token.Service satisfies this.
type AccessVerifier interface {
	VerifyAccess(tokenString string) (auth.Principal, error)
}

// AuthnConfig configures the authentication middleware.
type AuthnConfig struct {
	// Verifier verifies extracted bearer tokens (required).
	Verifier AccessVerifier

	// Optional makes a missing Authorization header pass through without a
	// principal instead of failing. A header that is present but invalid
	// still fails: optional means "anonymous allowed", never "broken
	// credentials allowed".
	Optional bool

	// SkipPaths are URL path prefixes that bypass authentication entirely.
	SkipPaths []string

	// Logger receives one event per authentication attempt. Defaults to the
	// global logger.
	Logger *logger.Logger

	// Metrics, when set, records one authn.attempts.total sample per attempt.
	Metrics *observability.AuthMetrics
}

// Authenticate returns a Gin middleware that extracts a Bearer token from
// the Authorization header, verifies it, and attaches the resulting
// Principal to the request context. Each header-shape deviation is rejected
// with its own error code so clients can distinguish a missing credential
// from a malformed one.
func Authenticate(cfg AuthnConfig) gin.HandlerFunc {
	if cfg.Verifier == nil {
		panic("middleware: Authenticate requires a Verifier")
	}
	log := cfg.Logger
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	log = log.WithComponent("authn")

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skip := range cfg.SkipPaths {
			if strings.HasPrefix(path, skip) {
				c.Next()
				return
			}
		}

		fail := func(appErr *errors.AppError) {
			if cfg.Metrics != nil {
				cfg.Metrics.RecordAuthn(c.Request.Context(), logger.OutcomeFailure, string(appErr.Code))
			}
			abortAuthn(c, log, appErr)
		}

		header := c.GetHeader("Authorization")
		if strings.TrimSpace(header) == "" {
			if cfg.Optional {
				c.Next()
				return
			}
			fail(errors.MissingAuthHeader())
			return
		}

		tokenString, appErr := extractBearerToken(header)
		if appErr != nil {
			fail(appErr)
			return
		}

		principal, err := cfg.Verifier.VerifyAccess(tokenString)
		if err != nil {
			fail(mapVerificationError(err))
			return
		}

		ctx := authctx.WithPrincipal(c.Request.Context(), principal)
		c.Request = c.Request.WithContext(ctx)

		if cfg.Metrics != nil {
			cfg.Metrics.RecordAuthn(ctx, logger.OutcomeSuccess, "")
		}
		log.WithContext(ctx).Info("authentication succeeded",
			logger.RequestFields(c.Request.Method, path, logger.OutcomeSuccess))
		c.Next()
	}
}

// extractBearerToken parses an Authorization header known to be non-empty.
// It returns the credential, or the AppError describing the shape violation.
func extractBearerToken(header string) (string, *errors.AppError) {
	fields := strings.Fields(header)
	switch {
	case len(fields) == 1 && strings.EqualFold(fields[0], "Bearer"):
		// Scheme present, credential missing ("Bearer" or "Bearer   ").
		return "", errors.MissingToken()
	case len(fields) != 2:
		return "", errors.InvalidAuthHeaderFormat()
	case !strings.EqualFold(fields[0], "Bearer"):
		return "", errors.InvalidAuthScheme(fields[0])
	default:
		return fields[1], nil
	}
}

// mapVerificationError translates token-module failures into client-facing
// 401 errors. Only expiry gets its own code; every other failure collapses
// into INVALID_TOKEN so the response never reveals why verification failed.
func mapVerificationError(err error) *errors.AppError {
	if verr, ok := token.AsVerificationError(err); ok && verr.Kind == token.KindExpired {
		return errors.TokenExpired()
	}
	return errors.InvalidToken(err)
}

func abortAuthn(c *gin.Context, log *logger.Logger, appErr *errors.AppError) {
	log.WithContext(c.Request.Context()).WithError(appErr).Warn("authentication failed",
		logger.RequestFields(c.Request.Method, c.Request.URL.Path, logger.OutcomeFailure))
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse(c.Request.URL.Path))
}
