package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/peoplekit/authkit/auth/authctx"
	"github.com/peoplekit/authkit/authz"
	"github.com/peoplekit/authkit/errors"
	"github.com/peoplekit/authkit/logger"
	"github.com/peoplekit/authkit/observability"
)

// Authorize returns a Gin middleware enforcing the given requirement against
// the principal attached by Authenticate.
//
// A request with no principal is a 401 UNAUTHENTICATED: reaching an
// authorization check unauthenticated means the route was wired without
// Authenticate, and that misconfiguration must read as "not logged in", not
// as a role denial. A principal whose role fails the requirement is a 403
// FORBIDDEN carrying the role held and the roles required.
func Authorize(req authz.Requirement, opts ...AuthzOption) gin.HandlerFunc {
	cfg := authzConfig{log: nil}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(c *gin.Context) {
		log := cfg.log
		if log == nil {
			log = logger.GetGlobalLogger()
		}
		log = log.WithComponent("authz").WithContext(c.Request.Context())

		record := func(decision string) {
			if cfg.metrics != nil {
				cfg.metrics.RecordAuthz(c.Request.Context(), decision, req.String())
			}
		}

		principal, ok := authctx.PrincipalFrom(c.Request.Context())
		if !ok {
			appErr := errors.Unauthenticated()
			record(logger.OutcomeDenied)
			log.Warn("authorization skipped: no principal",
				logger.RequestFields(c.Request.Method, c.Request.URL.Path, logger.OutcomeDenied))
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse(c.Request.URL.Path))
			return
		}

		if !req.Allows(principal.Role) {
			required := make([]string, 0, 3)
			for _, r := range req.Roles() {
				required = append(required, string(r))
			}
			appErr := errors.Forbidden(string(principal.Role), required)
			record(logger.OutcomeDenied)
			log.Warn("authorization denied", logger.Fields(
				logger.FieldMethod, c.Request.Method,
				logger.FieldPath, c.Request.URL.Path,
				logger.FieldOutcome, logger.OutcomeDenied,
				logger.FieldRequirement, req.String(),
			))
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse(c.Request.URL.Path))
			return
		}

		record(logger.OutcomeAllowed)
		log.Debug("authorization allowed", logger.Fields(
			logger.FieldPath, c.Request.URL.Path,
			logger.FieldOutcome, logger.OutcomeAllowed,
			logger.FieldRequirement, req.String(),
		))
		c.Next()
	}
}

type authzConfig struct {
	log     *logger.Logger
	metrics *observability.AuthMetrics
}

// AuthzOption configures the authorization middleware.
type AuthzOption func(*authzConfig)

// WithAuthzLogger overrides the logger used for authorization decisions.
func WithAuthzLogger(log *logger.Logger) AuthzOption {
	return func(c *authzConfig) { c.log = log }
}

// WithAuthzMetrics records one authz.decisions.total sample per decision.
func WithAuthzMetrics(m *observability.AuthMetrics) AuthzOption {
	return func(c *authzConfig) { c.metrics = m }
}
