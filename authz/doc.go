// Package authz decides whether an authenticated principal may perform an
// operation, based on the closed HR role hierarchy (HR_ADMIN > MANAGER >
// EMPLOYEE).
//
// A Requirement is built once at route-registration time and is immutable
// afterwards. Two strategies exist:
//
//   - exact-set: the principal's role must literally appear in the listed set
//   - at-least: any role at or above the named level is admitted
//
// Misconfigured requirements (empty set, unknown role) fail at construction,
// not at request time.
//
// Usage:
//
//	adminOnly := authz.MustRequireAnyRole(auth.RoleHRAdmin)
//	managers := authz.MustRequireAtLeast(auth.RoleManager)
//
//	r.GET("/reports", authn, authz.Handler(managers), listReports)
package authz
