package authz

import (
	"fmt"
	"strings"

	"github.com/peoplekit/authkit/auth"
)

// Strategy names how a Requirement admits roles.
type Strategy string

const (
	// StrategyExactSet admits only roles literally listed in the requirement.
	StrategyExactSet Strategy = "exact-set"

	// StrategyAtLeast admits any role at or above the required level.
	StrategyAtLeast Strategy = "at-least"
)

// Requirement is an immutable authorization rule attached to a route.
// Construct with RequireAnyRole or RequireAtLeast; the zero value admits
// nothing.
type Requirement struct {
	strategy Strategy
	roles    []auth.Role
}

// RequireAnyRole builds an exact-set requirement admitting only the listed
// roles. At least one role is required and every role must be a member of
// the closed enumeration; misconfiguration is a construction-time error so a
// typo in a route table fails at startup rather than silently denying (or
// admitting) traffic.
func RequireAnyRole(roles ...auth.Role) (Requirement, error) {
	if len(roles) == 0 {
		return Requirement{}, fmt.Errorf("authz: exact-set requirement needs at least one role")
	}
	seen := make(map[auth.Role]bool, len(roles))
	deduped := make([]auth.Role, 0, len(roles))
	for _, r := range roles {
		if !r.Valid() {
			return Requirement{}, fmt.Errorf("authz: unknown role %q in requirement", r)
		}
		if !seen[r] {
			seen[r] = true
			deduped = append(deduped, r)
		}
	}
	return Requirement{strategy: StrategyExactSet, roles: deduped}, nil
}

// RequireAtLeast builds a hierarchy requirement admitting any role at or
// above min.
func RequireAtLeast(min auth.Role) (Requirement, error) {
	if !min.Valid() {
		return Requirement{}, fmt.Errorf("authz: unknown role %q in requirement", min)
	}
	return Requirement{strategy: StrategyAtLeast, roles: []auth.Role{min}}, nil
}

// MustRequireAnyRole is RequireAnyRole that panics on misconfiguration.
// Intended for route tables built at startup.
func MustRequireAnyRole(roles ...auth.Role) Requirement {
	req, err := RequireAnyRole(roles...)
	if err != nil {
		panic(err)
	}
	return req
}

// MustRequireAtLeast is RequireAtLeast that panics on misconfiguration.
func MustRequireAtLeast(min auth.Role) Requirement {
	req, err := RequireAtLeast(min)
	if err != nil {
		panic(err)
	}
	return req
}

// Strategy reports the requirement's admission strategy.
func (r Requirement) Strategy() Strategy { return r.strategy }

// Allows reports whether the given role satisfies the requirement.
// An unknown role is never admitted.
func (r Requirement) Allows(role auth.Role) bool {
	if !role.Valid() {
		return false
	}
	switch r.strategy {
	case StrategyExactSet:
		for _, allowed := range r.roles {
			if role == allowed {
				return true
			}
		}
		return false
	case StrategyAtLeast:
		return role.AtLeast(r.roles[0])
	default:
		return false
	}
}

// Roles returns the concrete set of roles the requirement admits, suitable
// for the requiredRoles field of a denial response. An exact-set requirement
// reports its roles as listed at construction; an at-least requirement
// expands the hierarchy in descending order.
func (r Requirement) Roles() []auth.Role {
	if r.strategy == StrategyExactSet {
		out := make([]auth.Role, len(r.roles))
		copy(out, r.roles)
		return out
	}
	var admitted []auth.Role
	for _, role := range auth.AllRoles() {
		if r.Allows(role) {
			admitted = append(admitted, role)
		}
	}
	return admitted
}

// String renders the requirement for logs.
func (r Requirement) String() string {
	names := make([]string, len(r.roles))
	for i, role := range r.roles {
		names[i] = string(role)
	}
	return fmt.Sprintf("%s(%s)", r.strategy, strings.Join(names, ","))
}

// OwnerOrAtLeast reports whether the principal either owns the resource or
// holds a role at or above min. This is the rule behind "employees see their
// own record, managers see everyone's".
func OwnerOrAtLeast(p auth.Principal, ownerID string, min auth.Role) bool {
	if p.Owns(ownerID) {
		return true
	}
	return p.Role.AtLeast(min)
}
