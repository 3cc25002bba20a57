package auth

import "fmt"

// Role identifies a position in the HR platform's access model.
type Role string

const (
	// RoleHRAdmin has full administrative access to all HR records.
	RoleHRAdmin Role = "HR_ADMIN"

	// RoleManager can act on records of their direct reports.
	RoleManager Role = "MANAGER"

	// RoleEmployee can act on their own records only.
	RoleEmployee Role = "EMPLOYEE"
)

// roleLevels is the closed hierarchy table. Every declared role must have an
// entry here — TestRoleLevels_Exhaustive fails the build's test run if a role
// is added without one.
var roleLevels = map[Role]int{
	RoleHRAdmin:  3,
	RoleManager:  2,
	RoleEmployee: 1,
}

// AllRoles returns the closed set of recognized roles, highest level first.
func AllRoles() []Role {
	return []Role{RoleHRAdmin, RoleManager, RoleEmployee}
}

// Valid reports whether r is one of the recognized roles.
func (r Role) Valid() bool {
	_, ok := roleLevels[r]
	return ok
}

// Level returns the hierarchy level of the role (higher outranks lower).
// Unknown roles have level 0 and therefore never satisfy AtLeast.
func (r Role) Level() int {
	return roleLevels[r]
}

// AtLeast reports whether r sits at or above min in the hierarchy.
func (r Role) AtLeast(min Role) bool {
	return r.Valid() && min.Valid() && r.Level() >= min.Level()
}

// String implements fmt.Stringer.
func (r Role) String() string { return string(r) }

// ParseRole converts a raw claim value into a Role.
// Unknown values are rejected rather than mapped to a default.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("auth: unknown role %q", s)
	}
	return r, nil
}
