package authz

import (
	"testing"

	"github.com/peoplekit/authkit/auth"
)

func TestRequireAnyRole_Construction(t *testing.T) {
	if _, err := RequireAnyRole(); err == nil {
		t.Error("empty role set must fail")
	}
	if _, err := RequireAnyRole(auth.Role("CEO")); err == nil {
		t.Error("unknown role must fail")
	}
	req, err := RequireAnyRole(auth.RoleManager, auth.RoleManager, auth.RoleHRAdmin)
	if err != nil {
		t.Fatalf("RequireAnyRole: %v", err)
	}
	if got := req.Roles(); len(got) != 2 {
		t.Errorf("duplicates must collapse: %v", got)
	}
}

func TestRequireAtLeast_Construction(t *testing.T) {
	if _, err := RequireAtLeast(auth.Role("INTERN")); err == nil {
		t.Error("unknown role must fail")
	}
	if _, err := RequireAtLeast(auth.RoleEmployee); err != nil {
		t.Errorf("RequireAtLeast: %v", err)
	}
}

func TestMustConstructors_Panic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for misconfigured requirement")
		}
	}()
	MustRequireAnyRole()
}

func TestAtLeast_Matrix(t *testing.T) {
	managers := MustRequireAtLeast(auth.RoleManager)

	tests := []struct {
		role auth.Role
		want bool
	}{
		{auth.RoleHRAdmin, true},
		{auth.RoleManager, true},
		{auth.RoleEmployee, false},
		{auth.Role("UNKNOWN"), false},
	}
	for _, tc := range tests {
		if got := managers.Allows(tc.role); got != tc.want {
			t.Errorf("at-least(MANAGER).Allows(%s) = %v, want %v", tc.role, got, tc.want)
		}
	}
}

func TestExactSet_Matrix(t *testing.T) {
	adminOnly := MustRequireAnyRole(auth.RoleHRAdmin)

	if !adminOnly.Allows(auth.RoleHRAdmin) {
		t.Error("exact-set(HR_ADMIN) must admit HR_ADMIN")
	}
	// Hierarchy does not apply to exact sets.
	if adminOnly.Allows(auth.RoleManager) || adminOnly.Allows(auth.RoleEmployee) {
		t.Error("exact-set(HR_ADMIN) must admit nothing else")
	}
}

func TestZeroRequirement_AdmitsNothing(t *testing.T) {
	var zero Requirement
	for _, role := range auth.AllRoles() {
		if zero.Allows(role) {
			t.Errorf("zero requirement must deny %s", role)
		}
	}
}

func TestRoles_ExpandsHierarchy(t *testing.T) {
	got := MustRequireAtLeast(auth.RoleManager).Roles()
	if len(got) != 2 || got[0] != auth.RoleHRAdmin || got[1] != auth.RoleManager {
		t.Errorf("at-least(MANAGER).Roles() = %v, want [HR_ADMIN MANAGER]", got)
	}
}

func TestRoles_PreservesExactSetOrder(t *testing.T) {
	got := MustRequireAnyRole(auth.RoleManager, auth.RoleHRAdmin).Roles()
	if len(got) != 2 || got[0] != auth.RoleManager || got[1] != auth.RoleHRAdmin {
		t.Errorf("Roles() = %v, want [MANAGER HR_ADMIN]", got)
	}
}

func TestOwnerOrAtLeast(t *testing.T) {
	employee := auth.Principal{UserID: "u1", Role: auth.RoleEmployee}
	manager := auth.Principal{UserID: "m1", Role: auth.RoleManager}

	if !OwnerOrAtLeast(employee, "u1", auth.RoleManager) {
		t.Error("owner must access their own record")
	}
	if OwnerOrAtLeast(employee, "u2", auth.RoleManager) {
		t.Error("employee must not access another's record")
	}
	if !OwnerOrAtLeast(manager, "u2", auth.RoleManager) {
		t.Error("manager must access any record")
	}
}

func TestRequirement_String(t *testing.T) {
	if got := MustRequireAtLeast(auth.RoleManager).String(); got != "at-least(MANAGER)" {
		t.Errorf("String() = %q", got)
	}
	if got := MustRequireAnyRole(auth.RoleManager, auth.RoleHRAdmin).String(); got != "exact-set(MANAGER,HR_ADMIN)" {
		t.Errorf("String() = %q", got)
	}
}
