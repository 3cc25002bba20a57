package auth

import "testing"

func TestRoleLevels_Exhaustive(t *testing.T) {
	for _, r := range AllRoles() {
		if r.Level() == 0 {
			t.Errorf("role %s has no hierarchy level", r)
		}
	}
	if len(roleLevels) != len(AllRoles()) {
		t.Errorf("hierarchy table has %d entries, expected %d", len(roleLevels), len(AllRoles()))
	}
}

func TestRole_AtLeast_Matrix(t *testing.T) {
	tests := []struct {
		role Role
		min  Role
		want bool
	}{
		{RoleHRAdmin, RoleEmployee, true},
		{RoleHRAdmin, RoleManager, true},
		{RoleHRAdmin, RoleHRAdmin, true},
		{RoleManager, RoleEmployee, true},
		{RoleManager, RoleManager, true},
		{RoleManager, RoleHRAdmin, false},
		{RoleEmployee, RoleEmployee, true},
		{RoleEmployee, RoleManager, false},
		{RoleEmployee, RoleHRAdmin, false},
	}
	for _, tc := range tests {
		if got := tc.role.AtLeast(tc.min); got != tc.want {
			t.Errorf("%s.AtLeast(%s) = %v, want %v", tc.role, tc.min, got, tc.want)
		}
	}
}

func TestRole_AtLeast_UnknownRole(t *testing.T) {
	if Role("INTERN").AtLeast(RoleEmployee) {
		t.Error("unknown role must never satisfy AtLeast")
	}
	if RoleHRAdmin.AtLeast(Role("SUPERUSER")) {
		t.Error("unknown minimum must never be satisfied")
	}
}

func TestParseRole(t *testing.T) {
	for _, r := range AllRoles() {
		got, err := ParseRole(string(r))
		if err != nil {
			t.Fatalf("ParseRole(%s): %v", r, err)
		}
		if got != r {
			t.Errorf("ParseRole(%s) = %s", r, got)
		}
	}

	if _, err := ParseRole("hr_admin"); err == nil {
		t.Error("role parsing must be case-sensitive")
	}
	if _, err := ParseRole(""); err == nil {
		t.Error("empty role must be rejected")
	}
}

func TestPrincipal_Owns(t *testing.T) {
	p := Principal{UserID: "u1", Role: RoleEmployee}
	if !p.Owns("u1") {
		t.Error("principal should own its own resource")
	}
	if p.Owns("u2") {
		t.Error("principal must not own another user's resource")
	}
	if p.Owns("") {
		t.Error("empty owner id must never match")
	}
}
