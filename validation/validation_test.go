package validation

import (
	"strings"
	"testing"

	"github.com/peoplekit/authkit/auth"
	"github.com/peoplekit/authkit/errors"
)

func TestValidate_ValidLoginRequest(t *testing.T) {
	req := auth.LoginRequest{
		Email:    "jane.doe@example.com",
		Password: "Str0ng!Passw0rd",
	}
	if err := Validate(req); err != nil {
		t.Errorf("Validate(valid request) = %v, want nil", err)
	}
}

func TestValidate_LoginRequestFailures(t *testing.T) {
	tests := []struct {
		name      string
		req       auth.LoginRequest
		wantField string
	}{
		{
			name:      "missing email",
			req:       auth.LoginRequest{Password: "Str0ng!Passw0rd"},
			wantField: "email",
		},
		{
			name:      "invalid email",
			req:       auth.LoginRequest{Email: "not-an-email", Password: "Str0ng!Passw0rd"},
			wantField: "email",
		},
		{
			name:      "missing password",
			req:       auth.LoginRequest{Email: "jane.doe@example.com"},
			wantField: "password",
		},
		{
			name: "password over hash limit",
			req: auth.LoginRequest{
				Email:    "jane.doe@example.com",
				Password: strings.Repeat("x", 73),
			},
			wantField: "password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.req)
			if err == nil {
				t.Fatal("expected validation error")
			}
			appErr, ok := errors.AsAppError(err)
			if !ok {
				t.Fatalf("error is not an AppError: %v", err)
			}
			if appErr.Code != errors.ErrCodeInvalidInput {
				t.Errorf("code = %s, want %s", appErr.Code, errors.ErrCodeInvalidInput)
			}
			fields, ok := appErr.Details["fields"].([]FieldError)
			if !ok || len(fields) == 0 {
				t.Fatalf("details missing field errors: %+v", appErr.Details)
			}
			found := false
			for _, f := range fields {
				if f.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("no error reported for field %q: %+v", tt.wantField, fields)
			}
		})
	}
}

// Field names in messages come from the json tag, not the Go field name.
func TestValidate_UsesJSONFieldNames(t *testing.T) {
	err := Validate(auth.RefreshRequest{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "refreshToken") {
		t.Errorf("message should use json tag name: %q", err.Error())
	}
	if strings.Contains(err.Error(), "RefreshToken") {
		t.Errorf("message should not leak Go field name: %q", err.Error())
	}
}

func TestValidator_Programmatic(t *testing.T) {
	v := New().
		Required("email", "").
		RequiredUUID("employeeId", "not-a-uuid").
		OneOf("role", "SUPERVISOR", []string{"HR_ADMIN", "MANAGER", "EMPLOYEE"}).
		Custom(false, "department", "department does not exist")

	if !v.HasErrors() {
		t.Fatal("expected collected errors")
	}
	if got := len(v.Errors()); got != 4 {
		t.Fatalf("len(Errors()) = %d, want 4", got)
	}

	appErr := v.Validate()
	if appErr == nil {
		t.Fatal("Validate() = nil, want AppError")
	}
	if appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("code = %s", appErr.Code)
	}
	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok || len(fields) != 4 {
		t.Fatalf("details fields = %+v", appErr.Details)
	}
}

func TestValidator_PassingChecks(t *testing.T) {
	v := New().
		Required("email", "jane.doe@example.com").
		RequiredUUID("employeeId", "0d4f6f0e-34a2-4f8e-9f3a-7f2b6d9c1e55").
		OneOf("role", "MANAGER", []string{"HR_ADMIN", "MANAGER", "EMPLOYEE"}).
		MinLength("password", "Str0ng!Passw0rd", 8).
		MaxLength("password", "Str0ng!Passw0rd", 72)

	if v.HasErrors() {
		t.Errorf("unexpected errors: %+v", v.Errors())
	}
	if appErr := v.Validate(); appErr != nil {
		t.Errorf("Validate() = %v, want nil", appErr)
	}
}

func TestRequired_PackageLevel(t *testing.T) {
	if err := Required("email", "jane.doe@example.com"); err != nil {
		t.Errorf("Required(non-empty) = %v", err)
	}
	if err := Required("email", "   "); err == nil {
		t.Error("Required(whitespace) = nil, want error")
	}
}
