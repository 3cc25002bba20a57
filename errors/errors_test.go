package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestAuthConstructors_CodesAndStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code ErrorCode
	}{
		{"missing header", MissingAuthHeader(), ErrCodeMissingAuthHeader},
		{"invalid format", InvalidAuthHeaderFormat(), ErrCodeInvalidAuthHeaderFormat},
		{"invalid scheme", InvalidAuthScheme("Basic"), ErrCodeInvalidAuthScheme},
		{"missing token", MissingToken(), ErrCodeMissingToken},
		{"token expired", TokenExpired(), ErrCodeTokenExpired},
		{"invalid token", InvalidToken(nil), ErrCodeInvalidToken},
		{"unauthenticated", Unauthenticated(), ErrCodeUnauthenticated},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Code != tc.code {
				t.Errorf("code = %s, want %s", tc.err.Code, tc.code)
			}
			if tc.err.HTTPStatus != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", tc.err.HTTPStatus)
			}
			if tc.err.Message == "" {
				t.Error("message must not be empty")
			}
		})
	}
}

func TestForbidden(t *testing.T) {
	err := Forbidden("EMPLOYEE", []string{"MANAGER", "HR_ADMIN"})

	if err.Code != ErrCodeForbidden {
		t.Errorf("code = %s, want FORBIDDEN", err.Code)
	}
	if err.HTTPStatus != http.StatusForbidden {
		t.Errorf("status = %d, want 403", err.HTTPStatus)
	}
	if err.UserRole != "EMPLOYEE" {
		t.Errorf("userRole = %s, want EMPLOYEE", err.UserRole)
	}
	if len(err.RequiredRoles) != 2 || err.RequiredRoles[0] != "MANAGER" {
		t.Errorf("unexpected requiredRoles: %v", err.RequiredRoles)
	}
}

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	cause := stderrors.New("signature mismatch")
	err := InvalidToken(cause)

	if !strings.Contains(err.Error(), "INVALID_TOKEN") {
		t.Errorf("Error() must include the code: %s", err.Error())
	}
	if !stderrors.Is(err, cause) {
		t.Error("Unwrap chain must reach the cause")
	}
}

func TestToResponse_Envelope(t *testing.T) {
	resp := Forbidden("EMPLOYEE", []string{"HR_ADMIN"}).ToResponse("/api/employees")

	if resp.Success {
		t.Error("error responses must have success=false")
	}
	if resp.Code != ErrCodeForbidden {
		t.Errorf("code = %s, want FORBIDDEN", resp.Code)
	}
	if resp.Path != "/api/employees" {
		t.Errorf("path = %s", resp.Path)
	}
	if resp.Timestamp == "" {
		t.Error("timestamp must be set")
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(data)
	if !strings.Contains(body, `"success":false`) {
		t.Errorf("missing success field: %s", body)
	}
	if !strings.Contains(body, `"userRole":"EMPLOYEE"`) {
		t.Errorf("missing userRole: %s", body)
	}
}

// The role fields must stay out of the envelope for non-authorization errors.
func TestToResponse_OmitsEmptyFields(t *testing.T) {
	data, err := json.Marshal(MissingAuthHeader().ToResponse(""))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(data)
	for _, field := range []string{"userRole", "requiredRoles", "path", "details"} {
		if strings.Contains(body, field) {
			t.Errorf("field %q must be omitted when empty: %s", field, body)
		}
	}
}

// Internal errors must never leak the cause's text to clients.
func TestFrom_HidesUnknownErrors(t *testing.T) {
	cause := fmt.Errorf("pq: connection to 10.0.0.5 refused")

	appErr := From(cause)
	if appErr.Code != ErrCodeInternal {
		t.Errorf("code = %s, want INTERNAL_ERROR", appErr.Code)
	}
	if strings.Contains(appErr.Message, "10.0.0.5") {
		t.Error("client message must not contain the internal cause")
	}

	data, _ := json.Marshal(appErr.ToResponse("/x"))
	if strings.Contains(string(data), "10.0.0.5") {
		t.Error("serialized envelope must not contain the internal cause")
	}
}

func TestFrom_PassesThroughAppErrors(t *testing.T) {
	orig := TokenExpired()
	wrapped := fmt.Errorf("authn: %w", orig)

	got := From(wrapped)
	if got != orig {
		t.Error("From must return the wrapped AppError unchanged")
	}
}

func TestWithDetail(t *testing.T) {
	err := MissingToken().WithDetail("hint", "header present but empty")
	if err.Details["hint"] != "header present but empty" {
		t.Errorf("unexpected details: %v", err.Details)
	}
}
