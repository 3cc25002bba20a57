package auth

import "testing"

func TestLoginRequest_Normalize(t *testing.T) {
	req := LoginRequest{
		Email:    "  Jane.Doe@Example.COM ",
		Password: "  Secret!1  ",
	}
	req.Normalize()

	if req.Email != "jane.doe@example.com" {
		t.Errorf("Email = %q, want canonical lowercase", req.Email)
	}
	if req.Password != "  Secret!1  " {
		t.Error("Normalize must not alter the password bytes")
	}
}
