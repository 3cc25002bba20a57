package token

import (
	gojwt "github.com/golang-jwt/jwt/v5"

	"github.com/peoplekit/authkit/auth"
)

// Token type discriminator values. Every token carries exactly one, and
// verification rejects the wrong class before any subject claim is trusted.
const (
	typeAccess  = "access"
	typeRefresh = "refresh"
)

// accessClaims is the wire shape of an access token payload.
type accessClaims struct {
	TokenType string `json:"token_type"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	gojwt.RegisteredClaims
}

// refreshClaims is the wire shape of a refresh token payload.
// The RegisteredClaims.ID field carries the unique jti.
type refreshClaims struct {
	TokenType string `json:"token_type"`
	Email     string `json:"email"`
	gojwt.RegisteredClaims
}

// SubjectClaims is the caller-supplied identity to embed in a token.
// Role is only required for access tokens.
type SubjectClaims struct {
	UserID string
	Email  string
	Role   auth.Role
}
