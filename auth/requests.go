package auth

import (
	"time"

	"github.com/peoplekit/authkit/util"
)

// LoginRequest is the credential payload a routing layer binds before calling
// into the password and token services. Validate with validation.Validate.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=72"`
}

// Normalize canonicalizes the email so user lookup and token claims agree on
// one form. The password is left untouched: hashing is byte-exact.
func (r *LoginRequest) Normalize() {
	r.Email = util.NormalizeEmail(r.Email)
}

// RefreshRequest carries a refresh token presented to mint a new pair.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// TokenPair is the response body for login and refresh: a fresh access token
// together with the refresh token that can renew it.
type TokenPair struct {
	AccessToken      string    `json:"accessToken"`
	RefreshToken     string    `json:"refreshToken"`
	AccessExpiresAt  time.Time `json:"accessExpiresAt"`
	RefreshExpiresAt time.Time `json:"refreshExpiresAt"`
}
