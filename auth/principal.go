package auth

import "time"

// Principal is the verified identity attached to a request after successful
// access token verification.
//
// It is immutable for the lifetime of a single request: it is constructed
// exclusively by token.Service.VerifyAccess, stored in the request context
// via authctx, and discarded when request handling ends. It is never
// persisted.
type Principal struct {
	// UserID is the opaque unique identifier of the account.
	UserID string

	// Email is the account email embedded in the token.
	Email string

	// Role is the verified role claim.
	Role Role

	// IssuedAt is when the presented token was minted.
	IssuedAt time.Time

	// ExpiresAt is when the presented token stops being valid.
	ExpiresAt time.Time
}

// Owns reports whether the principal is the owner of the resource identified
// by ownerID. Used together with authz.OwnerOrAtLeast for "my own profile or
// an elevated role" checks.
func (p Principal) Owns(ownerID string) bool {
	return ownerID != "" && p.UserID == ownerID
}

// RefreshPrincipal is the verified identity carried by a refresh token.
// Unlike Principal it has no role — refresh tokens only prove the right to
// mint a new access token, and the role is re-resolved at that point.
type RefreshPrincipal struct {
	// UserID is the opaque unique identifier of the account.
	UserID string

	// Email is the account email embedded in the token.
	Email string

	// TokenID is the unique jti claim, reserved for revocation tracking.
	TokenID string

	// IssuedAt is when the refresh token was minted.
	IssuedAt time.Time

	// ExpiresAt is when the refresh token stops being valid.
	ExpiresAt time.Time
}
