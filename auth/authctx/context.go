// Package authctx provides type-safe context propagation for the verified
// request identity.
//
// The authentication middleware stores a Principal after a successful token
// verification; handlers and the authorization middleware read it back. The
// middleware also threads the request correlation identifier through the same
// context so log lines from one request can be stitched together.
//
// Usage:
//
//	// Store the principal (typically in middleware)
//	ctx = authctx.WithPrincipal(ctx, principal)
//
//	// Retrieve it (in handlers)
//	principal, ok := authctx.PrincipalFrom(ctx)
//	principal := authctx.MustPrincipal(ctx) // panics if missing
package authctx

import (
	"context"
	"errors"

	"github.com/peoplekit/authkit/auth"
)

// contextKey is an unexported type to prevent collisions with other packages.
type contextKey int

const (
	principalKey contextKey = iota
	correlationKey
)

// ErrNoPrincipal is returned when no principal is attached to the context.
var ErrNoPrincipal = errors.New("authctx: no principal in context")

// WithPrincipal stores the verified principal in the context.
// Only the authentication middleware should call this; everything downstream
// treats the principal as read-only.
func WithPrincipal(ctx context.Context, p auth.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFrom retrieves the principal from the context.
// Returns the principal and true if present, or a zero value and false when
// the request was not authenticated.
func PrincipalFrom(ctx context.Context) (auth.Principal, bool) {
	p, ok := ctx.Value(principalKey).(auth.Principal)
	return p, ok
}

// MustPrincipal retrieves the principal from the context.
// Panics if no principal is attached. Use in handlers behind mandatory
// authentication, where the middleware guarantees a principal exists.
func MustPrincipal(ctx context.Context) auth.Principal {
	p, ok := PrincipalFrom(ctx)
	if !ok {
		panic("authctx: no principal in context")
	}
	return p
}

// PrincipalOrError retrieves the principal from the context.
// Returns ErrNoPrincipal when the request was not authenticated.
func PrincipalOrError(ctx context.Context) (auth.Principal, error) {
	p, ok := PrincipalFrom(ctx)
	if !ok {
		return auth.Principal{}, ErrNoPrincipal
	}
	return p, nil
}

// WithCorrelationID stores the request correlation identifier in the context.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey, id)
}

// CorrelationIDFrom retrieves the request correlation identifier, or ""
// when none is set.
func CorrelationIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(correlationKey).(string)
	return id
}
