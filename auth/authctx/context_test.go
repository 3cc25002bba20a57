package authctx

import (
	"context"
	"errors"
	"testing"

	"github.com/peoplekit/authkit/auth"
)

func testPrincipal() auth.Principal {
	return auth.Principal{UserID: "u1", Email: "a@b.com", Role: auth.RoleManager}
}

func TestPrincipal_RoundTrip(t *testing.T) {
	ctx := WithPrincipal(context.Background(), testPrincipal())

	p, ok := PrincipalFrom(ctx)
	if !ok {
		t.Fatal("expected principal in context")
	}
	if p.UserID != "u1" || p.Role != auth.RoleManager {
		t.Errorf("unexpected principal: %+v", p)
	}
}

func TestPrincipalFrom_Empty(t *testing.T) {
	if _, ok := PrincipalFrom(context.Background()); ok {
		t.Error("expected no principal in a fresh context")
	}

	_, err := PrincipalOrError(context.Background())
	if !errors.Is(err, ErrNoPrincipal) {
		t.Errorf("expected ErrNoPrincipal, got %v", err)
	}
}

func TestMustPrincipal_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for missing principal")
		}
	}()
	MustPrincipal(context.Background())
}

func TestCorrelationID_RoundTrip(t *testing.T) {
	if got := CorrelationIDFrom(context.Background()); got != "" {
		t.Errorf("expected empty correlation id, got %q", got)
	}

	ctx := WithCorrelationID(context.Background(), "req-123")
	if got := CorrelationIDFrom(ctx); got != "req-123" {
		t.Errorf("expected req-123, got %q", got)
	}
}

// The two keys must not collide: setting one never disturbs the other.
func TestKeys_Independent(t *testing.T) {
	ctx := WithCorrelationID(context.Background(), "req-123")
	ctx = WithPrincipal(ctx, testPrincipal())

	if got := CorrelationIDFrom(ctx); got != "req-123" {
		t.Errorf("correlation id lost: %q", got)
	}
	if _, ok := PrincipalFrom(ctx); !ok {
		t.Error("principal lost")
	}
}
