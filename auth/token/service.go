// Package token issues and verifies the two token classes used by the HR
// platform: short-lived access tokens proving identity on API calls, and
// long-lived refresh tokens used solely to mint new access tokens.
//
// The two classes are signed with distinct secrets and carry a token_type
// discriminator, so a refresh token can never be presented where an access
// token is expected. Verification failures are reported as
// *VerificationError values with a machine-checkable Kind.
//
// Usage:
//
//	svc, err := token.NewService(token.Config{
//	    AccessSecret:  accessKey,
//	    RefreshSecret: refreshKey,
//	})
//	signed, err := svc.IssueAccess(token.SubjectClaims{
//	    UserID: "u1", Email: "a@b.com", Role: auth.RoleEmployee,
//	})
//	principal, err := svc.VerifyAccess(signed)
package token

import (
	"errors"
	"strings"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/peoplekit/authkit/auth"
)

// Service issues and verifies access and refresh tokens.
// It is safe for concurrent use: the configuration is copied at construction
// and never mutated afterwards.
type Service struct {
	cfg Config
	now func() time.Time
}

// Option configures Service behavior.
type Option func(*Service)

// WithClock overrides the time source. Useful for tests that need to mint
// tokens in the past without sleeping.
func WithClock(fn func() time.Time) Option {
	return func(s *Service) {
		if fn != nil {
			s.now = fn
		}
	}
}

// NewService creates a token service from configuration.
func NewService(cfg Config, opts ...Option) (*Service, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Service{cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// IssueAccess mints a signed access token for the given subject.
// UserID, Email, and Role are all required; a missing field is reported as a
// *GenerationError naming it. Two tokens minted for the same subject at
// different instants differ because the issue timestamp is embedded.
func (s *Service) IssueAccess(sub SubjectClaims) (string, error) {
	if strings.TrimSpace(sub.UserID) == "" {
		return "", &GenerationError{Field: "userId"}
	}
	if strings.TrimSpace(sub.Email) == "" {
		return "", &GenerationError{Field: "email"}
	}
	if !sub.Role.Valid() {
		return "", &GenerationError{Field: "role"}
	}

	now := s.now().UTC()
	claims := accessClaims{
		TokenType: typeAccess,
		Email:     sub.Email,
		Role:      string(sub.Role),
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   sub.UserID,
			Issuer:    s.cfg.Issuer,
			Audience:  gojwt.ClaimStrings{s.cfg.Audience},
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(s.cfg.AccessTTL)),
		},
	}
	return s.sign(claims, s.cfg.AccessSecret)
}

// IssueRefresh mints a signed refresh token for the given subject.
// UserID and Email are required. Each refresh token carries a freshly
// generated jti so a future revocation list can key on it.
func (s *Service) IssueRefresh(sub SubjectClaims) (string, error) {
	if strings.TrimSpace(sub.UserID) == "" {
		return "", &GenerationError{Field: "userId"}
	}
	if strings.TrimSpace(sub.Email) == "" {
		return "", &GenerationError{Field: "email"}
	}

	now := s.now().UTC()
	claims := refreshClaims{
		TokenType: typeRefresh,
		Email:     sub.Email,
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   sub.UserID,
			Issuer:    s.cfg.Issuer,
			Audience:  gojwt.ClaimStrings{s.cfg.Audience},
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(s.cfg.RefreshTTL)),
			ID:        uuid.NewString(),
		},
	}
	return s.sign(claims, s.cfg.RefreshSecret)
}

// VerifyAccess verifies a signed access token and returns the Principal it
// proves. Any failure is a *VerificationError; see VerificationKind for the
// distinguishable cases.
func (s *Service) VerifyAccess(tokenString string) (auth.Principal, error) {
	claims := &accessClaims{}
	if err := s.verify(tokenString, claims, s.cfg.AccessSecret, typeAccess); err != nil {
		return auth.Principal{}, err
	}
	if claims.TokenType != typeAccess {
		return auth.Principal{}, &VerificationError{Kind: KindWrongType}
	}

	// The signature is valid, but the payload shape is still untrusted:
	// re-validate the subject claims before constructing a Principal.
	if strings.TrimSpace(claims.Subject) == "" {
		return auth.Principal{}, &VerificationError{Kind: KindMissingClaim, Field: "userId"}
	}
	if strings.TrimSpace(claims.Email) == "" {
		return auth.Principal{}, &VerificationError{Kind: KindMissingClaim, Field: "email"}
	}
	role, err := auth.ParseRole(claims.Role)
	if err != nil {
		return auth.Principal{}, &VerificationError{Kind: KindMissingClaim, Field: "role"}
	}
	if claims.IssuedAt == nil || claims.ExpiresAt == nil {
		return auth.Principal{}, &VerificationError{Kind: KindMissingClaim, Field: "timestamps"}
	}

	return auth.Principal{
		UserID:    claims.Subject,
		Email:     claims.Email,
		Role:      role,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// VerifyRefresh verifies a signed refresh token and returns its
// RefreshPrincipal. Symmetric to VerifyAccess but checks the refresh secret
// and requires a jti.
func (s *Service) VerifyRefresh(tokenString string) (auth.RefreshPrincipal, error) {
	claims := &refreshClaims{}
	if err := s.verify(tokenString, claims, s.cfg.RefreshSecret, typeRefresh); err != nil {
		return auth.RefreshPrincipal{}, err
	}
	if claims.TokenType != typeRefresh {
		return auth.RefreshPrincipal{}, &VerificationError{Kind: KindWrongType}
	}

	if strings.TrimSpace(claims.Subject) == "" {
		return auth.RefreshPrincipal{}, &VerificationError{Kind: KindMissingClaim, Field: "userId"}
	}
	if strings.TrimSpace(claims.Email) == "" {
		return auth.RefreshPrincipal{}, &VerificationError{Kind: KindMissingClaim, Field: "email"}
	}
	if strings.TrimSpace(claims.ID) == "" {
		return auth.RefreshPrincipal{}, &VerificationError{Kind: KindMissingClaim, Field: "jti"}
	}
	if claims.IssuedAt == nil || claims.ExpiresAt == nil {
		return auth.RefreshPrincipal{}, &VerificationError{Kind: KindMissingClaim, Field: "timestamps"}
	}

	return auth.RefreshPrincipal{
		UserID:    claims.Subject,
		Email:     claims.Email,
		TokenID:   claims.ID,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Decode parses a token's claims WITHOUT verifying signature or expiry.
// It returns nil on any parse failure and never returns an error.
//
// This is an introspection helper for logging and diagnostics only — it must
// never gate access. Use VerifyAccess or VerifyRefresh on security paths.
func Decode(tokenString string) map[string]any {
	claims := gojwt.MapClaims{}
	parser := gojwt.NewParser()
	if _, _, err := parser.ParseUnverified(strings.TrimSpace(tokenString), claims); err != nil {
		return nil
	}
	return claims
}

func (s *Service) sign(claims gojwt.Claims, secret string) (string, error) {
	t := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}
	return signed, nil
}

// verify parses tokenString into claims using the given secret and maps any
// parser failure to a VerificationError kind.
func (s *Service) verify(tokenString string, claims gojwt.Claims, secret, wantType string) error {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return &VerificationError{Kind: KindMalformed, cause: errors.New("empty token")}
	}

	keyFunc := func(t *gojwt.Token) (any, error) {
		if t.Method.Alg() != gojwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method: " + t.Method.Alg())
		}
		return []byte(secret), nil
	}

	parsed, err := gojwt.ParseWithClaims(tokenString, claims, keyFunc,
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithIssuer(s.cfg.Issuer),
		gojwt.WithAudience(s.cfg.Audience),
		gojwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return s.classify(tokenString, err, wantType)
	}
	if !parsed.Valid {
		return &VerificationError{Kind: KindInvalidClaims}
	}
	return nil
}

// classify maps golang-jwt parser errors to VerificationError kinds.
// A signature failure caused by presenting the other token class is reported
// as KindWrongType: the unverified type claim is only used to improve the
// diagnostic, the request is rejected either way.
func (s *Service) classify(tokenString string, err error, wantType string) *VerificationError {
	switch {
	case errors.Is(err, gojwt.ErrTokenMalformed):
		return &VerificationError{Kind: KindMalformed, cause: err}
	case errors.Is(err, gojwt.ErrTokenExpired):
		return &VerificationError{Kind: KindExpired, cause: err}
	case errors.Is(err, gojwt.ErrTokenNotValidYet):
		return &VerificationError{Kind: KindNotYetValid, cause: err}
	case errors.Is(err, gojwt.ErrTokenSignatureInvalid):
		if decoded := Decode(tokenString); decoded != nil {
			if typ, _ := decoded["token_type"].(string); typ != "" && typ != wantType {
				return &VerificationError{Kind: KindWrongType, cause: err}
			}
		}
		return &VerificationError{Kind: KindSignatureInvalid, cause: err}
	case errors.Is(err, gojwt.ErrTokenInvalidIssuer),
		errors.Is(err, gojwt.ErrTokenInvalidAudience),
		errors.Is(err, gojwt.ErrTokenInvalidClaims):
		return &VerificationError{Kind: KindInvalidClaims, cause: err}
	default:
		return &VerificationError{Kind: KindSignatureInvalid, cause: err}
	}
}
