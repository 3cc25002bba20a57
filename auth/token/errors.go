package token

import (
	"errors"
	"fmt"
)

// VerificationKind classifies why a token failed verification.
// Middleware maps kinds to HTTP error codes without parsing messages.
type VerificationKind string

const (
	// KindMalformed means the token could not be parsed at all.
	KindMalformed VerificationKind = "MALFORMED"

	// KindExpired means the token's exp claim is in the past.
	KindExpired VerificationKind = "EXPIRED"

	// KindNotYetValid means the token's nbf claim is in the future.
	KindNotYetValid VerificationKind = "NOT_YET_VALID"

	// KindSignatureInvalid means the signature did not verify against the
	// expected key.
	KindSignatureInvalid VerificationKind = "SIGNATURE_INVALID"

	// KindInvalidClaims means a registered claim (issuer, audience) did not
	// match the configured value.
	KindInvalidClaims VerificationKind = "INVALID_CLAIMS"

	// KindWrongType means a validly structured token of the other class was
	// presented (refresh where access is expected, or vice versa).
	KindWrongType VerificationKind = "WRONG_TYPE"

	// KindMissingClaim means the signature verified but a required subject
	// claim is absent or unusable. Field names the claim.
	KindMissingClaim VerificationKind = "MISSING_CLAIM"
)

// VerificationError reports a failed token verification with a
// machine-checkable kind. It is the only error type VerifyAccess and
// VerifyRefresh return.
type VerificationError struct {
	Kind  VerificationKind
	Field string // set for KindMissingClaim
	cause error
}

func (e *VerificationError) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("token: verification failed (%s: %s)", e.Kind, e.Field)
	case e.cause != nil:
		return fmt.Sprintf("token: verification failed (%s): %v", e.Kind, e.cause)
	default:
		return fmt.Sprintf("token: verification failed (%s)", e.Kind)
	}
}

func (e *VerificationError) Unwrap() error { return e.cause }

// AsVerificationError extracts a VerificationError from an error chain.
func AsVerificationError(err error) (*VerificationError, bool) {
	var verr *VerificationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// GenerationError reports malformed subject claims at mint time.
// This is always a caller bug, never a runtime condition to retry.
type GenerationError struct {
	Field string
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("token: cannot issue token: missing %s", e.Field)
}

// AsGenerationError extracts a GenerationError from an error chain.
func AsGenerationError(err error) (*GenerationError, bool) {
	var gerr *GenerationError
	if errors.As(err, &gerr) {
		return gerr, true
	}
	return nil, false
}
