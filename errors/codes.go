package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Authentication errors. All map to HTTP 401. The header-shape codes are
// distinct so clients can tell a missing credential from a malformed one.
const (
	// ErrCodeMissingAuthHeader indicates the Authorization header is absent
	// or empty.
	ErrCodeMissingAuthHeader ErrorCode = "MISSING_AUTH_HEADER"
	// ErrCodeInvalidAuthHeaderFormat indicates the Authorization header does
	// not consist of exactly a scheme and a credential.
	ErrCodeInvalidAuthHeaderFormat ErrorCode = "INVALID_AUTH_HEADER_FORMAT"
	// ErrCodeInvalidAuthScheme indicates an Authorization scheme other than
	// Bearer.
	ErrCodeInvalidAuthScheme ErrorCode = "INVALID_AUTH_SCHEME"
	// ErrCodeMissingToken indicates a Bearer scheme with an empty credential.
	ErrCodeMissingToken ErrorCode = "MISSING_TOKEN"
	// ErrCodeTokenExpired indicates the presented token has expired.
	ErrCodeTokenExpired ErrorCode = "TOKEN_EXPIRED"
	// ErrCodeInvalidToken indicates the presented token failed verification
	// for any reason other than expiry.
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
	// ErrCodeUnauthenticated indicates a protected operation was reached
	// without an authenticated principal.
	ErrCodeUnauthenticated ErrorCode = "UNAUTHENTICATED"
)

// Authorization errors
const (
	// ErrCodeForbidden indicates the authenticated principal's role does not
	// satisfy the route's requirement.
	ErrCodeForbidden ErrorCode = "FORBIDDEN"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Resource and internal errors
const (
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
