package errors

import (
	"fmt"
	"net/http"
)

// AppError is the unified application error type.
// Messages are written for clients: they never carry internal detail such as
// stack traces, claim contents, or key material.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// HTTPStatus is the HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// UserRole is the denied principal's role, set on FORBIDDEN errors.
	UserRole string `json:"userRole,omitempty"`
	// RequiredRoles lists the roles the route admits, set on FORBIDDEN errors.
	RequiredRoles []string `json:"requiredRoles,omitempty"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error. Never serialized — it is for logs only.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// --- Authentication Error Constructors ---

// MissingAuthHeader creates the error for an absent Authorization header.
func MissingAuthHeader() *AppError {
	return &AppError{
		Code: ErrCodeMissingAuthHeader, Message: "Authorization header is required.",
		HTTPStatus: http.StatusUnauthorized,
	}
}

// InvalidAuthHeaderFormat creates the error for an Authorization header that
// is not exactly a scheme followed by a credential.
func InvalidAuthHeaderFormat() *AppError {
	return &AppError{
		Code: ErrCodeInvalidAuthHeaderFormat, Message: "Authorization header must be of the form: Bearer <token>.",
		HTTPStatus: http.StatusUnauthorized,
	}
}

// InvalidAuthScheme creates the error for an unsupported Authorization scheme.
func InvalidAuthScheme(scheme string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidAuthScheme, Message: "Authorization scheme must be Bearer.",
		HTTPStatus: http.StatusUnauthorized,
		Details:    map[string]any{"scheme": scheme},
	}
}

// MissingToken creates the error for a Bearer scheme with no credential.
func MissingToken() *AppError {
	return &AppError{
		Code: ErrCodeMissingToken, Message: "Bearer token is required.",
		HTTPStatus: http.StatusUnauthorized,
	}
}

// TokenExpired creates the error for an expired token.
func TokenExpired() *AppError {
	return &AppError{
		Code: ErrCodeTokenExpired, Message: "Your session has expired. Please log in again.",
		HTTPStatus: http.StatusUnauthorized,
	}
}

// InvalidToken creates the error for a token that failed verification.
// The cause is retained for logs but never serialized to the client.
func InvalidToken(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInvalidToken, Message: "Invalid authentication token. Please log in again.",
		HTTPStatus: http.StatusUnauthorized, Cause: cause,
	}
}

// Unauthenticated creates the error for a protected operation reached
// without a principal.
func Unauthenticated() *AppError {
	return &AppError{
		Code: ErrCodeUnauthenticated, Message: "Authentication required.",
		HTTPStatus: http.StatusUnauthorized,
	}
}

// --- Authorization Error Constructors ---

// Forbidden creates the error for a role that does not satisfy a route's
// requirement. userRole and requiredRoles are surfaced in the response body
// so clients can explain the denial.
func Forbidden(userRole string, requiredRoles []string) *AppError {
	return &AppError{
		Code: ErrCodeForbidden, Message: "You don't have permission to perform this action.",
		HTTPStatus:    http.StatusForbidden,
		UserRole:      userRole,
		RequiredRoles: requiredRoles,
	}
}

// --- Validation Error Constructors ---

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		HTTPStatus: http.StatusBadRequest, Details: details,
	}
}

// MissingField creates a new AppError for a missing required field.
func MissingField(field string) *AppError {
	return &AppError{
		Code: ErrCodeMissingField, Message: fmt.Sprintf("Missing required field: %s", field),
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]any{"field": field},
	}
}

// --- Resource and Internal Error Constructors ---

// NotFound creates a new AppError for a resource that was not found.
func NotFound(resource, id string) *AppError {
	details := map[string]any{"resource": resource}
	if id != "" {
		details["id"] = id
	}
	return &AppError{
		Code: ErrCodeNotFound, Message: fmt.Sprintf("The requested %s was not found.", resource),
		HTTPStatus: http.StatusNotFound, Details: details,
	}
}

// Internal creates a new AppError for an internal server error.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred. Please try again or contact support.",
		HTTPStatus: http.StatusInternalServerError, Cause: cause,
	}
}
