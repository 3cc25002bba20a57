package errors

import (
	stderrors "errors"
	"time"
)

// Response is the JSON envelope returned to clients on failure.
// Success is always false here; successful responses are built by the
// server package with Success true.
type Response struct {
	Success       bool           `json:"success"`
	Code          ErrorCode      `json:"code"`
	Message       string         `json:"message"`
	Timestamp     string         `json:"timestamp"`
	Path          string         `json:"path,omitempty"`
	UserRole      string         `json:"userRole,omitempty"`
	RequiredRoles []string       `json:"requiredRoles,omitempty"`
	Details       map[string]any `json:"details,omitempty"`
}

// ToResponse converts an AppError to the client envelope. path is the
// request path for context; pass "" outside a request.
func (e *AppError) ToResponse(path string) Response {
	return Response{
		Success:       false,
		Code:          e.Code,
		Message:       e.Message,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		Path:          path,
		UserRole:      e.UserRole,
		RequiredRoles: e.RequiredRoles,
		Details:       e.Details,
	}
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// From normalizes any error into an AppError. Unknown errors become
// INTERNAL_ERROR so arbitrary failures never leak their text to clients.
func From(err error) *AppError {
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}
	return Internal(err)
}
