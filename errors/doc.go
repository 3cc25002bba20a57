// Package errors provides unified error handling for the auth core.
// It implements structured error types with machine-readable codes, HTTP
// status mapping, and the JSON envelope the HR API returns to clients.
package errors
