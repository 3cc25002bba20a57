// Package util provides input sanitization helpers for credential handling.
package util

import (
	"strings"
	"unicode"
)

// SanitizeString trims whitespace and removes control characters from s.
// Applied to user-supplied identifiers before they reach the auth services.
func SanitizeString(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// NormalizeEmail sanitizes and lowercases an email address so lookups and
// token claims use one canonical form.
func NormalizeEmail(email string) string {
	return strings.ToLower(SanitizeString(email))
}

// MaskSecret returns a redacted rendition of a secret safe for log output.
// Short values are fully masked; longer ones keep the first and last four
// characters.
func MaskSecret(s string) string {
	if len(s) <= 8 {
		return strings.Repeat("*", len(s))
	}
	return s[:4] + "..." + s[len(s)-4:]
}
