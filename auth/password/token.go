package password

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
)

// GenerateToken creates a cryptographically secure random token of the
// specified byte length, returned as a hex-encoded string.
// Used for password-reset and email-verification tokens.
func GenerateToken(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("password: token length must be positive (got: %d)", length)
	}
	bytes, err := generateRandomBytes(length)
	if err != nil {
		return "", fmt.Errorf("password: generate token: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// HashSHA256 returns the SHA-256 hex digest of the input string.
// Reset tokens are stored hashed so a database leak does not expose
// usable tokens.
func HashSHA256(input string) string {
	h := sha256.Sum256([]byte(input))
	return hex.EncodeToString(h[:])
}

// generateRandomBytes returns cryptographically secure random bytes.
func generateRandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}
