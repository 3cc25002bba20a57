// Package password hashes and verifies HR account passwords and checks
// candidate passwords against a configurable strength policy.
//
// It defines a Hasher interface with two implementations:
//   - BcryptHasher: bcrypt hashing, the platform default
//   - Argon2Hasher: argon2id hashing for memory-hard deployments
//
// Hashing and strength checking are deliberately separate: Hash accepts any
// non-empty password, and callers run Policy.Check at registration time.
//
// Usage:
//
//	hasher := password.NewBcryptHasher()
//	hash, err := hasher.Hash("my-password")
//	err = hasher.Verify("my-password", hash)
package password

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// Sentinel errors returned by Hash and Verify. Callers branch on these with
// errors.Is; a mismatch and a corrupt stored hash must never be conflated,
// the latter indicates data corruption rather than a bad login attempt.
var (
	// ErrEmptyPassword is returned when the plaintext password is empty.
	ErrEmptyPassword = errors.New("password: password must not be empty")

	// ErrPasswordTooLong is returned when the plaintext exceeds the
	// algorithm's input limit (72 bytes for bcrypt).
	ErrPasswordTooLong = errors.New("password: password exceeds maximum length")

	// ErrMismatch is returned by Verify when the password does not match
	// the stored hash.
	ErrMismatch = errors.New("password: invalid password")

	// ErrMalformedHash is returned by Verify when the stored hash is not a
	// valid encoding for the hasher's algorithm.
	ErrMalformedHash = errors.New("password: malformed stored hash")
)

// Hasher defines the interface for password hashing and verification.
type Hasher interface {
	// Hash returns a hashed representation of the password. Hashing the
	// same password twice yields different strings because a fresh salt is
	// generated each call.
	Hash(password string) (string, error)

	// Verify checks if a password matches the given hash.
	// Returns nil on match, ErrMismatch on a wrong password, and
	// ErrMalformedHash when the stored hash cannot be parsed.
	Verify(password, hash string) error
}

// --- Bcrypt Implementation ---

// BcryptHasher implements Hasher using bcrypt.
type BcryptHasher struct {
	cost int
}

// BcryptOption configures the bcrypt hasher.
type BcryptOption func(*BcryptHasher)

// WithCost sets the bcrypt cost parameter (default: 12, range: 4-31).
func WithCost(cost int) BcryptOption {
	return func(h *BcryptHasher) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			h.cost = cost
		}
	}
}

// NewBcryptHasher creates a bcrypt-based password hasher.
func NewBcryptHasher(opts ...BcryptOption) *BcryptHasher {
	h := &BcryptHasher{cost: 12}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	if len(password) > 72 {
		return "", ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("password: hash: %w", err)
	}
	return string(hash), nil
}

func (h *BcryptHasher) Verify(password, hash string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if !isBcryptHash(hash) {
		return ErrMalformedHash
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return ErrMalformedHash
	}
}

// isBcryptHash reports whether s looks like a modular-crypt bcrypt string.
// A bcrypt hash is always 60 bytes: $2a$NN$ followed by 53 radix-64 bytes.
func isBcryptHash(s string) bool {
	if len(s) != 60 {
		return false
	}
	switch {
	case strings.HasPrefix(s, "$2a$"),
		strings.HasPrefix(s, "$2b$"),
		strings.HasPrefix(s, "$2y$"):
		return true
	}
	return false
}

// --- Argon2id Implementation ---

// Argon2Hasher implements Hasher using argon2id.
type Argon2Hasher struct {
	time    uint32
	memory  uint32
	threads uint8
	keyLen  uint32
	saltLen int
}

// Argon2Option configures the argon2id hasher.
type Argon2Option func(*Argon2Hasher)

// WithArgon2Time sets the number of iterations (default: 1).
func WithArgon2Time(t uint32) Argon2Option {
	return func(h *Argon2Hasher) { h.time = t }
}

// WithArgon2Memory sets the memory usage in KiB (default: 64*1024 = 64MB).
func WithArgon2Memory(m uint32) Argon2Option {
	return func(h *Argon2Hasher) { h.memory = m }
}

// WithArgon2Threads sets the parallelism (default: 4).
func WithArgon2Threads(t uint8) Argon2Option {
	return func(h *Argon2Hasher) { h.threads = t }
}

// NewArgon2Hasher creates an argon2id-based password hasher.
// Defaults follow OWASP recommendations: time=1, memory=64MB, threads=4.
func NewArgon2Hasher(opts ...Argon2Option) *Argon2Hasher {
	h := &Argon2Hasher{
		time:    1,
		memory:  64 * 1024,
		threads: 4,
		keyLen:  32,
		saltLen: 16,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Argon2Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	salt, err := generateRandomBytes(h.saltLen)
	if err != nil {
		return "", fmt.Errorf("password: generate salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, h.time, h.memory, h.threads, h.keyLen)

	// Encode as: $argon2id$v=19$m=MEMORY,t=TIME,p=THREADS$SALT$HASH
	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.memory, h.time, h.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	)
	return encoded, nil
}

func (h *Argon2Hasher) Verify(password, encodedHash string) error {
	if password == "" {
		return ErrEmptyPassword
	}

	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return ErrMalformedHash
	}

	var memory, time uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return ErrMalformedHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return ErrMalformedHash
	}

	expectedHash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return ErrMalformedHash
	}

	hash := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(expectedHash)))

	if subtle.ConstantTimeCompare(hash, expectedHash) != 1 {
		return ErrMismatch
	}
	return nil
}
