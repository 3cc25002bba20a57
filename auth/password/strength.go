package password

import (
	"fmt"
	"unicode"
)

// Policy is the password strength policy enforced at registration and
// password change. Zero value plus ApplyDefaults gives the platform default:
// minimum 8 characters, all four character classes required.
type Policy struct {
	// MinLength is the minimum password length (default: 8).
	MinLength int `mapstructure:"min_length"`

	// RequireUppercase requires at least one uppercase letter.
	RequireUppercase bool `mapstructure:"require_uppercase"`

	// RequireLowercase requires at least one lowercase letter.
	RequireLowercase bool `mapstructure:"require_lowercase"`

	// RequireDigit requires at least one decimal digit.
	RequireDigit bool `mapstructure:"require_digit"`

	// RequireSpecial requires at least one non-alphanumeric character.
	RequireSpecial bool `mapstructure:"require_special"`
}

// DefaultPolicy returns the platform default strength policy.
func DefaultPolicy() Policy {
	return Policy{
		MinLength:        8,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireDigit:     true,
		RequireSpecial:   true,
	}
}

// ApplyDefaults fills in the minimum length if unset. The boolean
// requirements default to off so a partially specified policy stays as
// written; use DefaultPolicy for the full platform policy.
func (p *Policy) ApplyDefaults() {
	if p.MinLength == 0 {
		p.MinLength = 8
	}
}

// Strength is the result of checking a password against a Policy.
// Valid is a hard gate; Score is advisory and never affects Valid.
type Strength struct {
	// Valid is true iff every policy requirement is met.
	Valid bool `json:"valid"`

	// Errors holds one human-readable message per unmet requirement.
	Errors []string `json:"errors,omitempty"`

	// Score is a 0-100 strength indicator derived from length beyond the
	// minimum and the count of satisfied character classes. Adding
	// characters or satisfying another class never decreases it.
	Score int `json:"score"`
}

// Check evaluates a candidate password against the policy.
func (p Policy) Check(plaintext string) Strength {
	var (
		hasUpper   bool
		hasLower   bool
		hasDigit   bool
		hasSpecial bool
		length     int
	)
	for _, r := range plaintext {
		length++
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	var errs []string
	if length < p.MinLength {
		errs = append(errs, fmt.Sprintf("password must be at least %d characters long", p.MinLength))
	}
	if p.RequireUppercase && !hasUpper {
		errs = append(errs, "password must contain at least one uppercase letter")
	}
	if p.RequireLowercase && !hasLower {
		errs = append(errs, "password must contain at least one lowercase letter")
	}
	if p.RequireDigit && !hasDigit {
		errs = append(errs, "password must contain at least one digit")
	}
	if p.RequireSpecial && !hasSpecial {
		errs = append(errs, "password must contain at least one special character")
	}

	return Strength{
		Valid:  len(errs) == 0,
		Errors: errs,
		Score:  p.score(length, hasUpper, hasLower, hasDigit, hasSpecial),
	}
}

// score computes the advisory 0-100 indicator. Each component is
// non-decreasing in its inputs, which keeps the overall score monotonic:
// 20 points for reaching the minimum length, 15 per satisfied character
// class (up to 60), and 2 per character beyond the minimum (up to 20).
func (p Policy) score(length int, hasUpper, hasLower, hasDigit, hasSpecial bool) int {
	score := 0
	if length >= p.MinLength {
		score += 20
	}

	classes := 0
	for _, ok := range []bool{hasUpper, hasLower, hasDigit, hasSpecial} {
		if ok {
			classes++
		}
	}
	score += classes * 15

	extra := length - p.MinLength
	if extra > 10 {
		extra = 10
	}
	if extra > 0 {
		score += extra * 2
	}
	return score
}
