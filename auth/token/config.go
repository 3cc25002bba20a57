package token

import (
	"errors"
	"time"
)

// Config configures the token service.
// Loadable from YAML/env via mapstructure tags. The config is read-only after
// NewService — the service copies it and nothing mutates it afterwards.
type Config struct {
	// AccessSecret is the HMAC key for access tokens (required).
	AccessSecret string `mapstructure:"access_secret"`

	// RefreshSecret is the HMAC key for refresh tokens (required).
	// Must differ from AccessSecret so compromise of one key does not
	// compromise the other token class.
	RefreshSecret string `mapstructure:"refresh_secret"`

	// AccessTTL is the lifetime of access tokens (default: 15m).
	AccessTTL time.Duration `mapstructure:"access_ttl"`

	// RefreshTTL is the lifetime of refresh tokens (default: 7d).
	// Must be longer than AccessTTL.
	RefreshTTL time.Duration `mapstructure:"refresh_ttl"`

	// Issuer is the "iss" claim embedded in and checked against every token.
	Issuer string `mapstructure:"issuer"`

	// Audience is the "aud" claim embedded in and checked against every token.
	Audience string `mapstructure:"audience"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.AccessTTL == 0 {
		c.AccessTTL = 15 * time.Minute
	}
	if c.RefreshTTL == 0 {
		c.RefreshTTL = 7 * 24 * time.Hour
	}
	if c.Issuer == "" {
		c.Issuer = "authkit"
	}
	if c.Audience == "" {
		c.Audience = "hr-api"
	}
}

// Validate checks required fields and cross-field invariants.
func (c *Config) Validate() error {
	if c.AccessSecret == "" {
		return errors.New("token: access_secret is required")
	}
	if c.RefreshSecret == "" {
		return errors.New("token: refresh_secret is required")
	}
	if c.AccessSecret == c.RefreshSecret {
		return errors.New("token: access_secret and refresh_secret must be distinct")
	}
	if c.AccessTTL <= 0 {
		return errors.New("token: access_ttl must be greater than zero")
	}
	if c.RefreshTTL <= c.AccessTTL {
		return errors.New("token: refresh_ttl must exceed access_ttl")
	}
	return nil
}
