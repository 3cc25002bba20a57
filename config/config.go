// Package config loads and validates the service configuration: YAML file
// plus environment overrides, composed from each module's own Config type.
// Construct it once at process start and pass it into the modules — nothing
// reads configuration through globals.
package config

import (
	"fmt"

	"github.com/peoplekit/authkit/auth/password"
	"github.com/peoplekit/authkit/auth/token"
	"github.com/peoplekit/authkit/logger"
	"github.com/peoplekit/authkit/server"
)

// Config is the composed configuration for the HR API process.
type Config struct {
	Name        string `yaml:"name" mapstructure:"name"`
	Environment string `yaml:"environment" mapstructure:"environment"`
	Debug       bool   `yaml:"debug" mapstructure:"debug"`

	Logging  logger.Config   `yaml:"logging" mapstructure:"logging"`
	Server   server.Config   `yaml:"server" mapstructure:"server"`
	Token    token.Config    `yaml:"token" mapstructure:"token"`
	Password password.Config `yaml:"password" mapstructure:"password"`
}

// Load reads, defaults, and validates the full configuration.
func Load(serviceName string, opts ...LoaderOption) (*Config, error) {
	cfg := &Config{}
	if err := LoadInto(serviceName, cfg, opts...); err != nil {
		return nil, err
	}
	if cfg.Name == "" {
		cfg.Name = serviceName
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyDefaults applies defaults to every section.
func (c *Config) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	c.Logging.ApplyDefaults()
	c.Server.ApplyDefaults()
	c.Token.ApplyDefaults()
	c.Password.ApplyDefaults()
}

// Validate validates every section. Secrets are validated here too, so a
// process missing its signing keys refuses to start instead of failing on
// the first login.
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("config.name is required")
	}
	validEnvs := []string{"development", "staging", "production"}
	found := false
	for _, v := range validEnvs {
		if c.Environment == v {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("config.environment must be one of [development, staging, production] (got: %s)", c.Environment)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("config.server: %w", err)
	}
	if err := c.Token.Validate(); err != nil {
		return fmt.Errorf("config.token: %w", err)
	}
	if err := c.Password.Validate(); err != nil {
		return fmt.Errorf("config.password: %w", err)
	}
	return nil
}
