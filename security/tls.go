package security

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
)

// TLSConfig holds server-side TLS settings. The zero value disables TLS.
type TLSConfig struct {
	// CertFile is the path to the server certificate PEM file.
	CertFile string `yaml:"cert_file" mapstructure:"cert_file"`

	// KeyFile is the path to the server private key PEM file.
	KeyFile string `yaml:"key_file" mapstructure:"key_file"`

	// ClientCAFile, when set, enforces mutual TLS: clients must present a
	// certificate signed by this CA.
	ClientCAFile string `yaml:"client_ca_file" mapstructure:"client_ca_file"`

	// MinVersion is the minimum TLS version (e.g., tls.VersionTLS13).
	// Defaults to TLS 1.2 if not set.
	MinVersion uint16 `yaml:"min_version" mapstructure:"min_version"`
}

// IsEnabled returns true when a certificate/key pair is configured.
func (c *TLSConfig) IsEnabled() bool {
	if c == nil {
		return false
	}
	return c.CertFile != "" && c.KeyFile != ""
}

// Validate checks that the TLS configuration is consistent.
func (c *TLSConfig) Validate() error {
	if c == nil {
		return nil
	}
	if (c.CertFile != "") != (c.KeyFile != "") {
		return fmt.Errorf("security/tls: both cert_file and key_file must be provided together")
	}
	if c.ClientCAFile != "" && !c.IsEnabled() {
		return fmt.Errorf("security/tls: client_ca_file requires cert_file and key_file")
	}
	return nil
}

// Build creates a server *tls.Config from the configuration.
// Returns nil if TLS is not enabled.
func (c *TLSConfig) Build() (*tls.Config, error) {
	if !c.IsEnabled() {
		return nil, nil
	}

	minVersion := c.MinVersion
	if minVersion == 0 {
		minVersion = tls.VersionTLS12
	}

	cert, err := tls.LoadX509KeyPair(c.CertFile, c.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("security/tls: failed to load server certificate: %w", err)
	}

	cfg := &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   minVersion,
	}

	if c.ClientCAFile != "" {
		ca, err := os.ReadFile(c.ClientCAFile)
		if err != nil {
			return nil, fmt.Errorf("security/tls: failed to read client CA file: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(ca) {
			return nil, fmt.Errorf("security/tls: failed to parse client CA certificate")
		}
		cfg.ClientCAs = pool
		cfg.ClientAuth = tls.RequireAndVerifyClientCert
	}

	return cfg, nil
}
