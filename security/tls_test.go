package security

import (
	"crypto/tls"
	"testing"

	"github.com/peoplekit/authkit/security/tlstest"
)

func TestTLSConfig_Disabled(t *testing.T) {
	var nilCfg *TLSConfig
	if nilCfg.IsEnabled() {
		t.Error("nil config must be disabled")
	}

	cfg := &TLSConfig{}
	if cfg.IsEnabled() {
		t.Error("zero-value config must be disabled")
	}
	result, err := cfg.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if result != nil {
		t.Fatal("expected nil tls.Config when disabled")
	}
}

func TestTLSConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *TLSConfig
		wantErr bool
	}{
		{"nil", nil, false},
		{"zero", &TLSConfig{}, false},
		{"cert and key", &TLSConfig{CertFile: "cert.pem", KeyFile: "key.pem"}, false},
		{"cert without key", &TLSConfig{CertFile: "cert.pem"}, true},
		{"key without cert", &TLSConfig{KeyFile: "key.pem"}, true},
		{"client ca without pair", &TLSConfig{ClientCAFile: "ca.pem"}, true},
		{
			"full mtls",
			&TLSConfig{CertFile: "cert.pem", KeyFile: "key.pem", ClientCAFile: "ca.pem"},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTLSConfig_Build_ServerCert(t *testing.T) {
	certs := tlstest.GenerateTLSCerts(t)
	cfg := &TLSConfig{
		CertFile: certs.CertFile,
		KeyFile:  certs.KeyFile,
	}

	result, err := cfg.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if result == nil {
		t.Fatal("expected non-nil tls.Config")
	}
	if len(result.Certificates) != 1 {
		t.Errorf("len(Certificates) = %d, want 1", len(result.Certificates))
	}
	if result.MinVersion != tls.VersionTLS12 {
		t.Errorf("MinVersion = %d, want TLS 1.2 default", result.MinVersion)
	}
	if result.ClientAuth != tls.NoClientCert {
		t.Errorf("ClientAuth = %v, want NoClientCert without client CA", result.ClientAuth)
	}
}

func TestTLSConfig_Build_MutualTLS(t *testing.T) {
	certs := tlstest.GenerateTLSCerts(t)
	cfg := &TLSConfig{
		CertFile:     certs.CertFile,
		KeyFile:      certs.KeyFile,
		ClientCAFile: certs.CAFile,
		MinVersion:   tls.VersionTLS13,
	}

	result, err := cfg.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if result.ClientCAs == nil {
		t.Error("expected ClientCAs to be set")
	}
	if result.ClientAuth != tls.RequireAndVerifyClientCert {
		t.Errorf("ClientAuth = %v, want RequireAndVerifyClientCert", result.ClientAuth)
	}
	if result.MinVersion != tls.VersionTLS13 {
		t.Errorf("MinVersion = %d, want TLS 1.3", result.MinVersion)
	}
}

func TestTLSConfig_Build_MissingFiles(t *testing.T) {
	cfg := &TLSConfig{CertFile: "/nonexistent/cert.pem", KeyFile: "/nonexistent/key.pem"}
	if _, err := cfg.Build(); err == nil {
		t.Fatal("expected error for nonexistent certificate files")
	}
}

func TestTLSConfig_Build_InvalidClientCA(t *testing.T) {
	certs := tlstest.GenerateTLSCerts(t)
	cfg := &TLSConfig{
		CertFile:     certs.CertFile,
		KeyFile:      certs.KeyFile,
		ClientCAFile: tlstest.WriteInvalidPEM(t, "bad-ca.pem"),
	}
	if _, err := cfg.Build(); err == nil {
		t.Fatal("expected error for invalid client CA PEM")
	}
}
