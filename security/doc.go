// Package security provides TLS configuration for the HTTP server.
//
// The zero value means TLS is disabled and the server speaks cleartext
// (h2c). Setting a certificate/key pair enables HTTPS; setting a client CA
// additionally enforces mutual TLS.
//
//	cfg := security.TLSConfig{
//	    CertFile: "/etc/hr-api/tls/cert.pem",
//	    KeyFile:  "/etc/hr-api/tls/key.pem",
//	}
//
//	tlsConfig, err := cfg.Build()
package security
