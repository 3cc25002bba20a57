// Package logger provides structured logging for the auth core using
// zerolog.
//
// It supports JSON and console output, level configuration, and
// request-scoped enrichment: WithContext pulls the correlation identifier
// and the authenticated principal out of the request context so every
// authentication and authorization event carries them.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.WithComponent("authn").WithContext(ctx)
//	log.Info("authentication succeeded", logger.RequestFields("GET", "/api/me", logger.OutcomeSuccess))
package logger
