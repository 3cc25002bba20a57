// Package server provides the HTTP harness for the HR API: a Gin engine
// with HTTP/2 (h2c) support, lifecycle management, the standard middleware
// stack, and the JSON response envelopes shared by every endpoint.
//
// # Middleware
//
// Built-in middleware (server/middleware):
//
//   - Recovery: panic recovery with structured logging
//   - CorrelationID: correlation-ID generation and propagation
//   - Authenticate: bearer-token authentication
//   - Authorize: role-hierarchy authorization
//   - CORS: cross-origin access for the dashboard
//   - RequestLogger: request/response logging with duration tracking
//
// # Endpoints
//
// Built-in endpoints (server/endpoint):
//
//   - /health: service health
//   - /alive: liveness probe
//   - /ready: readiness probe
package server
