package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/peoplekit/authkit/logger"
	"github.com/peoplekit/authkit/server/endpoint"
	"github.com/peoplekit/authkit/server/middleware"
	"github.com/peoplekit/authkit/version"
)

// Server is the HTTP server hosting the HR API. It is backed by Gin. Without
// TLS it serves h2c so HTTP/2 clients work without TLS termination in front;
// with TLS configured it serves HTTPS with standard ALPN-negotiated HTTP/2.
type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	mux        *http.ServeMux
	config     Config
	log        *logger.Logger
}

// New creates a new Server. The Gin engine is created bare — call
// ApplyMiddleware (or register middleware yourself) before Start.
func New(cfg Config, log *logger.Logger) *Server {
	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	mux := http.NewServeMux()
	mux.Handle("/", engine)

	// Request logging wraps the whole mux so non-Gin mounts are covered too.
	handler := middleware.RequestLogger(log)(mux)

	if !cfg.TLS.IsEnabled() {
		h2s := &http2.Server{
			MaxConcurrentStreams: 250,
			IdleTimeout:          120 * time.Second,
		}
		handler = h2c.NewHandler(handler, h2s)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.IdleTimeout) * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		engine:     engine,
		mux:        mux,
		config:     cfg,
		log:        log.WithComponent("server"),
	}
}

// GinEngine returns the underlying Gin engine for route registration.
func (s *Server) GinEngine() *gin.Engine {
	return s.engine
}

// Handle mounts an http.Handler at the given pattern on the root ServeMux,
// alongside the Gin engine.
func (s *Server) Handle(pattern string, handler http.Handler) {
	s.mux.Handle(pattern, handler)
	s.log.Debug("handler mounted", logger.Fields("pattern", pattern))
}

// Start binds the port and begins serving. It returns once the listener is
// bound so the caller knows the port is ready; serving continues in a
// goroutine.
func (s *Server) Start(ctx context.Context) error {
	s.log.Info("starting HTTP server", logger.Fields(
		"addr", s.httpServer.Addr,
		"tls", s.config.TLS.IsEnabled(),
		"version", version.Short(),
	))

	if s.config.TLS.IsEnabled() {
		tlsConfig, err := s.config.TLS.Build()
		if err != nil {
			return fmt.Errorf("server TLS setup: %w", err)
		}
		s.httpServer.TLSConfig = tlsConfig
	}

	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("server failed to bind %s: %w", s.httpServer.Addr, err)
	}

	go func() {
		var err error
		if s.config.TLS.IsEnabled() {
			// Certificates are already loaded into TLSConfig by Build.
			err = s.httpServer.ServeTLS(listener, "", "")
		} else {
			err = s.httpServer.Serve(listener)
		}
		if err != nil && err != http.ErrServerClosed {
			s.log.Error("server error", logger.Fields(logger.FieldError, err.Error()))
		}
	}()

	return nil
}

// Stop gracefully shuts down the server with a 5-second deadline.
func (s *Server) Stop(ctx context.Context) error {
	s.log.Info("shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}
	return nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// ApplyMiddleware applies the standard pre-authentication middleware stack
// to the Gin engine: recovery, correlation-ID, and CORS. Authentication and
// authorization are per-route and registered by the caller.
func (s *Server) ApplyMiddleware() {
	s.engine.Use(middleware.Recovery())
	s.engine.Use(middleware.CorrelationID())
	s.engine.Use(middleware.CORS(s.config.CORS))
}

// RegisterDefaultEndpoints registers the standard health and probe routes.
func (s *Server) RegisterDefaultEndpoints(serviceName string, checker endpoint.HealthChecker) {
	s.engine.GET("/health", endpoint.Health(serviceName, checker))
	s.engine.GET("/alive", endpoint.Liveness(serviceName))
	s.engine.GET("/ready", endpoint.Readiness(serviceName, checker))
}

// ApplyDefaults applies the standard middleware stack and registers the
// default endpoints.
func (s *Server) ApplyDefaults(serviceName string, checker endpoint.HealthChecker) {
	s.ApplyMiddleware()
	s.RegisterDefaultEndpoints(serviceName, checker)
}
