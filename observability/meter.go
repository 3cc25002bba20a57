package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/peoplekit/authkit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (development, staging, production).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// AuthMetrics holds metric instruments for the authentication and
// authorization flows.
type AuthMetrics struct {
	authnTotal       metric.Int64Counter
	authzTotal       metric.Int64Counter
	tokenIssuedTotal metric.Int64Counter
	tokenVerifyTime  metric.Float64Histogram
	passwordHashTime metric.Float64Histogram
}

// NewAuthMetrics creates metric instruments on the given meter.
func NewAuthMetrics(meter metric.Meter) (*AuthMetrics, error) {
	authnTotal, err := meter.Int64Counter("authn.attempts.total",
		metric.WithDescription("Authentication attempts by outcome and error code"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating authn.attempts.total counter: %w", err)
	}

	authzTotal, err := meter.Int64Counter("authz.decisions.total",
		metric.WithDescription("Authorization decisions by outcome and requirement"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating authz.decisions.total counter: %w", err)
	}

	tokenIssuedTotal, err := meter.Int64Counter("token.issued.total",
		metric.WithDescription("Tokens issued by token type"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating token.issued.total counter: %w", err)
	}

	tokenVerifyTime, err := meter.Float64Histogram("token.verify.duration",
		metric.WithDescription("Duration of token verification in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating token.verify.duration histogram: %w", err)
	}

	passwordHashTime, err := meter.Float64Histogram("password.hash.duration",
		metric.WithDescription("Duration of password hashing in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating password.hash.duration histogram: %w", err)
	}

	return &AuthMetrics{
		authnTotal:       authnTotal,
		authzTotal:       authzTotal,
		tokenIssuedTotal: tokenIssuedTotal,
		tokenVerifyTime:  tokenVerifyTime,
		passwordHashTime: passwordHashTime,
	}, nil
}

// RecordAuthn records an authentication attempt. The error code is empty on
// success.
func (m *AuthMetrics) RecordAuthn(ctx context.Context, outcome, errorCode string) {
	attrs := []attribute.KeyValue{
		attribute.String(AttrOutcome, outcome),
	}
	if errorCode != "" {
		attrs = append(attrs, attribute.String(AttrErrorCode, errorCode))
	}
	m.authnTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordAuthz records an authorization decision against a requirement.
func (m *AuthMetrics) RecordAuthz(ctx context.Context, decision, requirement string) {
	m.authzTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrOutcome, decision),
		attribute.String(AttrRequirement, requirement),
	))
}

// RecordTokenIssued records an issued token by type ("access" or "refresh").
func (m *AuthMetrics) RecordTokenIssued(ctx context.Context, tokenType string) {
	m.tokenIssuedTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrTokenType, tokenType),
	))
}

// RecordTokenVerify records the duration and outcome of a token verification.
func (m *AuthMetrics) RecordTokenVerify(ctx context.Context, tokenType, outcome string, duration time.Duration) {
	m.tokenVerifyTime.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String(AttrTokenType, tokenType),
		attribute.String(AttrOutcome, outcome),
	))
}

// RecordPasswordHash records the duration of a password hash computation.
func (m *AuthMetrics) RecordPasswordHash(ctx context.Context, algorithm string, duration time.Duration) {
	m.passwordHashTime.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("algorithm", algorithm),
	))
}
