package observability

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric/noop"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestDefaultTracerConfig(t *testing.T) {
	cfg := DefaultTracerConfig("hr-api")

	if cfg.ServiceName != "hr-api" {
		t.Errorf("ServiceName = %s", cfg.ServiceName)
	}
	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("Endpoint = %s", cfg.Endpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("SampleRate = %f", cfg.SampleRate)
	}
	if !cfg.Insecure {
		t.Error("expected Insecure default for development")
	}
}

func TestDefaultMeterConfig(t *testing.T) {
	cfg := DefaultMeterConfig("hr-api")

	if cfg.ServiceName != "hr-api" {
		t.Errorf("ServiceName = %s", cfg.ServiceName)
	}
	if cfg.Interval != 15*time.Second {
		t.Errorf("Interval = %v", cfg.Interval)
	}
}

func TestNewAuthMetrics(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")
	metrics, err := NewAuthMetrics(meter)
	if err != nil {
		t.Fatalf("NewAuthMetrics: %v", err)
	}

	// Recording on every instrument must not panic.
	ctx := context.Background()
	metrics.RecordAuthn(ctx, "success", "")
	metrics.RecordAuthn(ctx, "failure", "TOKEN_EXPIRED")
	metrics.RecordAuthz(ctx, "denied", "at-least(MANAGER)")
	metrics.RecordTokenIssued(ctx, "access")
	metrics.RecordTokenVerify(ctx, "access", "success", 2*time.Millisecond)
	metrics.RecordPasswordHash(ctx, "bcrypt", 80*time.Millisecond)
}

func TestTracerAndMeter(t *testing.T) {
	if Tracer("test-tracer") == nil {
		t.Fatal("expected non-nil tracer")
	}
	if Meter("test-meter") == nil {
		t.Fatal("expected non-nil meter")
	}
}

func TestStartSpan(t *testing.T) {
	ctx, span := StartSpan(context.Background(), SpanTokenVerify)
	defer span.End()

	if span == nil {
		t.Fatal("expected non-nil span")
	}
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}
}

func TestSetSpanAttribute(t *testing.T) {
	// Use an SDK tracer so span.IsRecording() returns true.
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	defer tp.Shutdown(context.Background())
	otel.SetTracerProvider(tp)

	ctx, span := StartSpan(context.Background(), SpanLogin)
	defer span.End()

	SetSpanAttribute(ctx, AttrUserID, "7b6c1c2e")
	SetSpanAttribute(ctx, AttrRole, "MANAGER")
	SetSpanAttribute(ctx, "attempt", 2)
	SetSpanAttribute(ctx, "elapsed_ms", int64(12))
	SetSpanAttribute(ctx, "score", 87.5)
	SetSpanAttribute(ctx, "valid", true)
	SetSpanAttribute(ctx, "required_roles", []string{"MANAGER", "HR_ADMIN"})

	// Unsupported types are ignored, not a panic.
	SetSpanAttribute(ctx, "unsupported", struct{}{})
}

func TestSetSpanAttribute_NoSpan(t *testing.T) {
	SetSpanAttribute(context.Background(), "key", "value")
}

func TestSetSpanError(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	defer tp.Shutdown(context.Background())
	otel.SetTracerProvider(tp)

	ctx, span := StartSpan(context.Background(), SpanTokenIssue)
	defer span.End()

	SetSpanError(ctx, fmt.Errorf("signing key unavailable"))
	SetSpanError(context.Background(), fmt.Errorf("no recording span"))
}

func TestSpanNameConstants(t *testing.T) {
	if SpanLogin != "auth.login" {
		t.Errorf("SpanLogin = %q", SpanLogin)
	}
	if SpanTokenVerify != "token.verify" {
		t.Errorf("SpanTokenVerify = %q", SpanTokenVerify)
	}
	if SpanPasswordHash != "password.hash" {
		t.Errorf("SpanPasswordHash = %q", SpanPasswordHash)
	}
}

func TestInitTracerSamplingRates(t *testing.T) {
	tests := []struct {
		name       string
		sampleRate float64
	}{
		{"always sample", 1.0},
		{"never sample", 0.0},
		{"ratio based", 0.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTracerConfig("hr-api")
			cfg.SampleRate = tc.sampleRate

			tp, err := InitTracer(context.Background(), cfg)
			if err != nil {
				t.Skipf("InitTracer: %v", err)
			}
			defer tp.Shutdown(context.Background())
		})
	}
}

func TestInitMeter(t *testing.T) {
	mp, err := InitMeter(context.Background(), DefaultMeterConfig("hr-api"))
	if err != nil {
		t.Skipf("InitMeter: %v", err)
	}
	defer mp.Shutdown(context.Background())
}
