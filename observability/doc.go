// Package observability provides OpenTelemetry tracing and metrics for the
// authentication and authorization flows.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("hr-api"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, observability.SpanTokenVerify)
//	defer span.End()
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("hr-api"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewAuthMetrics(observability.Meter("hr-api"))
//	metrics.RecordAuthn(ctx, "success", "")
//	metrics.RecordAuthz(ctx, "denied", "at-least(MANAGER)")
package observability
