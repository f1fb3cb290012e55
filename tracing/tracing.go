// Package tracing provides OpenTelemetry spans for document retrieval. It is
// entirely optional — spans are only created when a [Config] is wired in via
// the WithTracing client option.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	grpcStatus "google.golang.org/grpc/status"
)

// Config holds the OpenTelemetry configuration used for retrieval spans.
type Config struct {
	// TracerProvider supplies the Tracer used to create spans. When nil the
	// global otel.GetTracerProvider() is used.
	TracerProvider trace.TracerProvider
}

// tracer returns a configured [trace.Tracer].
func (c *Config) tracer() trace.Tracer {
	tp := c.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return tp.Tracer("github.com/Keksclan/snapfetch/tracing")
}

// StartGet opens a client span for one GetDocument call. A nil cfg yields a
// no-op span, so callers never need to branch.
func StartGet(ctx context.Context, cfg *Config, path, requestID string) (context.Context, trace.Span) {
	if cfg == nil {
		return noop.NewTracerProvider().Tracer("").Start(ctx, "snapfetch.GetDocument")
	}
	ctx, span := cfg.tracer().Start(ctx, "snapfetch.GetDocument", trace.WithSpanKind(trace.SpanKindClient))
	span.SetAttributes(
		attribute.String("snapfetch.path", path),
		attribute.String("snapfetch.request_id", requestID),
	)
	return ctx, span
}

// RecordOutcome annotates the span with how the call was satisfied:
// "cached", "refresh", or "passthrough".
func RecordOutcome(span trace.Span, outcome string) {
	span.SetAttributes(attribute.String("snapfetch.cache.outcome", outcome))
}

// RecordResult sets the span status from the call result and records the
// gRPC status code carried by remote errors.
func RecordResult(span trace.Span, err error) {
	st, _ := grpcStatus.FromError(err)
	span.SetAttributes(attribute.String("snapfetch.status_code", st.Code().String()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, st.Message())
		return
	}
	span.SetStatus(codes.Ok, "")
}
