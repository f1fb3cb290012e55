package tracing

import (
	"testing"

	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	grpcCodes "google.golang.org/grpc/codes"
	grpcStatus "google.golang.org/grpc/status"
)

// newTestConfig returns a Config backed by an in-memory span recorder.
func newTestConfig(t *testing.T) (*Config, *tracetest.SpanRecorder) {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })
	return &Config{TracerProvider: tp}, rec
}

func assertAttr(t *testing.T, attrs []attribute.KeyValue, key, want string) {
	t.Helper()
	for _, kv := range attrs {
		if string(kv.Key) == key {
			if got := kv.Value.AsString(); got != want {
				t.Fatalf("attribute %s: got %q, want %q", key, got, want)
			}
			return
		}
	}
	t.Fatalf("attribute %s not found", key)
}

func TestStartGet_CreatesClientSpan(t *testing.T) {
	cfg, rec := newTestConfig(t)

	_, span := StartGet(t.Context(), cfg, "users/alice", "req-1")
	RecordOutcome(span, "cached")
	RecordResult(span, nil)
	span.End()

	spans := rec.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	got := spans[0]
	if got.Name() != "snapfetch.GetDocument" {
		t.Fatalf("unexpected span name %q", got.Name())
	}
	if got.SpanKind() != trace.SpanKindClient {
		t.Fatalf("expected SpanKindClient, got %v", got.SpanKind())
	}
	assertAttr(t, got.Attributes(), "snapfetch.path", "users/alice")
	assertAttr(t, got.Attributes(), "snapfetch.request_id", "req-1")
	assertAttr(t, got.Attributes(), "snapfetch.cache.outcome", "cached")
	assertAttr(t, got.Attributes(), "snapfetch.status_code", "OK")
}

func TestRecordResult_CapturesRemoteStatus(t *testing.T) {
	cfg, rec := newTestConfig(t)

	_, span := StartGet(t.Context(), cfg, "users/ghost", "req-2")
	RecordResult(span, grpcStatus.Error(grpcCodes.Unavailable, "down"))
	span.End()

	spans := rec.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	got := spans[0]
	assertAttr(t, got.Attributes(), "snapfetch.status_code", "Unavailable")
	if len(got.Events()) == 0 {
		t.Fatal("expected a recorded error event")
	}
}

func TestStartGet_NilConfigIsNoop(t *testing.T) {
	_, span := StartGet(t.Context(), nil, "p", "id")
	// Must not panic and must be inert.
	RecordOutcome(span, "refresh")
	RecordResult(span, nil)
	span.End()

	if span.SpanContext().IsValid() {
		t.Fatal("expected a no-op span without a valid context")
	}
}
