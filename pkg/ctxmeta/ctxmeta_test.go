package ctxmeta_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/eventbus/pkg/ctxmeta"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestWithRequestID_PutAndGet(t *testing.T) {
	parent := context.Background()

	ctx := ctxmeta.WithRequestID(parent, "req-123")
	got, ok := ctxmeta.RequestIDFromContext(ctx)
	if !ok || got != "req-123" {
		t.Fatalf("want ok=true, id=req-123; got ok=%v id=%q", ok, got)
	}
	if _, parentOk := ctxmeta.RequestIDFromContext(parent); parentOk {
		t.Fatalf("parent context must not contain request_id")
	}
}

func TestWithRequestID_EmptyID_NoChange(t *testing.T) {
	parent := context.Background()
	if ctx := ctxmeta.WithRequestID(parent, ""); ctx != parent {
		t.Fatalf("WithRequestID with empty id must return the same ctx")
	}
}

func TestRequestIDFromContext_EmptyStoredValue(t *testing.T) {
	ctx := context.WithValue(context.Background(), ctxmeta.KeyRequestID, "")
	if id, ok := ctxmeta.RequestIDFromContext(ctx); ok || id != "" {
		t.Fatalf("empty stored value must be treated as absent, got id=%q ok=%v", id, ok)
	}
}

func TestWithRequestIDFromHeaders(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string][]byte
		wantID  string
		wantOK  bool
	}{
		{"present", map[string][]byte{ctxmeta.HeaderRequestID: []byte("r-7")}, "r-7", true},
		{"empty_value", map[string][]byte{ctxmeta.HeaderRequestID: {}}, "", false},
		{"missing", map[string][]byte{"other": []byte("x")}, "", false},
		{"nil_headers", nil, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := ctxmeta.WithRequestIDFromHeaders(context.Background(), tt.headers)
			id, ok := ctxmeta.RequestIDFromContext(ctx)
			if id != tt.wantID || ok != tt.wantOK {
				t.Fatalf("got %q,%v want %q,%v", id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}

func TestTraceAndSpanIDs_FromSpan(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	traceID, ok := ctxmeta.TraceIDFromContext(ctx)
	if !ok || traceID != span.SpanContext().TraceID().String() {
		t.Fatalf("traceID=%q ok=%v", traceID, ok)
	}
	spanID, ok := ctxmeta.SpanIDFromContext(ctx)
	if !ok || spanID != span.SpanContext().SpanID().String() {
		t.Fatalf("spanID=%q ok=%v", spanID, ok)
	}
}

func TestTraceAndSpanIDs_NoSpan(t *testing.T) {
	if id, ok := ctxmeta.TraceIDFromContext(context.Background()); ok || id != "" {
		t.Fatalf("TraceIDFromContext(background) => %q,%v", id, ok)
	}
	if id, ok := ctxmeta.SpanIDFromContext(context.Background()); ok || id != "" {
		t.Fatalf("SpanIDFromContext(background) => %q,%v", id, ok)
	}
}
