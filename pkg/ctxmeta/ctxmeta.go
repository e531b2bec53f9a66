// Пакет ctxmeta: метаданные запроса и сообщения, которые едут через context.Context
// (request_id, trace_id, span_id). HTTP-слой, консьюмер, продьюсер и логгер зависят
// от этого пакета, но не друг от друга.
package ctxmeta

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

type ctxKey string

const (
	KeyRequestID ctxKey = "request_id"
)

// HeaderRequestID: заголовок записи брокера, в котором request_id переезжает
// от продьюсера к консьюмеру.
const HeaderRequestID = "x-request-id"

// WithRequestID кладёт request_id в контекст (если пусто, ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(KeyRequestID).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithRequestIDFromHeaders переносит request_id из заголовков записи в контекст.
func WithRequestIDFromHeaders(ctx context.Context, headers map[string][]byte) context.Context {
	if v, ok := headers[HeaderRequestID]; ok {
		return WithRequestID(ctx, string(v))
	}
	return ctx
}

func TraceIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return "", false
	}
	return sc.TraceID().String(), true
}

func SpanIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return "", false
	}
	return sc.SpanID().String(), true
}
