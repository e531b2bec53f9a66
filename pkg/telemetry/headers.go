package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// HeaderCarrier адаптирует заголовки записи брокера к propagation.TextMapCarrier.
type HeaderCarrier map[string][]byte

var _ propagation.TextMapCarrier = HeaderCarrier(nil)

func (h HeaderCarrier) Get(key string) string { return string(h[key]) }

func (h HeaderCarrier) Set(key, value string) { h[key] = []byte(value) }

func (h HeaderCarrier) Keys() []string {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	return keys
}

// InjectHeaders дописывает контекст трассировки в заголовки; nil-карта создаётся.
func InjectHeaders(ctx context.Context, headers map[string][]byte) map[string][]byte {
	if headers == nil {
		headers = make(map[string][]byte, 2)
	}
	otel.GetTextMapPropagator().Inject(ctx, HeaderCarrier(headers))
	return headers
}

// ExtractHeaders восстанавливает родительский спан из заголовков записи.
func ExtractHeaders(ctx context.Context, headers map[string][]byte) context.Context {
	if len(headers) == 0 {
		return ctx
	}
	return otel.GetTextMapPropagator().Extract(ctx, HeaderCarrier(headers))
}
