// Пакет producer публикует типизированные сообщения в топики контрактов.
// Отправка асинхронная: Send возвращается после постановки в очередь,
// итог доставки приходит в колбэк.
package producer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Gunvolt24/eventbus/internal/domain"
	"github.com/Gunvolt24/eventbus/internal/ports"
	"github.com/Gunvolt24/eventbus/pkg/ctxmeta"
	"github.com/Gunvolt24/eventbus/pkg/metrics"
	"github.com/Gunvolt24/eventbus/pkg/telemetry"
)

// HeaderRequestID: заголовок записи с request_id породившего её запроса.
const HeaderRequestID = ctxmeta.HeaderRequestID

const defaultFlushTimeout = 10 * time.Second

var tracer = otel.Tracer("github.com/Gunvolt24/eventbus/internal/producer")

// Config: параметры рантайма продьюсера.
type Config struct {
	FlushTimeout time.Duration
	// OnDeliveryError получает ошибку доставки; повторы отправки на совести хоста.
	OnDeliveryError func(err error, report domain.DeliveryReport)
}

var _ ports.Publisher = (*Runtime)(nil)

// Runtime: продьюсер поверх ports.ProducerClient.
type Runtime struct {
	client ports.ProducerClient
	cfg    Config
	log    ports.Logger

	connected atomic.Bool
	pending   inflight
	closeOnce sync.Once
	closeErr  error
}

func New(client ports.ProducerClient, cfg Config, log ports.Logger) *Runtime {
	if cfg.FlushTimeout <= 0 {
		cfg.FlushTimeout = defaultFlushTimeout
	}
	return &Runtime{client: client, cfg: cfg, log: log}
}

// Connect: та же форма, что у консьюмера; ошибка всегда *domain.ConnectionError.
func (r *Runtime) Connect(ctx context.Context, timeout time.Duration) error {
	if err := r.client.Connect(ctx, timeout); err != nil {
		var ce *domain.ConnectionError
		if errors.As(err, &ce) {
			return err
		}
		return &domain.ConnectionError{Op: "connect", Err: err}
	}
	r.connected.Store(true)
	return nil
}

func (r *Runtime) IsConnected() bool { return r.connected.Load() }

// Enqueue ставит уже сериализованную запись в очередь. Без соединения сразу
// возвращает *domain.ConnectionError и ничего не ставит.
func (r *Runtime) Enqueue(ctx context.Context, rec *domain.OutgoingRecord) error {
	if !r.IsConnected() {
		return &domain.ConnectionError{Op: "send", Err: domain.ErrNotConnected}
	}

	spanCtx, span := tracer.Start(ctx, "publish "+rec.Topic,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(attribute.String("messaging.destination.name", rec.Topic)),
	)
	defer span.End()

	rec.Headers = telemetry.InjectHeaders(spanCtx, rec.Headers)
	if _, ok := rec.Headers[HeaderRequestID]; !ok {
		rid, ok := ctxmeta.RequestIDFromContext(ctx)
		if !ok {
			rid = uuid.NewString()
		}
		rec.Headers[HeaderRequestID] = []byte(rid)
	}

	r.pending.add()
	metrics.ProducerInFlight.Inc()
	metrics.ProducerRecordsEnqueued.WithLabelValues(rec.Topic).Inc()
	r.client.Produce(rec, r.onDelivery)
	return nil
}

func (r *Runtime) onDelivery(report domain.DeliveryReport, err error) {
	defer r.pending.done()
	metrics.ProducerInFlight.Dec()

	if err == nil {
		metrics.ProducerRecordsDelivered.WithLabelValues(report.Topic).Inc()
		return
	}
	metrics.ProducerDeliveryFailures.WithLabelValues(report.Topic).Inc()
	if r.cfg.OnDeliveryError != nil {
		r.cfg.OnDeliveryError(err, report)
		return
	}
	r.log.Errorf(context.Background(), "delivery failed topic=%s partition=%d: %v", report.Topic, report.Partition, err)
}

// Flush ждёт подтверждения всех записей в очереди не дольше timeout.
func (r *Runtime) Flush(ctx context.Context, timeout time.Duration) error {
	fctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	err := r.client.Flush(fctx)
	if err == nil {
		err = r.pending.wait(fctx)
	}
	if err != nil {
		if errors.Is(fctx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			return fmt.Errorf("%w: %d record(s) still in flight", domain.ErrFlushTimeout, r.pending.count())
		}
		return err
	}
	return nil
}

// Close: Flush(FlushTimeout), затем отключение. Повторный вызов возвращает тот же результат.
func (r *Runtime) Close(ctx context.Context) error {
	r.closeOnce.Do(func() {
		if r.IsConnected() {
			r.closeErr = r.Flush(ctx, r.cfg.FlushTimeout)
			if r.closeErr != nil {
				r.log.Warnf(ctx, "producer flush on close: %v", r.closeErr)
			}
		}
		r.connected.Store(false)
		r.client.Close()
	})
	return r.closeErr
}

// inflight: счётчик записей без отчёта о доставке, с ожиданием нуля.
type inflight struct {
	mu   sync.Mutex
	n    int
	zero chan struct{}
}

func (f *inflight) add() {
	f.mu.Lock()
	if f.n == 0 {
		f.zero = make(chan struct{})
	}
	f.n++
	f.mu.Unlock()
}

func (f *inflight) done() {
	f.mu.Lock()
	f.n--
	if f.n == 0 {
		close(f.zero)
	}
	f.mu.Unlock()
}

func (f *inflight) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.n
}

func (f *inflight) wait(ctx context.Context) error {
	f.mu.Lock()
	if f.n == 0 {
		f.mu.Unlock()
		return nil
	}
	ch := f.zero
	f.mu.Unlock()

	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
