package kafka

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/plugin/kzap"
	"go.uber.org/zap"

	"github.com/Gunvolt24/eventbus/internal/domain"
	"github.com/Gunvolt24/eventbus/internal/ports"
)

var _ ports.ProducerClient = (*ProducerClient)(nil)

// ProducerClient: асинхронная отправка записей через franz-go.
type ProducerClient struct {
	cfg ProducerConfig
	log ports.Logger
	zl  *zap.Logger

	newClient func(opts ...kgo.Opt) (produceClient, error)

	mu     sync.RWMutex
	client produceClient
}

func NewProducerClient(cfg ProducerConfig, log ports.Logger, zl *zap.Logger) *ProducerClient {
	return &ProducerClient{cfg: cfg, log: log, zl: zl, newClient: newKgoProducer}
}

// Connect создаёт клиента и проверяет доступность кластера.
func (p *ProducerClient) Connect(ctx context.Context, timeout time.Duration) error {
	if err := p.cfg.Validate(); err != nil {
		return err
	}
	p.mu.RLock()
	connected := p.client != nil
	p.mu.RUnlock()
	if connected {
		return nil
	}

	opts := p.cfg.clientOptions()
	if p.zl != nil {
		opts = append(opts, kgo.WithLogger(kzap.New(p.zl, kzap.Level(kgo.LogLevelWarn))))
	}
	cl, err := p.newClient(opts...)
	if err != nil {
		return &domain.ConnectionError{Op: "connect", Err: err}
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := cl.Ping(pingCtx); err != nil {
		cl.Close()
		timedOut := errors.Is(pingCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil
		return &domain.ConnectionError{Op: "connect", Timeout: timedOut, Err: err}
	}

	p.mu.Lock()
	p.client = cl
	p.mu.Unlock()
	p.log.Infof(ctx, "kafka producer connected brokers=%v", p.cfg.Brokers)
	return nil
}

// Produce ставит запись в очередь клиента. Итог (включая ошибку «не подключён») приходит в done.
func (p *ProducerClient) Produce(rec *domain.OutgoingRecord, done ports.DeliveryFunc) {
	p.mu.RLock()
	cl := p.client
	p.mu.RUnlock()

	if cl == nil {
		done(reportOf(rec, -1, -1), &domain.ConnectionError{Op: "send", Err: domain.ErrNotConnected})
		return
	}
	if rec.Topic == "" {
		done(reportOf(rec, -1, -1), errEmptyTopic)
		return
	}
	if rec.Partition != nil && *rec.Partition < 0 {
		done(reportOf(rec, -1, -1), errNegativePartition)
		return
	}

	r := &kgo.Record{
		Topic:   rec.Topic,
		Key:     rec.Key,
		Value:   rec.Value,
		Headers: toKgoHeaders(rec.Headers),
	}
	// Запись живёт дольше запроса, который её породил: контекст отправки не наследуется.
	ctx := context.Background()
	if rec.Partition != nil {
		r.Partition = *rec.Partition
		ctx = withExplicitPartition(ctx)
	}

	cl.Produce(ctx, r, func(r *kgo.Record, err error) {
		done(domain.DeliveryReport{
			Topic:     r.Topic,
			Partition: r.Partition,
			Offset:    r.Offset,
			Key:       r.Key,
			Headers:   fromKgoHeaders(r.Headers),
		}, err)
	})
}

// Flush ждёт подтверждения всех буферизованных записей или отмены ctx.
func (p *ProducerClient) Flush(ctx context.Context) error {
	p.mu.RLock()
	cl := p.client
	p.mu.RUnlock()
	if cl == nil {
		return nil
	}
	return cl.Flush(ctx)
}

// Close закрывает клиента; незавершённые записи получат ошибку в колбэке.
func (p *ProducerClient) Close() {
	p.mu.Lock()
	cl := p.client
	p.client = nil
	p.mu.Unlock()
	if cl != nil {
		cl.Close()
	}
}

func reportOf(rec *domain.OutgoingRecord, partition int32, offset int64) domain.DeliveryReport {
	if rec.Partition != nil {
		partition = *rec.Partition
	}
	return domain.DeliveryReport{
		Topic:     rec.Topic,
		Partition: partition,
		Offset:    offset,
		Key:       rec.Key,
		Headers:   rec.Headers,
	}
}
