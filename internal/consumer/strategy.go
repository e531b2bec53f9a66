package consumer

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/Gunvolt24/eventbus/internal/domain"
	"github.com/Gunvolt24/eventbus/internal/ports"
	"github.com/Gunvolt24/eventbus/pkg/ctxmeta"
	"github.com/Gunvolt24/eventbus/pkg/metrics"
	"github.com/Gunvolt24/eventbus/pkg/telemetry"
)

const DefaultConcurrency = 8

var tracer = otel.Tracer("github.com/Gunvolt24/eventbus/internal/consumer")

// ConsumeStrategy: мост между сырыми записями и обработчиками, плюс единица подтверждения.
type ConsumeStrategy interface {
	// BatchSize: сколько записей просить у соединения за poll.
	BatchSize() int
	// Dispatch декодирует записи и вызывает обработчики; ошибка любого из них проваливает цикл.
	Dispatch(ctx context.Context, recs []domain.RawRecord) error
	// Ack фиксирует оффсеты обработанных записей.
	Ack(ctx context.Context, recs []domain.RawRecord) error
	// SeekOnRetry отматывает соединение так, чтобы следующий poll вернул те же записи.
	SeekOnRetry(recs []domain.RawRecord) error
	Mode() ModeKind
}

// NewStrategy выбирает стратегию по режиму; режим и регистрации должны совпадать.
func NewStrategy(m Mode, conn ports.BrokerConnection, reg *Registry, concurrency int) (ConsumeStrategy, error) {
	if err := validateRegistry(m, reg); err != nil {
		return nil, err
	}
	if m.Kind == ModeBatch {
		return NewBatchStrategy(conn, reg, m.Size, concurrency), nil
	}
	return NewSingleStrategy(conn, reg, concurrency), nil
}

// SingleStrategy: одна запись за цикл, коммит этой записи после всех её обработчиков.
type SingleStrategy struct {
	conn        ports.BrokerConnection
	byTopic     map[string][]Registration
	concurrency int
}

var _ ConsumeStrategy = (*SingleStrategy)(nil)

func NewSingleStrategy(conn ports.BrokerConnection, reg *Registry, concurrency int) *SingleStrategy {
	return &SingleStrategy{conn: conn, byTopic: reg.byTopic(), concurrency: normConcurrency(concurrency)}
}

func (s *SingleStrategy) BatchSize() int { return 1 }

func (s *SingleStrategy) Mode() ModeKind { return ModeSingle }

func (s *SingleStrategy) Dispatch(ctx context.Context, recs []domain.RawRecord) error {
	start := time.Now()
	defer func() { metrics.ConsumerDispatchDuration.WithLabelValues(string(ModeSingle)).Observe(time.Since(start).Seconds()) }()

	for _, rec := range recs {
		one := []domain.RawRecord{rec}
		invs, err := prepareAll(s.byTopic[rec.Topic], one)
		if err != nil {
			return err
		}

		spanCtx, span := tracer.Start(recordContext(ctx, rec), "consume "+rec.Topic,
			trace.WithSpanKind(trace.SpanKindConsumer),
			trace.WithAttributes(
				attribute.String("messaging.destination.name", rec.Topic),
				attribute.Int64("messaging.kafka.partition", int64(rec.Partition)),
				attribute.Int64("messaging.kafka.offset", rec.Offset),
			),
		)
		err = runLimited(spanCtx, s.concurrency, invs)
		endSpan(span, err)
		if err != nil {
			return &domain.RecordError{Ref: rec.Ref(), Err: err}
		}
	}
	return nil
}

// Ack: коммит ровно обработанной записи.
func (s *SingleStrategy) Ack(ctx context.Context, recs []domain.RawRecord) error {
	for _, rec := range recs {
		if err := s.conn.CommitMessage(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

// SeekOnRetry: назад ровно на оффсет неудачной записи.
func (s *SingleStrategy) SeekOnRetry(recs []domain.RawRecord) error {
	if len(recs) == 0 {
		return nil
	}
	rec := recs[0]
	return s.conn.Seek(rec.Topic, rec.Partition, rec.Offset)
}

// BatchStrategy: до size записей за цикл, один групповой коммит на батч.
type BatchStrategy struct {
	conn        ports.BrokerConnection
	regs        []Registration
	size        int
	concurrency int
}

var _ ConsumeStrategy = (*BatchStrategy)(nil)

func NewBatchStrategy(conn ports.BrokerConnection, reg *Registry, size, concurrency int) *BatchStrategy {
	if size < 1 {
		size = 1
	}
	return &BatchStrategy{
		conn:        conn,
		regs:        append([]Registration(nil), reg.regs...),
		size:        size,
		concurrency: normConcurrency(concurrency),
	}
}

func (b *BatchStrategy) BatchSize() int { return b.size }

func (b *BatchStrategy) Mode() ModeKind { return ModeBatch }

// Dispatch: каждый обработчик получает только записи своих топиков; декодирование
// целиком до первого вызова, поэтому битая запись не даёт запуститься ни одному обработчику.
func (b *BatchStrategy) Dispatch(ctx context.Context, recs []domain.RawRecord) error {
	start := time.Now()
	defer func() { metrics.ConsumerDispatchDuration.WithLabelValues(string(ModeBatch)).Observe(time.Since(start).Seconds()) }()

	invs, err := prepareAll(b.regs, recs)
	if err != nil {
		return batchError(recs, err)
	}

	spanCtx, span := tracer.Start(ctx, "consume batch",
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			attribute.Int("messaging.batch.message_count", len(recs)),
			attribute.Int("eventbus.handler_count", len(invs)),
		),
	)
	err = runLimited(spanCtx, b.concurrency, invs)
	endSpan(span, err)
	if err != nil {
		return batchError(recs, err)
	}
	return nil
}

func batchError(recs []domain.RawRecord, err error) error {
	refs := make([]domain.RecordRef, len(recs))
	for i, r := range recs {
		refs[i] = r.Ref()
	}
	return &domain.BatchError{Refs: refs, Err: err}
}

// Ack: групповой коммит курсора по всему, что выдал poll.
func (b *BatchStrategy) Ack(ctx context.Context, _ []domain.RawRecord) error {
	return b.conn.Commit(ctx)
}

// SeekOnRetry: по каждой партиции назад на минимальный оффсет неудачного батча.
func (b *BatchStrategy) SeekOnRetry(recs []domain.RawRecord) error {
	for _, p := range minOffsets(recs) {
		if err := b.conn.Seek(p.Topic, p.Partition, p.Offset); err != nil {
			return err
		}
	}
	return nil
}

// minOffsets: минимальный оффсет на (topic, partition), в стабильном порядке.
func minOffsets(recs []domain.RawRecord) []domain.RecordRef {
	type tp struct {
		topic     string
		partition int32
	}
	mins := make(map[tp]int64)
	for _, r := range recs {
		k := tp{r.Topic, r.Partition}
		if cur, ok := mins[k]; !ok || r.Offset < cur {
			mins[k] = r.Offset
		}
	}
	out := make([]domain.RecordRef, 0, len(mins))
	for k, off := range mins {
		out = append(out, domain.RecordRef{Topic: k.topic, Partition: k.partition, Offset: off})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Topic != out[j].Topic {
			return out[i].Topic < out[j].Topic
		}
		return out[i].Partition < out[j].Partition
	})
	return out
}

func prepareAll(regs []Registration, recs []domain.RawRecord) ([]invocation, error) {
	invs := make([]invocation, 0, len(regs))
	for _, reg := range regs {
		inv, err := reg.prepare(recs)
		if err != nil {
			return nil, err
		}
		if inv != nil {
			invs = append(invs, inv)
		}
	}
	return invs, nil
}

// runLimited запускает вызовы параллельно, не больше limit одновременно, и ждёт всех.
// Контекст обработчиков не отменяется остановкой консьюмера.
func runLimited(ctx context.Context, limit int, invs []invocation) error {
	switch len(invs) {
	case 0:
		return nil
	case 1:
		return safeInvoke(context.WithoutCancel(ctx), invs[0])
	}

	hctx := context.WithoutCancel(ctx)
	var g errgroup.Group
	g.SetLimit(limit)
	for _, inv := range invs {
		inv := inv
		g.Go(func() error { return safeInvoke(hctx, inv) })
	}
	return g.Wait()
}

func safeInvoke(ctx context.Context, inv invocation) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", domain.ErrHandlerPanic, r)
		}
	}()
	return inv(ctx)
}

// recordContext: родительский спан и request_id берутся из заголовков записи.
func recordContext(ctx context.Context, rec domain.RawRecord) context.Context {
	return ctxmeta.WithRequestIDFromHeaders(telemetry.ExtractHeaders(ctx, rec.Headers), rec.Headers)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func normConcurrency(n int) int {
	if n <= 0 {
		return DefaultConcurrency
	}
	return n
}
