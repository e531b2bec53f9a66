package producer

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/eventbus/internal/contract"
	"github.com/Gunvolt24/eventbus/internal/domain"
	"github.com/Gunvolt24/eventbus/internal/ports"
)

// Option настраивает исходящую запись.
type Option func(rec *domain.OutgoingRecord)

// WithKey задаёт ключ партиционирования.
func WithKey(key []byte) Option {
	return func(rec *domain.OutgoingRecord) { rec.Key = key }
}

// WithPartition отправляет запись в конкретную партицию.
func WithPartition(p int32) Option {
	return func(rec *domain.OutgoingRecord) { rec.Partition = &p }
}

// WithHeaders добавляет заголовки (поверх уже заданных).
func WithHeaders(h map[string][]byte) Option {
	return func(rec *domain.OutgoingRecord) {
		if rec.Headers == nil {
			rec.Headers = make(map[string][]byte, len(h))
		}
		for k, v := range h {
			rec.Headers[k] = v
		}
	}
}

func notConnected() error {
	return &domain.ConnectionError{Op: "send", Err: domain.ErrNotConnected}
}

// Send сериализует value контрактом и ставит в очередь. Без соединения
// возвращает *domain.ConnectionError сразу и ничего не сериализует.
func Send[T any](ctx context.Context, p ports.Publisher, c contract.Contract[T], value T, opts ...Option) error {
	if !p.IsConnected() {
		return notConnected()
	}
	rec, err := build(c, value, opts)
	if err != nil {
		return err
	}
	return p.Enqueue(ctx, rec)
}

// SendBatch сначала сериализует все значения (ошибка любого: ничего не отправлено),
// затем ставит их в очередь по порядку.
func SendBatch[T any](ctx context.Context, p ports.Publisher, c contract.Contract[T], values []T, opts ...Option) error {
	if !p.IsConnected() {
		return notConnected()
	}
	recs := make([]*domain.OutgoingRecord, 0, len(values))
	for i, v := range values {
		rec, err := build(c, v, opts)
		if err != nil {
			return fmt.Errorf("value #%d: %w", i, err)
		}
		recs = append(recs, rec)
	}

	var errs []error
	for _, rec := range recs {
		if err := p.Enqueue(ctx, rec); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func build[T any](c contract.Contract[T], value T, opts []Option) (*domain.OutgoingRecord, error) {
	raw, err := c.Serialize(value)
	if err != nil {
		return nil, err
	}
	rec := &domain.OutgoingRecord{Topic: c.Topic(), Value: raw}
	for _, opt := range opts {
		opt(rec)
	}
	return rec, nil
}
