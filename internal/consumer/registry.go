// Пакет consumer связывает соединение с брокером, зарегистрированные обработчики
// и цикл poll -> dispatch -> ack.
package consumer

import (
	"context"
	"fmt"
	"sort"

	"github.com/Gunvolt24/eventbus/internal/contract"
	"github.com/Gunvolt24/eventbus/internal/domain"
)

// HandlerFunc обрабатывает одно сообщение.
type HandlerFunc[T any] func(ctx context.Context, msg *domain.Message[T]) error

// BatchHandlerFunc обрабатывает сообщения своих топиков из одного poll, в порядке брокера.
// Должен быть идемпотентным: падение между обработкой и коммитом приводит к повторной
// доставке всего батча.
type BatchHandlerFunc[T any] func(ctx context.Context, msgs []*domain.Message[T]) error

// invocation: подготовленный (уже декодированный) вызов обработчика.
type invocation func(ctx context.Context) error

// Registration: обработчик с его контрактами, тип полезной нагрузки стёрт.
// Создаётся через Single, SingleScoped, Batch, BatchScoped.
type Registration struct {
	batch   bool
	scoped  bool
	topics  []string
	dupes   []string
	prepare func(recs []domain.RawRecord) (invocation, error)
}

// Batch сообщает, ждёт ли обработчик пачку сообщений.
func (r Registration) Batch() bool { return r.batch }

// Scoped: фабрика обработчика вызывается на каждый вызов.
func (r Registration) Scoped() bool { return r.scoped }

// Topics: топики контрактов регистрации, по возрастанию.
func (r Registration) Topics() []string { return append([]string(nil), r.topics...) }

// Single регистрирует обработчик одного сообщения, общий для всех вызовов.
func Single[T any](fn HandlerFunc[T], contracts ...contract.Contract[T]) Registration {
	return single(func() HandlerFunc[T] { return fn }, false, contracts)
}

// SingleScoped: factory вызывается для каждого сообщения.
func SingleScoped[T any](factory func() HandlerFunc[T], contracts ...contract.Contract[T]) Registration {
	return single(factory, true, contracts)
}

// Batch регистрирует батч-обработчик, общий для всех вызовов.
func Batch[T any](fn BatchHandlerFunc[T], contracts ...contract.Contract[T]) Registration {
	return batch(func() BatchHandlerFunc[T] { return fn }, false, contracts)
}

// BatchScoped: factory вызывается для каждого батча.
func BatchScoped[T any](factory func() BatchHandlerFunc[T], contracts ...contract.Contract[T]) Registration {
	return batch(factory, true, contracts)
}

func single[T any](resolve func() HandlerFunc[T], scoped bool, contracts []contract.Contract[T]) Registration {
	byTopic, topics, dupes := indexContracts(contracts)
	return Registration{
		scoped: scoped,
		topics: topics,
		dupes:  dupes,
		prepare: func(recs []domain.RawRecord) (invocation, error) {
			if len(recs) == 0 {
				return nil, nil
			}
			rec := recs[0]
			c, ok := byTopic[rec.Topic]
			if !ok {
				return nil, nil
			}
			v, err := c.Deserialize(rec.Value)
			if err != nil {
				return nil, &domain.RecordError{Ref: rec.Ref(), Err: err}
			}
			msg := domain.NewMessage(rec, v)
			return func(ctx context.Context) error { return resolve()(ctx, msg) }, nil
		},
	}
}

func batch[T any](resolve func() BatchHandlerFunc[T], scoped bool, contracts []contract.Contract[T]) Registration {
	byTopic, topics, dupes := indexContracts(contracts)
	return Registration{
		batch:  true,
		scoped: scoped,
		topics: topics,
		dupes:  dupes,
		prepare: func(recs []domain.RawRecord) (invocation, error) {
			msgs := make([]*domain.Message[T], 0, len(recs))
			for _, rec := range recs {
				c, ok := byTopic[rec.Topic]
				if !ok {
					continue
				}
				v, err := c.Deserialize(rec.Value)
				if err != nil {
					return nil, &domain.RecordError{Ref: rec.Ref(), Err: err}
				}
				msgs = append(msgs, domain.NewMessage(rec, v))
			}
			if len(msgs) == 0 {
				return nil, nil
			}
			return func(ctx context.Context) error { return resolve()(ctx, msgs) }, nil
		},
	}
}

func indexContracts[T any](contracts []contract.Contract[T]) (map[string]contract.Contract[T], []string, []string) {
	byTopic := make(map[string]contract.Contract[T], len(contracts))
	var dupes []string
	for _, c := range contracts {
		if c == nil {
			continue
		}
		if _, ok := byTopic[c.Topic()]; ok {
			dupes = append(dupes, c.Topic())
			continue
		}
		byTopic[c.Topic()] = c
	}
	topics := make([]string, 0, len(byTopic))
	for t := range byTopic {
		topics = append(topics, t)
	}
	sort.Strings(topics)
	return byTopic, topics, dupes
}

// Registry: набор регистраций одного консьюмера. Заполняется хостом до запуска.
type Registry struct {
	regs []Registration
}

func NewRegistry() *Registry { return &Registry{} }

// Register добавляет регистрации. Регистрация без контрактов или с повтором топика
// внутри себя отклоняется.
func (r *Registry) Register(regs ...Registration) error {
	for i, reg := range regs {
		if reg.prepare == nil || len(reg.topics) == 0 {
			return fmt.Errorf("%w: registration #%d has no contracts", domain.ErrInvalidConfig, i)
		}
		if len(reg.dupes) > 0 {
			return fmt.Errorf("%w: registration #%d binds topic(s) %v twice", domain.ErrInvalidConfig, i, reg.dupes)
		}
	}
	r.regs = append(r.regs, regs...)
	return nil
}

// Topics: список подписки, отсортированный и без повторов.
func (r *Registry) Topics() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, reg := range r.regs {
		for _, t := range reg.topics {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}

func (r *Registry) Len() int { return len(r.regs) }

// byTopic: регистрации, связанные с каждым топиком, в порядке регистрации.
func (r *Registry) byTopic() map[string][]Registration {
	out := make(map[string][]Registration)
	for _, reg := range r.regs {
		for _, t := range reg.topics {
			out[t] = append(out[t], reg)
		}
	}
	return out
}
