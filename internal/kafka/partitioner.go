package kafka

import (
	"context"

	"github.com/twmb/franz-go/pkg/kgo"
)

type explicitPartitionKey struct{}

// withExplicitPartition помечает запись: партиция выбрана вызывающим кодом.
func withExplicitPartition(ctx context.Context) context.Context {
	return context.WithValue(ctx, explicitPartitionKey{}, true)
}

func hasExplicitPartition(r *kgo.Record) bool {
	if r.Context == nil {
		return false
	}
	v, _ := r.Context.Value(explicitPartitionKey{}).(bool)
	return v
}

// explicitPartitioner уважает Record.Partition для помеченных записей,
// остальные отдаёт обычному партиционеру.
type explicitPartitioner struct {
	fallback kgo.Partitioner
}

func newExplicitPartitioner(fallback kgo.Partitioner) kgo.Partitioner {
	return &explicitPartitioner{fallback: fallback}
}

func (p *explicitPartitioner) ForTopic(topic string) kgo.TopicPartitioner {
	return &explicitTopicPartitioner{fallback: p.fallback.ForTopic(topic)}
}

type explicitTopicPartitioner struct {
	fallback kgo.TopicPartitioner
}

func (p *explicitTopicPartitioner) RequiresConsistency(r *kgo.Record) bool {
	return hasExplicitPartition(r) || p.fallback.RequiresConsistency(r)
}

func (p *explicitTopicPartitioner) Partition(r *kgo.Record, n int) int {
	if hasExplicitPartition(r) {
		// Номер не подменяется: запись с партицией вне [0, n) клиент сам проваливает
		// в promise, и ошибка доезжает до колбэка доставки.
		return int(r.Partition)
	}
	return p.fallback.Partition(r, n)
}

// OnNewBatch пробрасывается, чтобы sticky-партиционер переключал партицию между батчами.
func (p *explicitTopicPartitioner) OnNewBatch() {
	if nb, ok := p.fallback.(kgo.TopicPartitionerOnNewBatch); ok {
		nb.OnNewBatch()
	}
}
