package kafka

import (
	"context"

	"github.com/twmb/franz-go/pkg/kgo"
)

// kafkaClient: та часть *kgo.Client, которой пользуется консьюмер.
// Выделена, чтобы подменять клиента моками в тестах.
type kafkaClient interface {
	Ping(ctx context.Context) error
	PollRecords(ctx context.Context, maxPollRecords int) kgo.Fetches
	CommitRecords(ctx context.Context, rs ...*kgo.Record) error
	CommitUncommittedOffsets(ctx context.Context) error
	SetOffsets(setOffsets map[string]map[int32]kgo.EpochOffset)
	AllowRebalance()
	Close()
}

// produceClient: та часть *kgo.Client, которой пользуется продьюсер.
type produceClient interface {
	Ping(ctx context.Context) error
	Produce(ctx context.Context, r *kgo.Record, promise func(*kgo.Record, error))
	Flush(ctx context.Context) error
	Close()
}

var (
	_ kafkaClient   = (*kgo.Client)(nil)
	_ produceClient = (*kgo.Client)(nil)
)

func newKgoConsumer(opts ...kgo.Opt) (kafkaClient, error) { return kgo.NewClient(opts...) }

func newKgoProducer(opts ...kgo.Opt) (produceClient, error) { return kgo.NewClient(opts...) }
