package consumer

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/Gunvolt24/eventbus/internal/contract"
	"github.com/Gunvolt24/eventbus/internal/domain"
	"github.com/Gunvolt24/eventbus/internal/ports"
	"github.com/Gunvolt24/eventbus/internal/retry"
)

type nopLogger struct{}

func (nopLogger) Debugf(context.Context, string, ...any) {}
func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

type event struct {
	ID int `json:"id" validate:"gte=0"`
}

type wrapperMsg = wrapperspb.StringValue

func eventContract(topic string) contract.Contract[event] { return contract.NewJSON[event](topic) }

func rawEvent(topic string, partition int32, offset int64, id int) domain.RawRecord {
	return domain.RawRecord{
		Topic:       topic,
		Partition:   partition,
		Offset:      offset,
		LeaderEpoch: -1,
		Value:       []byte(fmt.Sprintf(`{"id":%d}`, id)),
	}
}

// sleepRecorder запоминает запрошенные задержки и не ждёт.
type sleepRecorder struct {
	mu sync.Mutex
	ds []time.Duration
}

func (s *sleepRecorder) sleep(_ context.Context, _ <-chan struct{}, d time.Duration) bool {
	s.mu.Lock()
	s.ds = append(s.ds, d)
	s.mu.Unlock()
	return true
}

func (s *sleepRecorder) calls() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]time.Duration(nil), s.ds...)
}

func newTestLoop(conn ports.BrokerConnection, strategy ConsumeStrategy, cfg retry.Config, errs ports.ErrorStrategy) (*Loop, *sleepRecorder) {
	rec := &sleepRecorder{}
	l := NewLoop(conn, strategy, retry.NewTrackerWithRand(cfg, rand.New(rand.NewSource(1))), errs, nopLogger{})
	l.sleep = rec.sleep
	return l, rec
}

// runAsync запускает Loop.Run в отдельной горутине и возвращает канал с ошибкой.
func runAsync(ctx context.Context, l *Loop) <-chan error {
	errCh := make(chan error, 1)
	go func() { errCh <- l.Run(ctx) }()
	return errCh
}

func waitErr(errCh <-chan error, d time.Duration) (error, bool) {
	select {
	case err := <-errCh:
		return err, true
	case <-time.After(d):
		return nil, false
	}
}

// verdictFunc: стратегия ошибок из функции.
type verdictFunc func(ctx context.Context, err error, ref domain.RecordRef) domain.Verdict

func (f verdictFunc) Handle(ctx context.Context, err error, ref domain.RecordRef) domain.Verdict {
	return f(ctx, err, ref)
}
