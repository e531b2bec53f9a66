package consumer

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Gunvolt24/eventbus/internal/domain"
	"github.com/Gunvolt24/eventbus/internal/ports"
	"github.com/Gunvolt24/eventbus/internal/retry"
	"github.com/Gunvolt24/eventbus/pkg/metrics"
)

// sleepFunc ждёт d; false, если ожидание прервано ctx или остановкой.
type sleepFunc func(ctx context.Context, stop <-chan struct{}, d time.Duration) bool

// Loop: цикл poll -> dispatch -> (ack | retry) одного консьюмера.
// Всё, кроме Stop и State, выполняется в горутине Run строго последовательно.
type Loop struct {
	conn     ports.BrokerConnection
	strategy ConsumeStrategy
	tracker  *retry.Tracker
	errs     ports.ErrorStrategy
	log      ports.Logger
	sleep    sleepFunc

	state   atomic.Int32
	started atomic.Bool

	stopOnce sync.Once
	stopCh   chan struct{}
	done     chan struct{}
}

// NewLoop: errs == nil означает LogAndRetry.
func NewLoop(conn ports.BrokerConnection, strategy ConsumeStrategy, tracker *retry.Tracker, errs ports.ErrorStrategy, log ports.Logger) *Loop {
	if errs == nil {
		errs = LogAndRetry{Log: log}
	}
	if tracker == nil {
		tracker = retry.NewTracker(retry.Config{})
	}
	return &Loop{
		conn:     conn,
		strategy: strategy,
		tracker:  tracker,
		errs:     errs,
		log:      log,
		sleep:    sleepWithStop,
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (l *Loop) State() domain.ConsumerState { return domain.ConsumerState(l.state.Load()) }

func (l *Loop) setState(s domain.ConsumerState) { l.state.Store(int32(s)) }

// Run крутит цикл до Stop (nil), отмены ctx (ctx.Err()) или исчерпания лимита ошибок
// (*domain.CrashError). Сам себя не перезапускает.
func (l *Loop) Run(ctx context.Context) error {
	if !l.started.CompareAndSwap(false, true) {
		return domain.ErrAlreadyRunning
	}
	defer close(l.done)

	l.log.Infof(ctx, "consumer loop started mode=%s batch_size=%d max_errors=%d",
		l.strategy.Mode(), l.strategy.BatchSize(), l.tracker.MaxErrors())

	for {
		if l.stopRequested() {
			l.setState(domain.StateStopped)
			l.log.Infof(ctx, "consumer loop stopped")
			return nil
		}
		if err := ctx.Err(); err != nil {
			l.setState(domain.StateStopped)
			return err
		}

		l.setState(domain.StatePolling)
		recs, err := l.conn.ConsumeBatch(ctx, l.strategy.BatchSize())
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			metrics.ConsumerCycleFailures.WithLabelValues("poll").Inc()
			l.log.Warnf(ctx, "poll failed: %v", err)
			if crash := l.fail(ctx, err, nil); crash != nil {
				return crash
			}
			continue
		}
		// Пустой poll: данных нет, это не ошибка.
		if len(recs) == 0 {
			continue
		}
		for _, r := range recs {
			metrics.ConsumerRecordsPolled.WithLabelValues(r.Topic).Inc()
		}

		if crash := l.cycle(ctx, recs); crash != nil {
			return crash
		}
	}
}

// cycle: dispatch и подтверждение одного батча. Возвращает только фатальную ошибку.
func (l *Loop) cycle(ctx context.Context, recs []domain.RawRecord) error {
	l.setState(domain.StateDispatching)
	dispatchErr := l.strategy.Dispatch(ctx, recs)

	if dispatchErr != nil {
		metrics.ConsumerCycleFailures.WithLabelValues("dispatch").Inc()
		verdict := l.errs.Handle(ctx, dispatchErr, recs[0].Ref())
		metrics.ConsumerVerdicts.WithLabelValues(verdict.String()).Inc()
		if verdict != domain.VerdictSkip {
			return l.fail(ctx, dispatchErr, recs)
		}
		l.log.Warnf(ctx, "skipping %d record(s) from %s[%d]@%d after failure: %v",
			len(recs), recs[0].Topic, recs[0].Partition, recs[0].Offset, dispatchErr)
	}

	l.setState(domain.StateCommitting)
	if err := l.strategy.Ack(ctx, recs); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		metrics.ConsumerCycleFailures.WithLabelValues("commit").Inc()
		l.log.Warnf(ctx, "commit failed for %s[%d]@%d: %v", recs[0].Topic, recs[0].Partition, recs[0].Offset, err)
		return l.fail(ctx, err, recs)
	}

	if dispatchErr == nil {
		for _, r := range recs {
			metrics.ConsumerRecordsProcessed.WithLabelValues(r.Topic).Inc()
		}
	}
	l.tracker.Reset()
	metrics.ConsumerConsecutiveErrors.Set(0)
	return nil
}

// fail учитывает неудачный цикл: при исчерпании лимита цикл падает без нового poll,
// иначе (если есть что перечитывать) соединение отматывается назад и цикл ждёт Delay().
func (l *Loop) fail(ctx context.Context, cause error, recs []domain.RawRecord) error {
	l.tracker.Increment()
	metrics.ConsumerConsecutiveErrors.Set(float64(l.tracker.Tries()))

	if l.tracker.Exhausted() {
		l.setState(domain.StateCrashed)
		metrics.ConsumerCrashes.Inc()
		crash := &domain.CrashError{Attempts: l.tracker.Tries(), Err: cause}
		l.log.Errorf(ctx, "%v", crash)
		return crash
	}

	l.setState(domain.StateRetrying)
	if len(recs) > 0 {
		if err := l.strategy.SeekOnRetry(recs); err != nil {
			l.log.Warnf(ctx, "seek on retry failed: %v", err)
		}
	}

	delay := l.tracker.Delay()
	l.log.Infof(ctx, "retry %d/%d in %s", l.tracker.Tries(), l.tracker.MaxErrors(), delay)
	l.sleep(ctx, l.stopCh, delay)
	return nil
}

// Stop просит цикл завершиться после текущего шага и ждёт этого не дольше ctx.
// Обработчики в полёте не прерываются. Повторный вызов безопасен.
func (l *Loop) Stop(ctx context.Context) error {
	l.stopOnce.Do(func() { close(l.stopCh) })
	if !l.started.Load() {
		l.setState(domain.StateStopped)
		return nil
	}
	select {
	case <-l.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Loop) stopRequested() bool {
	select {
	case <-l.stopCh:
		return true
	default:
		return false
	}
}

func sleepWithStop(ctx context.Context, stop <-chan struct{}, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-stop:
		return false
	case <-t.C:
		return true
	}
}

// IsCrash сообщает, завершился ли цикл исчерпанием лимита ошибок.
func IsCrash(err error) bool {
	var ce *domain.CrashError
	return errors.As(err, &ce)
}
