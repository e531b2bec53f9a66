package consumer

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Gunvolt24/eventbus/internal/domain"
	"github.com/Gunvolt24/eventbus/internal/ports"
	"github.com/Gunvolt24/eventbus/internal/retry"
)

const (
	defaultConnectTimeout = 10 * time.Second
	defaultStopTimeout    = 15 * time.Second
)

// Config: параметры рантайма консьюмера.
type Config struct {
	Mode           Mode
	Concurrency    int
	ConnectTimeout time.Duration
	StopTimeout    time.Duration
	Retry          retry.Config
}

// Проверка, что Runtime удовлетворяет порту приложения.
var _ ports.MessageConsumer = (*Runtime)(nil)

// Runtime: соединение + стратегия + цикл одного консьюмера.
type Runtime struct {
	cfg  Config
	conn ports.BrokerConnection
	loop *Loop
	log  ports.Logger

	closeOnce sync.Once
	closeErr  error
}

// NewRuntime проверяет, что режим совпадает с типом всех регистраций.
// Несовпадение: ошибка конфигурации (domain.ErrInvalidConfig), а не сбой во время работы.
func NewRuntime(cfg Config, conn ports.BrokerConnection, reg *Registry, errs ports.ErrorStrategy, log ports.Logger) (*Runtime, error) {
	strategy, err := NewStrategy(cfg.Mode, conn, reg, cfg.Concurrency)
	if err != nil {
		return nil, err
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = defaultConnectTimeout
	}
	if cfg.StopTimeout <= 0 {
		cfg.StopTimeout = defaultStopTimeout
	}
	return &Runtime{
		cfg:  cfg,
		conn: conn,
		loop: NewLoop(conn, strategy, retry.NewTracker(cfg.Retry), errs, log),
		log:  log,
	}, nil
}

// Run подключается (с жёстким таймаутом) и крутит цикл до остановки или падения.
func (r *Runtime) Run(ctx context.Context) error {
	if err := r.conn.Connect(ctx, r.cfg.ConnectTimeout); err != nil {
		r.loop.setState(domain.StateCrashed)
		return err
	}
	// Close мог отработать, пока шло подключение: тогда клиента у него ещё не было,
	// и сессию закрываем здесь. Повторный Disconnect ничего не делает.
	if r.loop.stopRequested() {
		r.loop.setState(domain.StateStopped)
		dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.cfg.StopTimeout)
		defer cancel()
		if err := r.conn.Disconnect(dctx); err != nil {
			r.log.Warnf(dctx, "disconnect after close during connect: %v", err)
			return err
		}
		return nil
	}
	return r.loop.Run(ctx)
}

// Close останавливает цикл и отключается от брокера. Выполняется один раз.
func (r *Runtime) Close() error {
	r.closeOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), r.cfg.StopTimeout)
		defer cancel()

		stopErr := r.loop.Stop(ctx)
		if stopErr != nil {
			r.log.Warnf(ctx, "consumer loop did not stop in %s: %v", r.cfg.StopTimeout, stopErr)
		}
		r.closeErr = errors.Join(stopErr, r.conn.Disconnect(ctx))
	})
	return r.closeErr
}

// State: текущее состояние цикла (для health-проверок).
func (r *Runtime) State() domain.ConsumerState { return r.loop.State() }

// Connected: есть ли живая сессия с брокером.
func (r *Runtime) Connected() bool { return r.conn.IsConnected() }
