package kafka

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/plugin/kzap"
	"go.uber.org/zap"

	"github.com/Gunvolt24/eventbus/internal/domain"
	"github.com/Gunvolt24/eventbus/internal/ports"
)

// Проверка, что Connection удовлетворяет порту консьюмера.
var _ ports.BrokerConnection = (*Connection)(nil)

// Hooks: колбэки хоста на ребаланс. Вызываются синхронно, внутри колбэка клиента,
// уже после обновления Assignment.
type Hooks struct {
	OnAssigned func(ctx context.Context, assigned map[string][]int32)
	OnRevoked  func(ctx context.Context, revoked map[string][]int32)
}

// Connection: сессия консьюмера с брокером поверх franz-go.
// Единственный владелец клиента; цикл консьюмера вызывает методы строго последовательно,
// а колбэки ребаланса приходят из горутины клиента.
type Connection struct {
	cfg    ConsumerConfig
	hooks  Hooks
	log    ports.Logger
	zl     *zap.Logger
	assign *domain.Assignment

	newClient func(opts ...kgo.Opt) (kafkaClient, error)

	mu     sync.RWMutex
	client kafkaClient
}

// NewConnection: zl (может быть nil) подключается к внутренним логам клиента через kzap.
func NewConnection(cfg ConsumerConfig, hooks Hooks, log ports.Logger, zl *zap.Logger) *Connection {
	return &Connection{
		cfg:       cfg,
		hooks:     hooks,
		log:       log,
		zl:        zl,
		assign:    domain.NewAssignment(),
		newClient: newKgoConsumer,
	}
}

// Assignment отдаёт текущее назначение партиций (только для чтения).
func (c *Connection) Assignment() *domain.Assignment { return c.assign }

// Connect создаёт клиента и ждёт ответа кластера не дольше timeout.
func (c *Connection) Connect(ctx context.Context, timeout time.Duration) error {
	if err := c.cfg.Validate(); err != nil {
		return err
	}
	if c.IsConnected() {
		return nil
	}

	opts := append(c.cfg.clientOptions(),
		kgo.OnPartitionsAssigned(c.onAssigned),
		kgo.OnPartitionsRevoked(c.onRevoked),
		kgo.OnPartitionsLost(c.onLost),
	)
	if c.zl != nil {
		opts = append(opts, kgo.WithLogger(kzap.New(c.zl, kzap.Level(kgo.LogLevelWarn))))
	}

	cl, err := c.newClient(opts...)
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

	c.mu.Lock()
	c.client = cl
	c.mu.Unlock()

	c.log.Infof(ctx, "kafka consumer connected group_id=%s topics=%v brokers=%v", c.cfg.GroupID, c.cfg.Topics, c.cfg.Brokers)
	return nil
}

// ConsumeBatch забирает до size записей. Ждёт не дольше PollTimeout;
// пустой результат без ошибки означает «данных нет».
func (c *Connection) ConsumeBatch(ctx context.Context, size int) ([]domain.RawRecord, error) {
	cl := c.current()
	if cl == nil {
		return nil, &domain.ConnectionError{Op: "poll", Err: domain.ErrNotConnected}
	}
	if size <= 0 {
		size = 1
	}

	// Ребаланс, заблокированный предыдущим poll, разрешается только здесь:
	// предыдущий цикл уже закоммичен или отмотан назад.
	cl.AllowRebalance()

	pollCtx, cancel := context.WithTimeout(ctx, c.cfg.pollTimeout())
	defer cancel()
	fetches := cl.PollRecords(pollCtx, size)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if fetches.IsClientClosed() {
		return nil, &domain.ConnectionError{Op: "poll", Err: domain.ErrNotConnected}
	}

	fetchErr := collectFetchErrors(fetches)
	recs := fetches.Records()
	if len(recs) == 0 {
		if fetchErr != nil {
			return nil, &domain.ConnectionError{Op: "poll", Err: fetchErr}
		}
		return []domain.RawRecord{}, nil
	}
	if fetchErr != nil {
		c.log.Warnf(ctx, "partial fetch errors: %v (continuing with %d record(s))", fetchErr, len(recs))
	}

	out := make([]domain.RawRecord, 0, len(recs))
	for _, r := range recs {
		out = append(out, toRawRecord(r))
	}
	return out, nil
}

// CommitMessage фиксирует оффсет одной записи (следующее чтение начнётся после неё).
func (c *Connection) CommitMessage(ctx context.Context, rec domain.RawRecord) error {
	cl := c.current()
	if cl == nil {
		return &domain.ConnectionError{Op: "commit", Err: domain.ErrNotConnected}
	}
	if err := cl.CommitRecords(ctx, toCommitRecord(rec)); err != nil {
		return &domain.ConnectionError{Op: "commit", Err: err}
	}
	return nil
}

// Commit фиксирует курсор группы по всем записям, выданным poll.
func (c *Connection) Commit(ctx context.Context) error {
	cl := c.current()
	if cl == nil {
		return &domain.ConnectionError{Op: "commit", Err: domain.ErrNotConnected}
	}
	if err := cl.CommitUncommittedOffsets(ctx); err != nil {
		return &domain.ConnectionError{Op: "commit", Err: err}
	}
	return nil
}

// Seek переставляет позицию чтения партиции. Для чужой партиции ничего не делает:
// после ребаланса её перечитает новый владелец с закоммиченного оффсета.
func (c *Connection) Seek(topic string, partition int32, offset int64) error {
	cl := c.current()
	if cl == nil {
		return &domain.ConnectionError{Op: "seek", Err: domain.ErrNotConnected}
	}
	if !c.assign.Owns(topic, partition) {
		c.log.Warnf(context.Background(), "seek skipped: partition %s[%d] is not assigned", topic, partition)
		return nil
	}
	cl.SetOffsets(map[string]map[int32]kgo.EpochOffset{
		topic: {partition: {Epoch: -1, Offset: offset}},
	})
	return nil
}

// Disconnect покидает группу и закрывает клиента. Повторный вызов ничего не делает.
func (c *Connection) Disconnect(ctx context.Context) error {
	c.mu.Lock()
	cl := c.client
	c.client = nil
	c.mu.Unlock()

	if cl == nil {
		return nil
	}
	cl.AllowRebalance()
	cl.Close()
	c.assign.Clear()
	c.log.Infof(ctx, "kafka consumer disconnected group_id=%s", c.cfg.GroupID)
	return nil
}

func (c *Connection) IsConnected() bool { return c.current() != nil }

func (c *Connection) current() kafkaClient {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.client
}

// Колбэки ребаланса: назначение обновляется до возврата из колбэка.

func (c *Connection) onAssigned(ctx context.Context, _ *kgo.Client, assigned map[string][]int32) {
	c.assign.Assign(assigned)
	c.log.Infof(ctx, "partitions assigned: %v", assigned)
	if c.hooks.OnAssigned != nil {
		c.hooks.OnAssigned(ctx, assigned)
	}
}

func (c *Connection) onRevoked(ctx context.Context, _ *kgo.Client, revoked map[string][]int32) {
	c.assign.Revoke(revoked)
	c.log.Infof(ctx, "partitions revoked: %v", revoked)
	if c.hooks.OnRevoked != nil {
		c.hooks.OnRevoked(ctx, revoked)
	}
}

func (c *Connection) onLost(ctx context.Context, _ *kgo.Client, lost map[string][]int32) {
	c.assign.Revoke(lost)
	c.log.Warnf(ctx, "partitions lost: %v", lost)
	if c.hooks.OnRevoked != nil {
		c.hooks.OnRevoked(ctx, lost)
	}
}

// collectFetchErrors склеивает ошибки партиций. Истечение PollTimeout ошибкой не считается.
func collectFetchErrors(fetches kgo.Fetches) error {
	var errs []error
	fetches.EachError(func(topic string, partition int32, err error) {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return
		}
		errs = append(errs, fmt.Errorf("%s[%d]: %w", topic, partition, err))
	})
	return errors.Join(errs...)
}
