package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/Gunvolt24/eventbus/internal/domain"
	"github.com/Gunvolt24/eventbus/internal/kafka/mocks"
)

type nopLogger struct{}

func (nopLogger) Debugf(context.Context, string, ...any) {}
func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

func testConsumerConfig() ConsumerConfig {
	return ConsumerConfig{
		Brokers:     []string{"b:9092"},
		GroupID:     "g1",
		Topics:      []string{"media.uploaded"},
		PollTimeout: 20 * time.Millisecond,
	}
}

// newTestConnection: соединение, у которого клиента подменяет мок.
func newTestConnection(cl kafkaClient, hooks Hooks) *Connection {
	c := NewConnection(testConsumerConfig(), hooks, nopLogger{}, nil)
	c.newClient = func(...kgo.Opt) (kafkaClient, error) { return cl, nil }
	return c
}

func connected(t *testing.T, ctrl *gomock.Controller) (*Connection, *mocks.MockkafkaClient) {
	t.Helper()
	cl := mocks.NewMockkafkaClient(ctrl)
	cl.EXPECT().Ping(gomock.Any()).Return(nil)
	c := newTestConnection(cl, Hooks{})
	require.NoError(t, c.Connect(context.Background(), time.Second))
	return c, cl
}

func fetchesOf(topic string, partition int32, err error, recs ...*kgo.Record) kgo.Fetches {
	return kgo.Fetches{{Topics: []kgo.FetchTopic{{
		Topic:      topic,
		Partitions: []kgo.FetchPartition{{Partition: partition, Err: err, Records: recs}},
	}}}}
}

func TestConnect_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, _ := connected(t, ctrl)
	require.True(t, c.IsConnected())
}

func TestConnect_InvalidConfig_NoClient(t *testing.T) {
	c := NewConnection(ConsumerConfig{}, Hooks{}, nopLogger{}, nil)
	c.newClient = func(...kgo.Opt) (kafkaClient, error) {
		t.Fatal("client must not be created for invalid config")
		return nil, nil
	}
	err := c.Connect(context.Background(), time.Second)
	require.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestConnect_Timeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	cl := mocks.NewMockkafkaClient(ctrl)
	cl.EXPECT().Ping(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	cl.EXPECT().Close()

	c := newTestConnection(cl, Hooks{})
	err := c.Connect(context.Background(), 10*time.Millisecond)

	var ce *domain.ConnectionError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, "connect", ce.Op)
	require.True(t, ce.Timeout)
	require.False(t, c.IsConnected())
}

func TestConnect_BrokerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	cl := mocks.NewMockkafkaClient(ctrl)
	cl.EXPECT().Ping(gomock.Any()).Return(errors.New("SASL authentication failed"))
	cl.EXPECT().Close()

	c := newTestConnection(cl, Hooks{})
	err := c.Connect(context.Background(), time.Second)

	var ce *domain.ConnectionError
	require.ErrorAs(t, err, &ce)
	require.False(t, ce.Timeout)
}

func TestConsumeBatch_ConvertsRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, cl := connected(t, ctrl)

	ts := time.Unix(1700000000, 0)
	gomock.InOrder(
		cl.EXPECT().AllowRebalance(),
		cl.EXPECT().PollRecords(gomock.Any(), 10).Return(fetchesOf("media.uploaded", 3, nil,
			&kgo.Record{Topic: "media.uploaded", Partition: 3, Offset: 41, LeaderEpoch: 2, Value: []byte("a"), Timestamp: ts,
				Headers: []kgo.RecordHeader{{Key: "x-request-id", Value: []byte("r1")}}},
			&kgo.Record{Topic: "media.uploaded", Partition: 3, Offset: 42, Value: []byte("b")},
		)),
	)

	got, err := c.ConsumeBatch(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, domain.RawRecord{
		Topic: "media.uploaded", Partition: 3, Offset: 41, LeaderEpoch: 2, Value: []byte("a"), Timestamp: ts,
		Headers: map[string][]byte{"x-request-id": []byte("r1")},
	}, got[0])
	require.Equal(t, int64(42), got[1].Offset)
}

func TestConsumeBatch_EmptyOnPollTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, cl := connected(t, ctrl)

	cl.EXPECT().AllowRebalance()
	cl.EXPECT().PollRecords(gomock.Any(), 1).DoAndReturn(func(ctx context.Context, _ int) kgo.Fetches {
		<-ctx.Done()
		return fetchesOf("", -1, ctx.Err())
	})

	got, err := c.ConsumeBatch(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestConsumeBatch_FetchErrorWithoutRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, cl := connected(t, ctrl)

	cl.EXPECT().AllowRebalance()
	cl.EXPECT().PollRecords(gomock.Any(), 1).Return(fetchesOf("media.uploaded", 0, errors.New("NOT_LEADER_FOR_PARTITION")))

	_, err := c.ConsumeBatch(context.Background(), 1)
	var ce *domain.ConnectionError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, "poll", ce.Op)
}

func TestConsumeBatch_ParentCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, cl := connected(t, ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cl.EXPECT().AllowRebalance()
	cl.EXPECT().PollRecords(gomock.Any(), 1).DoAndReturn(func(pctx context.Context, _ int) kgo.Fetches {
		cancel()
		<-pctx.Done()
		return fetchesOf("", -1, pctx.Err())
	})

	_, err := c.ConsumeBatch(ctx, 1)
	require.ErrorIs(t, err, context.Canceled)
}

func TestConsumeBatch_NotConnected(t *testing.T) {
	c := NewConnection(testConsumerConfig(), Hooks{}, nopLogger{}, nil)
	_, err := c.ConsumeBatch(context.Background(), 1)
	require.ErrorIs(t, err, domain.ErrNotConnected)
}

// CommitMessage передаёт клиенту ровно ту запись, что была обработана.
func TestCommitMessage_ExactRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, cl := connected(t, ctrl)

	cl.EXPECT().CommitRecords(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rs ...*kgo.Record) error {
		require.Len(t, rs, 1)
		require.Equal(t, "t", rs[0].Topic)
		require.Equal(t, int32(0), rs[0].Partition)
		require.Equal(t, int64(42), rs[0].Offset)
		require.Equal(t, int32(5), rs[0].LeaderEpoch)
		return nil
	})

	require.NoError(t, c.CommitMessage(context.Background(), domain.RawRecord{Topic: "t", Offset: 42, LeaderEpoch: 5}))
}

func TestCommit_WrapsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, cl := connected(t, ctrl)

	cl.EXPECT().CommitUncommittedOffsets(gomock.Any()).Return(errors.New("REBALANCE_IN_PROGRESS"))

	err := c.Commit(context.Background())
	var ce *domain.ConnectionError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, "commit", ce.Op)
}

func TestSeek_OwnedAndForeignPartitions(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, cl := connected(t, ctrl)

	c.onAssigned(context.Background(), nil, map[string][]int32{"t": {0, 1}})

	cl.EXPECT().SetOffsets(map[string]map[int32]kgo.EpochOffset{
		"t": {1: {Epoch: -1, Offset: 7}},
	})
	require.NoError(t, c.Seek("t", 1, 7))

	// Чужая партиция: SetOffsets не вызывается (лишний вызов уронит мок).
	require.NoError(t, c.Seek("t", 9, 7))
}

// Повторный Disconnect не закрывает клиента второй раз.
func TestDisconnect_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, cl := connected(t, ctrl)

	cl.EXPECT().AllowRebalance().Times(1)
	cl.EXPECT().Close().Times(1)

	require.NoError(t, c.Disconnect(context.Background()))
	require.NoError(t, c.Disconnect(context.Background()))
	require.False(t, c.IsConnected())
}

func TestDisconnect_NeverConnected(t *testing.T) {
	c := NewConnection(testConsumerConfig(), Hooks{}, nopLogger{}, nil)
	require.NoError(t, c.Disconnect(context.Background()))
}

func TestRebalanceHooks_UpdateAssignmentBeforeHost(t *testing.T) {
	var assignedSeen, revokedSeen int
	var c *Connection
	c = NewConnection(testConsumerConfig(), Hooks{
		OnAssigned: func(_ context.Context, m map[string][]int32) {
			// колбэк хоста видит уже обновлённое назначение
			assignedSeen = c.Assignment().Len()
		},
		OnRevoked: func(_ context.Context, m map[string][]int32) {
			revokedSeen = c.Assignment().Len()
		},
	}, nopLogger{}, nil)

	c.onAssigned(context.Background(), nil, map[string][]int32{"a": {0, 1}, "b": {2}})
	require.Equal(t, 3, assignedSeen)
	require.True(t, c.Assignment().Owns("b", 2))

	c.onRevoked(context.Background(), nil, map[string][]int32{"a": {1}})
	require.Equal(t, 2, revokedSeen)

	c.onLost(context.Background(), nil, map[string][]int32{"a": {0}, "b": {2}})
	require.Equal(t, 0, revokedSeen)
	require.Equal(t, map[string][]int32{}, c.Assignment().Snapshot())
}
