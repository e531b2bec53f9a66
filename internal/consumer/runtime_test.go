package consumer

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/eventbus/internal/domain"
	"github.com/Gunvolt24/eventbus/internal/ports/mocks"
	"github.com/Gunvolt24/eventbus/internal/retry"
)

func TestRuntime_ConnectFailureStopsStartup(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockBrokerConnection(ctrl)

	connErr := &domain.ConnectionError{Op: "connect", Timeout: true, Err: context.DeadlineExceeded}
	conn.EXPECT().Connect(gomock.Any(), 3*time.Second).Return(connErr)

	rt, err := NewRuntime(Config{Mode: Mode{Kind: ModeSingle}, ConnectTimeout: 3 * time.Second},
		conn, mustRegistry(t, Single(okSingle, eventContract("t"))), nil, nopLogger{})
	require.NoError(t, err)

	err = rt.Run(context.Background())
	require.ErrorIs(t, err, connErr)
	require.Equal(t, domain.StateCrashed, rt.State())
}

func TestRuntime_ProcessesThenCloses(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockBrokerConnection(ctrl)

	rec := rawEvent("t", 0, 1, 5)
	handled := make(chan int, 1)

	conn.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nil)
	gomock.InOrder(
		conn.EXPECT().ConsumeBatch(gomock.Any(), 1).Return([]domain.RawRecord{rec}, nil),
		conn.EXPECT().CommitMessage(gomock.Any(), rec).Return(nil),
		conn.EXPECT().ConsumeBatch(gomock.Any(), 1).DoAndReturn(func(context.Context, int) ([]domain.RawRecord, error) {
			time.Sleep(time.Millisecond)
			return []domain.RawRecord{}, nil
		}).AnyTimes(),
	)
	conn.EXPECT().Disconnect(gomock.Any()).Return(nil).Times(1)
	conn.EXPECT().IsConnected().Return(true).AnyTimes()

	reg := mustRegistry(t, Single(func(_ context.Context, m *domain.Message[event]) error {
		handled <- m.Value.ID
		return nil
	}, eventContract("t")))
	rt, err := NewRuntime(Config{Mode: Mode{Kind: ModeSingle}, Retry: retry.Config{MaxErrors: 3}}, conn, reg, nil, nopLogger{})
	require.NoError(t, err)

	errCh := make(chan error, 1)
	go func() { errCh <- rt.Run(context.Background()) }()

	select {
	case id := <-handled:
		require.Equal(t, 5, id)
	case <-time.After(time.Second):
		t.Fatal("handler was not invoked")
	}
	require.True(t, rt.Connected())

	require.NoError(t, rt.Close())
	require.NoError(t, rt.Close())

	err, ok := waitErr(errCh, time.Second)
	require.True(t, ok)
	require.NoError(t, err)
	require.Equal(t, domain.StateStopped, rt.State())
}

func TestRuntime_CloseJoinsDisconnectError(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockBrokerConnection(ctrl)

	discErr := errors.New("leave group failed")
	conn.EXPECT().Disconnect(gomock.Any()).Return(discErr).Times(1)

	rt, err := NewRuntime(Config{Mode: Mode{Kind: ModeSingle}}, conn, mustRegistry(t, Single(okSingle, eventContract("t"))), nil, nopLogger{})
	require.NoError(t, err)

	require.ErrorIs(t, rt.Close(), discErr)
	require.ErrorIs(t, rt.Close(), discErr)
}

func TestLogAndRetry_AlwaysRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warnf(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)

	v := LogAndRetry{Log: log}.Handle(context.Background(), errors.New("x"), domain.RecordRef{Topic: "t", Offset: 1})
	require.Equal(t, domain.VerdictRetry, v)
}

// Close во время подключения: после завершения Connect сессия всё равно закрывается,
// цикл не стартует.
func TestRuntime_CloseDuringConnectDisconnects(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockBrokerConnection(ctrl)

	connecting := make(chan struct{})
	release := make(chan struct{})
	var connected atomic.Bool

	conn.EXPECT().Connect(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, time.Duration) error {
		close(connecting)
		<-release
		connected.Store(true)
		return nil
	})
	conn.EXPECT().Disconnect(gomock.Any()).DoAndReturn(func(context.Context) error {
		connected.Store(false)
		return nil
	}).MinTimes(1)

	rt, err := NewRuntime(Config{Mode: Mode{Kind: ModeSingle}}, conn, mustRegistry(t, Single(okSingle, eventContract("t"))), nil, nopLogger{})
	require.NoError(t, err)

	errCh := make(chan error, 1)
	go func() { errCh <- rt.Run(context.Background()) }()

	<-connecting
	require.NoError(t, rt.Close())
	close(release)

	err, ok := waitErr(errCh, time.Second)
	require.True(t, ok, "Run must return after close")
	require.NoError(t, err)
	require.False(t, connected.Load(), "broker session must be closed")
	require.Equal(t, domain.StateStopped, rt.State())
}
