package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debugf(context.Context, string, ...any) {}
func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

func TestPingWithBackoff_SingleAttemptWithoutBudget(t *testing.T) {
	calls := 0
	boom := errors.New("refused")
	err := pingWithBackoff(context.Background(), func(context.Context) error {
		calls++
		return boom
	}, 0, nopLogger{})

	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, calls)
}

func TestPingWithBackoff_RetriesUntilReady(t *testing.T) {
	calls := 0
	err := pingWithBackoff(context.Background(), func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("starting up")
		}
		return nil
	}, 10*time.Second, nopLogger{})

	require.NoError(t, err)
	require.Equal(t, 3, calls)
}

func TestPingWithBackoff_GivesUpAfterMaxElapsed(t *testing.T) {
	start := time.Now()
	err := pingWithBackoff(context.Background(), func(context.Context) error {
		return errors.New("down")
	}, 500*time.Millisecond, nopLogger{})

	require.Error(t, err)
	require.Less(t, time.Since(start), 5*time.Second)
}

func TestPingWithBackoff_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := pingWithBackoff(ctx, func(context.Context) error {
		calls++
		cancel()
		return errors.New("down")
	}, time.Minute, nopLogger{})

	require.Error(t, err)
	require.Equal(t, 1, calls)
}

func TestNewPool_RejectsBadDSN(t *testing.T) {
	_, err := NewPool(context.Background(), PoolConfig{}, nopLogger{})
	require.Error(t, err)

	_, err = NewPool(context.Background(), PoolConfig{DSN: "postgres://%zz"}, nopLogger{})
	require.Error(t, err)
}
