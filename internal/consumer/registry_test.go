package consumer

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/eventbus/internal/contract"
	"github.com/Gunvolt24/eventbus/internal/domain"
	"github.com/Gunvolt24/eventbus/internal/ports/mocks"
)

func okSingle(context.Context, *domain.Message[event]) error  { return nil }
func okBatch(context.Context, []*domain.Message[event]) error { return nil }

func TestRegistry_TopicsSortedAndUnique(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(
		Single(okSingle, eventContract("b"), eventContract("a")),
		Single(okSingle, eventContract("a"), eventContract("c")),
	))
	require.Equal(t, []string{"a", "b", "c"}, reg.Topics())
	require.Equal(t, 2, reg.Len())
}

func TestRegistry_RejectsBadRegistrations(t *testing.T) {
	reg := NewRegistry()

	err := reg.Register(Single[event](okSingle))
	require.ErrorIs(t, err, domain.ErrInvalidConfig)

	err = reg.Register(Single(okSingle, eventContract("a"), eventContract("a")))
	require.ErrorIs(t, err, domain.ErrInvalidConfig)

	require.Equal(t, 0, reg.Len())
}

func TestRegistration_Flags(t *testing.T) {
	s := SingleScoped(func() HandlerFunc[event] { return okSingle }, eventContract("a"))
	require.False(t, s.Batch())
	require.True(t, s.Scoped())

	b := Batch(okBatch, eventContract("a"))
	require.True(t, b.Batch())
	require.False(t, b.Scoped())
	require.Equal(t, []string{"a"}, b.Topics())
}

// Scoped-фабрика вызывается на каждый вызов, а не один раз.
func TestRegistration_ScopedFactoryPerInvocation(t *testing.T) {
	created := 0
	reg := SingleScoped(func() HandlerFunc[event] {
		created++
		return okSingle
	}, eventContract("a"))

	for i := 0; i < 3; i++ {
		inv, err := reg.prepare([]domain.RawRecord{rawEvent("a", 0, int64(i), i)})
		require.NoError(t, err)
		require.NoError(t, inv(context.Background()))
	}
	require.Equal(t, 3, created)
}

func TestRegistration_ForeignTopicIgnored(t *testing.T) {
	reg := Single(okSingle, eventContract("a"))
	inv, err := reg.prepare([]domain.RawRecord{rawEvent("b", 0, 1, 1)})
	require.NoError(t, err)
	require.Nil(t, inv)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("", 0)
	require.NoError(t, err)
	require.Equal(t, 1, m.BatchSize())

	m, err = ParseMode(" BATCH ", 50)
	require.NoError(t, err)
	require.Equal(t, Mode{Kind: ModeBatch, Size: 50}, m)
	require.Equal(t, 50, m.BatchSize())

	_, err = ParseMode("batch", 0)
	require.ErrorIs(t, err, domain.ErrInvalidConfig)

	_, err = ParseMode("stream", 1)
	require.ErrorIs(t, err, domain.ErrInvalidConfig)
}

// Смешивать батч- и одиночные обработчики нельзя: ошибка конфигурации на старте.
func TestNewRuntime_ModeMismatchIsConfigError(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockBrokerConnection(ctrl)

	tests := []struct {
		name string
		mode Mode
		regs []Registration
	}{
		{"single mode with batch handler", Mode{Kind: ModeSingle}, []Registration{Batch(okBatch, eventContract("a"))}},
		{"batch mode with single handler", Mode{Kind: ModeBatch, Size: 10}, []Registration{Single(okSingle, eventContract("a"))}},
		{"mixed handlers", Mode{Kind: ModeBatch, Size: 10}, []Registration{Batch(okBatch, eventContract("a")), Single(okSingle, eventContract("b"))}},
		{"no handlers", Mode{Kind: ModeSingle}, nil},
		{"batch size zero", Mode{Kind: ModeBatch}, []Registration{Batch(okBatch, eventContract("a"))}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry()
			require.NoError(t, reg.Register(tt.regs...))
			_, err := NewRuntime(Config{Mode: tt.mode}, conn, reg, nil, nopLogger{})
			if !errors.Is(err, domain.ErrInvalidConfig) {
				t.Fatalf("want ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestContractsOfMixedTransport(t *testing.T) {
	// Один консьюмер может держать JSON- и бинарные контракты на разных топиках.
	reg := NewRegistry()
	require.NoError(t, reg.Register(
		Single(okSingle, contract.NewJSON[event]("json.topic")),
		Single(func(context.Context, *domain.Message[*wrapperMsg]) error { return nil }, contract.NewProto[*wrapperMsg]("binary.topic")),
	))
	require.Equal(t, []string{"binary.topic", "json.topic"}, reg.Topics())
}
