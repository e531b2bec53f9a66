package kafka

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/Gunvolt24/eventbus/internal/domain"
)

func TestConsumerConfig_resetOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		startOffset string
		want        kgo.Offset
	}{
		{"first lower", "first", kgo.NewOffset().AtStart()},
		{"first upper", "FIRST", kgo.NewOffset().AtStart()},
		{"first spaced", " FiRsT \n", kgo.NewOffset().AtStart()},
		{"empty -> last", "", kgo.NewOffset().AtEnd()},
		{"explicit last", "last", kgo.NewOffset().AtEnd()},
		{"unknown -> last", "unknown", kgo.NewOffset().AtEnd()},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := ConsumerConfig{StartOffset: tt.startOffset}
			require.Equal(t, tt.want, cfg.resetOffset())
		})
	}
}

func TestConsumerConfig_Validate(t *testing.T) {
	t.Parallel()

	ok := ConsumerConfig{
		Brokers: []string{"k1:9092"},
		GroupID: "group-1",
		Topics:  []string{"media.uploaded"},
	}
	require.NoError(t, ok.Validate())

	tests := []struct {
		name   string
		mutate func(c *ConsumerConfig)
	}{
		{"no brokers", func(c *ConsumerConfig) { c.Brokers = nil }},
		{"no group", func(c *ConsumerConfig) { c.GroupID = "" }},
		{"no topics", func(c *ConsumerConfig) { c.Topics = nil }},
		{"sasl user only", func(c *ConsumerConfig) { c.SASLUser = "u" }},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := ok
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, domain.ErrInvalidConfig) {
				t.Fatalf("want ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestConsumerConfig_pollTimeoutDefault(t *testing.T) {
	t.Parallel()

	require.Equal(t, defaultPollTimeout, (&ConsumerConfig{}).pollTimeout())
	require.Equal(t, 50*time.Millisecond, (&ConsumerConfig{PollTimeout: 50 * time.Millisecond}).pollTimeout())
}

func TestConsumerConfig_clientOptions_SASL(t *testing.T) {
	t.Parallel()

	base := ConsumerConfig{Brokers: []string{"k1:9092"}, GroupID: "g", Topics: []string{"t"}}
	withSASL := base
	withSASL.SASLUser, withSASL.SASLPassword = "u", "p"
	withID := base
	withID.ClientID = "eventbus"

	require.Len(t, withSASL.clientOptions(), len(base.clientOptions())+1)
	require.Len(t, withID.clientOptions(), len(base.clientOptions())+1)
}
