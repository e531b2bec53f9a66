package kafka

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/pkg/sasl/scram"

	"github.com/Gunvolt24/eventbus/internal/domain"
)

// ProducerConfig: параметры сессии продьюсера.
type ProducerConfig struct {
	Brokers      []string
	ClientID     string
	Linger       time.Duration
	RequiredAcks string // all|leader|none, по умолчанию all
	SASLUser     string
	SASLPassword string
}

func (c *ProducerConfig) Validate() error {
	if len(c.Brokers) == 0 {
		return fmt.Errorf("%w: brokers must not be empty", domain.ErrInvalidConfig)
	}
	if (c.SASLUser == "") != (c.SASLPassword == "") {
		return fmt.Errorf("%w: sasl user and password must be set together", domain.ErrInvalidConfig)
	}
	return nil
}

func (c *ProducerConfig) acks() (kgo.Acks, bool) {
	switch strings.ToLower(strings.TrimSpace(c.RequiredAcks)) {
	case "leader", "1":
		return kgo.LeaderAck(), false
	case "none", "0":
		return kgo.NoAck(), false
	default:
		return kgo.AllISRAcks(), true
	}
}

func (c *ProducerConfig) clientOptions() []kgo.Opt {
	acks, idempotent := c.acks()
	opts := []kgo.Opt{
		kgo.SeedBrokers(c.Brokers...),
		kgo.RequiredAcks(acks),
		kgo.RecordPartitioner(newExplicitPartitioner(kgo.StickyKeyPartitioner(nil))),
	}
	// Идемпотентная запись в franz-go требует acks=all.
	if !idempotent {
		opts = append(opts, kgo.DisableIdempotentWrite())
	}
	if c.Linger > 0 {
		opts = append(opts, kgo.ProducerLinger(c.Linger))
	}
	if c.ClientID != "" {
		opts = append(opts, kgo.ClientID(c.ClientID))
	}
	if c.SASLUser != "" {
		opts = append(opts, kgo.SASL(scram.Auth{User: c.SASLUser, Pass: c.SASLPassword}.AsSha512Mechanism()))
	}
	return opts
}

var (
	errEmptyTopic        = errors.New("record topic must not be empty")
	errNegativePartition = errors.New("record partition must not be negative")
)
