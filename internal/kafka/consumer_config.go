package kafka

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Gunvolt24/eventbus/internal/domain"
	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/pkg/sasl/scram"
)

const defaultPollTimeout = time.Second

// ConsumerConfig: параметры сессии консьюмера. Список топиков статический,
// его собирает реестр обработчиков.
type ConsumerConfig struct {
	Brokers      []string
	GroupID      string
	ClientID     string
	Topics       []string
	StartOffset  string // first|last, по умолчанию last
	SASLUser     string
	SASLPassword string
	PollTimeout  time.Duration
}

// Validate проверяет обязательные поля до создания клиента.
func (c *ConsumerConfig) Validate() error {
	var errs []error
	if len(c.Brokers) == 0 {
		errs = append(errs, errors.New("brokers must not be empty"))
	}
	if c.GroupID == "" {
		errs = append(errs, errors.New("group id must not be empty"))
	}
	if len(c.Topics) == 0 {
		errs = append(errs, errors.New("at least one topic is required"))
	}
	if (c.SASLUser == "") != (c.SASLPassword == "") {
		errs = append(errs, errors.New("sasl user and password must be set together"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}
	return nil
}

func (c *ConsumerConfig) pollTimeout() time.Duration {
	if c.PollTimeout <= 0 {
		return defaultPollTimeout
	}
	return c.PollTimeout
}

// resetOffset: откуда читать группе без сохранённого курсора.
func (c *ConsumerConfig) resetOffset() kgo.Offset {
	if strings.EqualFold(strings.TrimSpace(c.StartOffset), "first") {
		return kgo.NewOffset().AtStart()
	}
	return kgo.NewOffset().AtEnd()
}

// clientOptions: автокоммит выключен, ребаланс блокируется на время цикла poll -> ack.
func (c *ConsumerConfig) clientOptions() []kgo.Opt {
	opts := []kgo.Opt{
		kgo.SeedBrokers(c.Brokers...),
		kgo.ConsumerGroup(c.GroupID),
		kgo.ConsumeTopics(c.Topics...),
		kgo.ConsumeResetOffset(c.resetOffset()),
		kgo.DisableAutoCommit(),
		kgo.BlockRebalanceOnPoll(),
	}
	if c.ClientID != "" {
		opts = append(opts, kgo.ClientID(c.ClientID))
	}
	if c.SASLUser != "" {
		opts = append(opts, kgo.SASL(scram.Auth{User: c.SASLUser, Pass: c.SASLPassword}.AsSha512Mechanism()))
	}
	return opts
}
