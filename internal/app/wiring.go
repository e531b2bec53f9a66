package app

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/eventbus/config"
	"github.com/Gunvolt24/eventbus/internal/consumer"
	"github.com/Gunvolt24/eventbus/internal/domain"
	"github.com/Gunvolt24/eventbus/internal/kafka"
	"github.com/Gunvolt24/eventbus/internal/ports"
	"github.com/Gunvolt24/eventbus/internal/retry"
	"github.com/Gunvolt24/eventbus/internal/usecase"
)

// stateSource / connSource: то, что health берёт у рантаймов.
type stateSource interface{ State() domain.ConsumerState }
type connSource interface{ IsConnected() bool }

var _ ports.HealthReporter = health{}

type health struct {
	consumer stateSource
	producer connSource
}

func (h health) ConsumerState() domain.ConsumerState { return h.consumer.State() }
func (h health) ProducerConnected() bool             { return h.producer.IsConnected() }

// consumerConfig переводит конфигурацию сервиса в параметры рантайма консьюмера.
func consumerConfig(cfg *config.Config) (consumer.Config, error) {
	mode, err := consumer.ParseMode(cfg.Consumer.Mode, cfg.Consumer.BatchSize)
	if err != nil {
		return consumer.Config{}, err
	}
	return consumer.Config{
		Mode:           mode,
		Concurrency:    cfg.Consumer.Concurrency,
		ConnectTimeout: cfg.Kafka.ConnectTimeout,
		StopTimeout:    cfg.Consumer.StopTimeout,
		Retry: retry.Config{
			MaxErrors:    cfg.Consumer.MaxConsecutiveErrors,
			InitialDelay: cfg.Consumer.RetryInitial,
			MaxDelay:     cfg.Consumer.RetryMax,
		},
	}, nil
}

func kafkaConsumerConfig(cfg *config.Config) kafka.ConsumerConfig {
	return kafka.ConsumerConfig{
		Brokers:      cfg.Kafka.Brokers,
		GroupID:      cfg.Kafka.GroupID,
		ClientID:     cfg.Kafka.ClientID,
		Topics:       []string{cfg.Topics.MediaUploaded},
		StartOffset:  cfg.Kafka.StartOffset,
		SASLUser:     cfg.Kafka.SASLUser,
		SASLPassword: cfg.Kafka.SASLPassword,
		PollTimeout:  cfg.Kafka.PollTimeout,
	}
}

func kafkaProducerConfig(cfg *config.Config) kafka.ProducerConfig {
	return kafka.ProducerConfig{
		Brokers:      cfg.Kafka.Brokers,
		ClientID:     cfg.Kafka.ClientID + "-producer",
		Linger:       cfg.Producer.Linger,
		RequiredAcks: cfg.Producer.RequiredAcks,
		SASLUser:     cfg.Kafka.SASLUser,
		SASLPassword: cfg.Kafka.SASLPassword,
	}
}

// registerHandlers регистрирует индексатор каталога в варианте, соответствующем режиму.
func registerHandlers(reg *consumer.Registry, mode consumer.Mode, svc *usecase.CatalogService, c usecase.Contracts) error {
	var r consumer.Registration
	switch mode.Kind {
	case consumer.ModeBatch:
		r = consumer.Batch(svc.IndexBatch, c.Uploaded)
	default:
		r = consumer.Single(svc.IndexOne, c.Uploaded)
	}
	if err := reg.Register(r); err != nil {
		return fmt.Errorf("register catalog indexer: %w", err)
	}
	return nil
}

// rebalanceHooks логируют смену назначения партиций.
func rebalanceHooks(log ports.Logger) kafka.Hooks {
	return kafka.Hooks{
		OnAssigned: func(ctx context.Context, assigned map[string][]int32) {
			log.Infof(ctx, "partitions assigned: %v", assigned)
		},
		OnRevoked: func(ctx context.Context, revoked map[string][]int32) {
			log.Infof(ctx, "partitions revoked: %v", revoked)
		},
	}
}

// checkRetryBudget: стратегия журнала должна успеть отправить запись в журнал
// раньше, чем цикл упадёт по лимиту подряд идущих ошибок.
func checkRetryBudget(ctx context.Context, cfg *config.Config, log ports.Logger) {
	maxErrors := cfg.Consumer.MaxConsecutiveErrors
	if maxErrors <= 0 {
		maxErrors = retry.DefaultMaxErrors
	}
	if cfg.Poison.MaxAttempts >= maxErrors {
		log.Warnf(ctx, "poison max_attempts=%d >= consumer max_consecutive_errors=%d: consumer will crash before journaling",
			cfg.Poison.MaxAttempts, maxErrors)
	}
}
