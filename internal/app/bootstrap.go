package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Gunvolt24/eventbus/config"
	cachemem "github.com/Gunvolt24/eventbus/internal/cache/memory"
	"github.com/Gunvolt24/eventbus/internal/consumer"
	"github.com/Gunvolt24/eventbus/internal/kafka"
	"github.com/Gunvolt24/eventbus/internal/producer"
	"github.com/Gunvolt24/eventbus/internal/repo/postgres"
	rest "github.com/Gunvolt24/eventbus/internal/transport/http"
	"github.com/Gunvolt24/eventbus/internal/usecase"
	"github.com/Gunvolt24/eventbus/migrations"
	"github.com/Gunvolt24/eventbus/pkg/logger"
	"github.com/Gunvolt24/eventbus/pkg/metrics"
	"github.com/Gunvolt24/eventbus/pkg/telemetry"
)

// Bootstrap собирает зависимости и возвращает приложение, функцию очистки и ошибку.
// Postgres и продьюсер подключаются здесь (fail-fast), консьюмер: в App.Run.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Очистка накапливается по мере сборки и выполняется в обратном порядке.
	var undo []func()
	cleanup := func() {
		for i := len(undo) - 1; i >= 0; i-- {
			undo[i]()
		}
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}
	fail := func(err error) (*App, Cleanup, error) {
		cleanup()
		return nil, func() {}, err
	}

	metrics.MustRegister()

	shutdownTrace, err := telemetry.SetupTracing(ctx, telemetry.Config{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.Tracing.ServiceName,
		Endpoint:    cfg.Tracing.Endpoint,
		SampleRatio: cfg.Tracing.SampleRatio,
	})
	if err != nil {
		logg.Warnf(ctx, "failed to setup tracing: %v", err)
	} else {
		if cfg.Tracing.Enabled {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		}
		undo = append(undo, func() {
			if terr := shutdownTrace(context.Background()); terr != nil {
				logg.Warnf(ctx, "shutdown tracing: %v", terr)
			}
		})
	}

	pool, err := postgres.NewPool(ctx, postgres.PoolConfig{
		DSN:               cfg.Postgres.DSN,
		MaxConns:          cfg.Postgres.MaxConns,
		ConnectMaxElapsed: cfg.Postgres.ConnectMaxElapsed,
	}, logg)
	if err != nil {
		return fail(err)
	}
	undo = append(undo, pool.Close)

	if cfg.Postgres.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, migrations.FS); err != nil {
			return fail(err)
		}
		logg.Infof(ctx, "database migrations applied")
	}

	// Журнал нужен продьюсеру: сбои доставки catalog-записей пишутся в него.
	journal := usecase.NewPoisonJournal(
		postgres.NewPoisonRepository(pool),
		cachemem.NewAttemptCache(cfg.Poison.CacheCapacity, cfg.Poison.AttemptTTL),
		cfg.Poison.MaxAttempts,
		logg,
	)

	// Продьюсер.
	producerClient := kafka.NewProducerClient(kafkaProducerConfig(cfg), logg, logg.Base())
	pub := producer.New(producerClient, producer.Config{
		FlushTimeout:    cfg.Producer.FlushTimeout,
		OnDeliveryError: journal.OnDeliveryFailure,
	}, logg)
	if err := pub.Connect(ctx, cfg.Kafka.ConnectTimeout); err != nil {
		return fail(fmt.Errorf("producer connect: %w", err))
	}

	// Доменный слой.
	contracts := usecase.NewContracts(usecase.Topics{
		MediaUploaded:  cfg.Topics.MediaUploaded,
		CatalogIndexed: cfg.Topics.CatalogIndexed,
	})
	catalog := usecase.NewCatalogService(pub, contracts, logg)
	checkRetryBudget(ctx, cfg, logg)

	// Консьюмер.
	ccfg, err := consumerConfig(cfg)
	if err != nil {
		return fail(err)
	}
	reg := consumer.NewRegistry()
	if err := registerHandlers(reg, ccfg.Mode, catalog, contracts); err != nil {
		return fail(err)
	}
	conn := kafka.NewConnection(kafkaConsumerConfig(cfg), rebalanceHooks(logg), logg, logg.Base())
	consumerRT, err := consumer.NewRuntime(ccfg, conn, reg, journal, logg)
	if err != nil {
		return fail(err)
	}

	// HTTP.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}
	handler := rest.NewHandler(catalog, journal, health{consumer: consumerRT, producer: pub}, logg, cfg.HTTP.HandlerTimeout)
	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           rest.NewRouter(handler, otelServiceName),
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	// Run уже закрывает консьюмер и продьюсер; повторный вызов безопасен.
	undo = append(undo, func() {
		if err := consumerRT.Close(); err != nil {
			logg.Warnf(ctx, "kafka consumer close error: %v", err)
		}
		flushCtx, cancel := context.WithTimeout(context.Background(), cfg.Producer.FlushTimeout)
		defer cancel()
		if err := pub.Close(flushCtx); err != nil {
			logg.Warnf(ctx, "producer close error: %v", err)
		}
	})

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		KafkaConsumer:   consumerRT,
		Producer:        pub,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
		flushTimeout:    cfg.Producer.FlushTimeout,
	}
	return app, cleanup, nil
}
