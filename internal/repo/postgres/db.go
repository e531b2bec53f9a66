package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/eventbus/internal/ports"
)

// PoolConfig: параметры пула соединений.
type PoolConfig struct {
	DSN      string
	MaxConns int32
	// ConnectMaxElapsed: сколько в сумме ждать готовности БД на старте (0 = одна попытка).
	ConnectMaxElapsed time.Duration
}

// NewPool создаёт пул на базе DSN и ждёт ответа на Ping с экспоненциальным backoff.
// Лимиты жизни/простоя соединений помогают не держать мёртвые коннекты.
func NewPool(ctx context.Context, cfg PoolConfig, log ports.Logger) (*pgxpool.Pool, error) {
	if cfg.DSN == "" {
		return nil, errors.New("postgres: empty DSN")
	}
	pcfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("postgres: parse dsn: %w", err)
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	pcfg.MaxConnLifetime = time.Hour
	pcfg.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("postgres: new pool: %w", err)
	}

	if err := pingWithBackoff(ctx, pool.Ping, cfg.ConnectMaxElapsed, log); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}
	return pool, nil
}

func pingWithBackoff(ctx context.Context, ping func(context.Context) error, maxElapsed time.Duration, log ports.Logger) error {
	if maxElapsed <= 0 {
		return ping(ctx)
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 200 * time.Millisecond
	bo.MaxInterval = 3 * time.Second
	bo.MaxElapsedTime = maxElapsed

	attempt := 0
	return backoff.RetryNotify(
		func() error {
			attempt++
			return ping(ctx)
		},
		backoff.WithContext(bo, ctx),
		func(err error, next time.Duration) {
			log.Warnf(ctx, "postgres not ready attempt=%d retry_in=%s err=%v", attempt, next, err)
		},
	)
}
