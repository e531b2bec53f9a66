package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/eventbus/internal/consumer"
	"github.com/Gunvolt24/eventbus/internal/ports"
)

// ProducerCloser: продьюсер с точки зрения приложения: на остановке дослать очередь и закрыться.
type ProducerCloser interface {
	Close(ctx context.Context) error
}

// App: собранное приложение и его внешние интерфейсы (HTTP, consumer, producer).
type App struct {
	Logger        ports.Logger
	HTTPServer    *http.Server
	KafkaConsumer ports.MessageConsumer
	Producer      ProducerCloser

	gracefulTimeout time.Duration
	flushTimeout    time.Duration
}

// Cleanup: функция освобождения ресурсов.
type Cleanup func()

// applyGinMode: режим Gin по строке; неизвестное значение: debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// Run запускает HTTP-сервер и консьюмер, ждёт отмены ctx или фоновой ошибки и
// останавливает всё в порядке: HTTP, консьюмер, продьюсер (с дозакачкой очереди).
// Падение консьюмера возвращается вызывающему, чтобы процесс вышел с ошибкой.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 2)

	go func() {
		a.Logger.Infof(ctx, "kafka consumer starting")
		if err := a.KafkaConsumer.Run(ctx); err != nil {
			errCh <- err
		}
	}()

	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var fatal error
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		case consumer.IsCrash(err):
			a.Logger.Errorf(ctx, "consumer crashed, shutting down: %v", err)
			fatal = err
		default:
			a.Logger.Warnf(ctx, "background error: %v", err)
			fatal = err
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	if err := a.KafkaConsumer.Close(); err != nil {
		a.Logger.Warnf(ctx, "kafka consumer close error: %v", err)
	}

	if a.Producer != nil {
		ft := a.flushTimeout
		if ft <= 0 {
			ft = gt
		}
		flushCtx, cancelFlush := context.WithTimeout(context.Background(), ft)
		defer cancelFlush()
		if err := a.Producer.Close(flushCtx); err != nil {
			a.Logger.Warnf(ctx, "producer close error: %v", err)
		}
	}

	a.Logger.Infof(ctx, "service stopped")
	return fatal
}
