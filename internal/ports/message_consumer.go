package ports

import "context"

// MessageConsumer: запущенный консьюмер с точки зрения приложения.
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
