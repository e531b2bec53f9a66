package ports

import (
	"context"
	"time"

	"github.com/Gunvolt24/eventbus/internal/domain"
)

// DeliveryFunc получает итог асинхронной доставки одной записи.
type DeliveryFunc func(report domain.DeliveryReport, err error)

// ProducerClient: транспорт продьюсера (сессия с брокером и очередь отправки).
type ProducerClient interface {
	Connect(ctx context.Context, timeout time.Duration) error
	// Produce ставит запись в очередь и возвращается сразу; итог придёт в done.
	Produce(rec *domain.OutgoingRecord, done DeliveryFunc)
	// Flush ждёт подтверждения всех записей в очереди или отмены ctx.
	Flush(ctx context.Context) error
	Close()
}

// Publisher: то, что нужно прикладному коду для отправки уже сериализованной записи.
type Publisher interface {
	Enqueue(ctx context.Context, rec *domain.OutgoingRecord) error
	IsConnected() bool
}
