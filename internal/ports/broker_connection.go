package ports

import (
	"context"
	"time"

	"github.com/Gunvolt24/eventbus/internal/domain"
)

// BrokerConnection: единственный владелец сессии с брокером на стороне консьюмера.
// Автокоммит выключен: оффсет становится долговечным только через CommitMessage/Commit.
type BrokerConnection interface {
	// Connect открывает сессию, подписывается на топики и ждёт готовности брокера
	// не дольше timeout. Таймаут и ошибка брокера: разные ветки *domain.ConnectionError.
	Connect(ctx context.Context, timeout time.Duration) error

	// ConsumeBatch забирает до size записей; пустой результат без ошибки: «нечего делать».
	ConsumeBatch(ctx context.Context, size int) ([]domain.RawRecord, error)

	// CommitMessage фиксирует оффсет одной записи.
	CommitMessage(ctx context.Context, rec domain.RawRecord) error

	// Commit фиксирует курсор группы по всем выданным записям.
	Commit(ctx context.Context) error

	// Seek переставляет следующий poll на offset; только для повторов.
	Seek(topic string, partition int32, offset int64) error

	// Disconnect корректно покидает группу; повторный вызов ничего не делает.
	Disconnect(ctx context.Context) error

	IsConnected() bool
}
