package ports

import (
	"context"

	"github.com/Gunvolt24/eventbus/internal/domain"
)

// PoisonRepository: журнал сообщений, от которых консьюмер отказался.
type PoisonRepository interface {
	Save(ctx context.Context, rec *domain.PoisonRecord) error
	List(ctx context.Context, topic string, limit, offset int) ([]*domain.PoisonRecord, error)
}
