package ports

import (
	"context"

	"github.com/Gunvolt24/eventbus/internal/domain"
)

// MediaIngestService: приём событий загрузки с HTTP и публикация в брокер.
type MediaIngestService interface {
	PublishUploaded(ctx context.Context, ev *domain.MediaUploaded) error
}

// PoisonReadService: чтение журнала отвергнутых сообщений.
type PoisonReadService interface {
	ListPoison(ctx context.Context, topic string, limit, offset int) ([]*domain.PoisonRecord, error)
}

// HealthReporter: снимок состояния рантаймов для /healthz.
type HealthReporter interface {
	ConsumerState() domain.ConsumerState
	ProducerConnected() bool
}
