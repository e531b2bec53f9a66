package ports

import (
	"context"

	"github.com/Gunvolt24/eventbus/internal/domain"
)

// ErrorStrategy: подключаемая политика: пропустить запись или перечитать её.
type ErrorStrategy interface {
	Handle(ctx context.Context, err error, ref domain.RecordRef) domain.Verdict
}
