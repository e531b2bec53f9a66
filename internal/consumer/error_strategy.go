package consumer

import (
	"context"

	"github.com/Gunvolt24/eventbus/internal/domain"
	"github.com/Gunvolt24/eventbus/internal/ports"
)

// LogAndRetry: стратегия по умолчанию, пишет ошибку в лог и всегда просит повтор.
type LogAndRetry struct {
	Log ports.Logger
}

var _ ports.ErrorStrategy = LogAndRetry{}

func (s LogAndRetry) Handle(ctx context.Context, err error, ref domain.RecordRef) domain.Verdict {
	if s.Log != nil {
		s.Log.Warnf(ctx, "dispatch failed topic=%s partition=%d offset=%d: %v (will retry)",
			ref.Topic, ref.Partition, ref.Offset, err)
	}
	return domain.VerdictRetry
}
