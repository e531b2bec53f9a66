package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/eventbus/internal/domain"
	"github.com/Gunvolt24/eventbus/internal/ports"
	"github.com/Gunvolt24/eventbus/pkg/metrics"
)

var (
	_ ports.ErrorStrategy     = (*PoisonJournal)(nil)
	_ ports.PoisonReadService = (*PoisonJournal)(nil)
)

const DefaultMaxAttempts = 3

// deliveryJournalTimeout ограничивает запись из колбэка доставки: он выполняется
// в горутине клиента и задерживает следующие подтверждения.
const deliveryJournalTimeout = 5 * time.Second

// PoisonJournal: стратегия ошибок с журналом в БД.
//   - ошибка сериализации: сразу в журнал и пропуск (повтор не поможет);
//   - ошибка обработчика: повтор, пока счётчик попыток записи меньше maxAttempts,
//     затем журнал и пропуск;
//   - журнал недоступен: повтор (лучше задержка, чем потеря сообщения).
type PoisonJournal struct {
	repo        ports.PoisonRepository
	attempts    ports.AttemptCounter
	maxAttempts int
	log         ports.Logger
}

func NewPoisonJournal(repo ports.PoisonRepository, attempts ports.AttemptCounter, maxAttempts int, log ports.Logger) *PoisonJournal {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &PoisonJournal{repo: repo, attempts: attempts, maxAttempts: maxAttempts, log: log}
}

func (j *PoisonJournal) MaxAttempts() int { return j.maxAttempts }

// Handle: журналируется запись, которой принадлежит ошибка (ref: только запасной вариант).
// В batch-режиме пропуск коммитит весь батч, поэтому остальные его записи тоже
// попадают в журнал с причиной batch_skipped.
func (j *PoisonJournal) Handle(ctx context.Context, err error, ref domain.RecordRef) domain.Verdict {
	culprit, rest := domain.FailedRecords(err, ref)

	var serr *domain.SerializationError
	if errors.As(err, &serr) || !domain.IsRetriable(err) {
		return j.journal(ctx, culprit, rest, 1, err, "serialization")
	}

	key := attemptKey(culprit)
	n := j.attempts.Incr(key)
	if n < j.maxAttempts {
		j.log.Warnf(ctx, "handler failed %s[%d]@%d attempt=%d/%d: %v",
			culprit.Topic, culprit.Partition, culprit.Offset, n, j.maxAttempts, err)
		return domain.VerdictRetry
	}

	v := j.journal(ctx, culprit, rest, n, err, "exhausted")
	if v == domain.VerdictSkip {
		j.attempts.Forget(key)
	}
	return v
}

// journal пишет виновную запись и попутно пропускаемые. Любой сбой записи: повтор цикла;
// upsert по (topic, partition, offset) делает повторную запись безопасной.
func (j *PoisonJournal) journal(ctx context.Context, culprit domain.RecordRef, rest []domain.RecordRef, attempts int, cause error, reason string) domain.Verdict {
	if !j.save(ctx, culprit, attempts, cause.Error(), reason) {
		return domain.VerdictRetry
	}
	for _, ref := range rest {
		msg := fmt.Sprintf("skipped with batch, failed record %s[%d]@%d: %v",
			culprit.Topic, culprit.Partition, culprit.Offset, cause)
		if !j.save(ctx, ref, attempts, msg, "batch_skipped") {
			return domain.VerdictRetry
		}
	}
	j.log.Warnf(ctx, "record journaled and skipped %s[%d]@%d reason=%s attempts=%d batch_skipped=%d: %v",
		culprit.Topic, culprit.Partition, culprit.Offset, reason, attempts, len(rest), cause)
	return domain.VerdictSkip
}

func (j *PoisonJournal) save(ctx context.Context, ref domain.RecordRef, attempts int, msg, reason string) bool {
	rec := &domain.PoisonRecord{
		Topic:     ref.Topic,
		Partition: ref.Partition,
		Offset:    ref.Offset,
		Attempts:  attempts,
		Error:     msg,
	}
	if err := j.repo.Save(ctx, rec); err != nil {
		j.log.Errorf(ctx, "poison journal write failed %s[%d]@%d: %v", ref.Topic, ref.Partition, ref.Offset, err)
		return false
	}
	metrics.PoisonJournaled.WithLabelValues(ref.Topic, reason).Inc()
	return true
}

// OnDeliveryFailure: колбэк продьюсера. Оффсет исходной записи к этому моменту
// уже закоммичен, поэтому источник из заголовков x-source-* попадает в журнал
// с причиной delivery_failed. Запись без этих заголовков только логируется.
func (j *PoisonJournal) OnDeliveryFailure(err error, report domain.DeliveryReport) {
	ctx, cancel := context.WithTimeout(context.Background(), deliveryJournalTimeout)
	defer cancel()

	src, ok := domain.SourceRef(report.Headers)
	if !ok {
		j.log.Errorf(ctx, "delivery failed topic=%s partition=%d: %v", report.Topic, report.Partition, err)
		return
	}
	msg := fmt.Sprintf("delivery to %s failed: %v", report.Topic, err)
	if j.save(ctx, src, 1, msg, "delivery_failed") {
		j.log.Warnf(ctx, "delivery failed, source journaled %s[%d]@%d topic=%s: %v",
			src.Topic, src.Partition, src.Offset, report.Topic, err)
	}
}

// ListPoison: проксирование в репозиторий (пагинация уже ограничена на HTTP-слое).
func (j *PoisonJournal) ListPoison(ctx context.Context, topic string, limit, offset int) ([]*domain.PoisonRecord, error) {
	return j.repo.List(ctx, topic, limit, offset)
}

func attemptKey(ref domain.RecordRef) string {
	return fmt.Sprintf("%s/%d/%d", ref.Topic, ref.Partition, ref.Offset)
}
