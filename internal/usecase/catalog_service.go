package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Gunvolt24/eventbus/internal/contract"
	"github.com/Gunvolt24/eventbus/internal/domain"
	"github.com/Gunvolt24/eventbus/internal/ports"
	"github.com/Gunvolt24/eventbus/internal/producer"
)

var _ ports.MediaIngestService = (*CatalogService)(nil)

// Topics: имена топиков сервиса.
type Topics struct {
	MediaUploaded  string
	CatalogIndexed string
}

// Contracts: контракты топиков сервиса; создаются один раз на старте.
type Contracts struct {
	Uploaded *contract.JSONContract[domain.MediaUploaded]
	Indexed  *contract.ProtoContract[*structpb.Struct]
}

func NewContracts(t Topics) Contracts {
	return Contracts{
		Uploaded: contract.NewJSON[domain.MediaUploaded](t.MediaUploaded),
		Indexed:  contract.NewProto[*structpb.Struct](t.CatalogIndexed),
	}
}

// CatalogService: приём событий загрузки и построение записей каталога.
// Входящий media.uploaded превращается в catalog-запись и публикуется дальше.
type CatalogService struct {
	pub       ports.Publisher
	contracts Contracts
	log       ports.Logger
	now       func() time.Time
}

func NewCatalogService(pub ports.Publisher, contracts Contracts, log ports.Logger) *CatalogService {
	return &CatalogService{pub: pub, contracts: contracts, log: log, now: time.Now}
}

// PublishUploaded публикует событие загрузки с ключом tenant_id.
// Невалидное событие: *domain.SerializationError, нет соединения: *domain.ConnectionError.
func (s *CatalogService) PublishUploaded(ctx context.Context, ev *domain.MediaUploaded) error {
	if ev == nil {
		return &domain.SerializationError{Topic: s.contracts.Uploaded.Topic(), Err: errors.New("event is nil")}
	}
	if err := producer.Send(ctx, s.pub, s.contracts.Uploaded, *ev, producer.WithKey([]byte(ev.TenantID))); err != nil {
		s.log.Warnf(ctx, "publish media.uploaded failed media_id=%s err=%v", ev.MediaID, err)
		return err
	}
	s.log.Debugf(ctx, "media.uploaded enqueued media_id=%s tenant=%s", ev.MediaID, ev.TenantID)
	return nil
}

// IndexOne: обработчик одиночного режима.
func (s *CatalogService) IndexOne(ctx context.Context, msg *domain.Message[domain.MediaUploaded]) error {
	entry, err := s.catalogEntry(msg)
	if err != nil {
		return err
	}
	if err := producer.Send(ctx, s.pub, s.contracts.Indexed, entry,
		producer.WithKey([]byte(msg.Value.TenantID)), sourceOf(msg)); err != nil {
		return fmt.Errorf("publish catalog entry media_id=%s: %w", msg.Value.MediaID, err)
	}
	s.log.Infof(ctx, "catalog entry published media_id=%s offset=%d", msg.Value.MediaID, msg.Offset)
	return nil
}

// sourceOf помечает catalog-запись координатами исходного события: оффсет
// источника коммитится после постановки в очередь, и сбой доставки журналируется по ним.
func sourceOf(msg *domain.Message[domain.MediaUploaded]) producer.Option {
	return producer.WithHeaders(domain.SourceHeaders(domain.RecordRef{
		Topic: msg.Topic, Partition: msg.Partition, Offset: msg.Offset,
	}))
}

// IndexBatch: обработчик пакетного режима: сначала строятся все записи,
// потом публикуются по порядку. Частичная публикация при ошибке возможна,
// повтор батча даст дубликаты у получателя.
func (s *CatalogService) IndexBatch(ctx context.Context, msgs []*domain.Message[domain.MediaUploaded]) error {
	entries := make([]*structpb.Struct, 0, len(msgs))
	for _, m := range msgs {
		entry, err := s.catalogEntry(m)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
	}

	var errs []error
	for i, entry := range entries {
		key := producer.WithKey([]byte(msgs[i].Value.TenantID))
		if err := producer.Send(ctx, s.pub, s.contracts.Indexed, entry, key, sourceOf(msgs[i])); err != nil {
			errs = append(errs, fmt.Errorf("media_id=%s: %w", msgs[i].Value.MediaID, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("publish catalog batch: %w", err)
	}
	s.log.Infof(ctx, "catalog batch published size=%d", len(entries))
	return nil
}

func (s *CatalogService) catalogEntry(msg *domain.Message[domain.MediaUploaded]) (*structpb.Struct, error) {
	ev := msg.Value
	tags := make([]any, 0, len(ev.Tags))
	for _, t := range ev.Tags {
		tags = append(tags, t)
	}
	entry, err := structpb.NewStruct(map[string]any{
		"tenant_id":    ev.TenantID,
		"media_id":     ev.MediaID,
		"kind":         ev.Kind,
		"storage_key":  ev.StorageKey,
		"content_type": ev.ContentType,
		"size_bytes":   float64(ev.SizeBytes),
		"tags":         tags,
		"uploaded_at":  ev.UploadedAt.UTC().Format(time.RFC3339Nano),
		"indexed_at":   s.now().UTC().Format(time.RFC3339Nano),
		"source": map[string]any{
			"topic":     msg.Topic,
			"partition": float64(msg.Partition),
			"offset":    float64(msg.Offset),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("build catalog entry media_id=%s: %w", ev.MediaID, err)
	}
	return entry, nil
}
