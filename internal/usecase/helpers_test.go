package usecase_test

import (
	"context"
	"time"

	"github.com/Gunvolt24/eventbus/internal/domain"
	"github.com/Gunvolt24/eventbus/internal/usecase"
)

type noopLogger struct{}

func (noopLogger) Debugf(context.Context, string, ...any) {}
func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

var testTopics = usecase.Topics{MediaUploaded: "media.uploaded", CatalogIndexed: "catalog.item.indexed"}

func validEvent() domain.MediaUploaded {
	return domain.MediaUploaded{
		TenantID:    "tenant-1",
		MediaID:     "2b1d7c1e-6f0a-4b8e-9d36-0c5a8f3e9a11",
		Kind:        "image",
		StorageKey:  "media/cat.png",
		ContentType: "image/png",
		SizeBytes:   1024,
		Tags:        []string{"cats", "pets"},
		UploadedAt:  time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func msgAt(offset int64, ev domain.MediaUploaded) *domain.Message[domain.MediaUploaded] {
	return domain.NewMessage(domain.RawRecord{Topic: testTopics.MediaUploaded, Partition: 0, Offset: offset}, ev)
}
