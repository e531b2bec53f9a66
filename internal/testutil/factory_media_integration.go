//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/google/uuid"

	"github.com/Gunvolt24/eventbus/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// MakeMediaUploaded: валидное уникальное событие загрузки.
func MakeMediaUploaded() domain.MediaUploaded {
	id := uuid.NewString()
	return domain.MediaUploaded{
		TenantID:    "tenant-" + UniqSuffix(),
		MediaID:     id,
		Kind:        "image",
		StorageKey:  "media/" + id + ".png",
		ContentType: "image/png",
		SizeBytes:   2048,
		Tags:        []string{"itest"},
		UploadedAt:  time.Now().UTC().Truncate(time.Millisecond),
	}
}
