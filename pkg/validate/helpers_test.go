package validate

import (
	"fmt"

	"github.com/Gunvolt24/eventbus/internal/contract"
	"github.com/Gunvolt24/eventbus/internal/domain"
)

var mediaContract = contract.NewJSON[domain.MediaUploaded]("media.uploaded")

// mediaJSON: минимально валидное событие; пустой mediaID даёт невалидное.
func mediaJSON(tenant, mediaID string) string {
	return fmt.Sprintf(`{"tenant_id":%q,"media_id":%q,"kind":"image","storage_key":"media/x.png",`+
		`"content_type":"image/png","size_bytes":10,"uploaded_at":"2025-08-01T12:00:00Z"}`, tenant, mediaID)
}

const (
	idA = "2b1d7c1e-6f0a-4b8e-9d36-0c5a8f3e9a11"
	idB = "7f3c2a10-1b2c-4d5e-8f90-a1b2c3d4e5f6"
)
