package domain

import "time"

// MediaUploaded: событие о загруженном файле (топик media.uploaded, JSON).
// Теги validate задают схему полезной нагрузки.
type MediaUploaded struct {
	TenantID    string    `json:"tenant_id"    validate:"required,max=64"`
	MediaID     string    `json:"media_id"     validate:"required,uuid"`
	Kind        string    `json:"kind"         validate:"required,oneof=image video audio document"`
	StorageKey  string    `json:"storage_key"  validate:"required"`
	ContentType string    `json:"content_type" validate:"required"`
	SizeBytes   int64     `json:"size_bytes"   validate:"gte=0"`
	Tags        []string  `json:"tags,omitempty" validate:"omitempty,dive,required,max=32"`
	UploadedAt  time.Time `json:"uploaded_at"  validate:"required"`
}

// PoisonRecord: запись журнала сообщений, от которых консьюмер отказался.
type PoisonRecord struct {
	ID        int64     `json:"id"`
	Topic     string    `json:"topic"`
	Partition int32     `json:"partition"`
	Offset    int64     `json:"offset"`
	Attempts  int       `json:"attempts"`
	Error     string    `json:"error"`
	CreatedAt time.Time `json:"created_at"`
}
