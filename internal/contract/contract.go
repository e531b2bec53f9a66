// Пакет contract связывает имя топика с типизированной сериализацией полезной нагрузки.
// Контракты создаются один раз при старте и дальше не меняются; один контракт могут
// использовать несколько обработчиков и продьюсер одновременно.
package contract

import "github.com/Gunvolt24/eventbus/internal/domain"

// Transport: способ кодирования полезной нагрузки.
type Transport string

const (
	TransportJSON   Transport = "json"
	TransportBinary Transport = "binary"
)

// Contract: двусторонний маппинг между топиком и типом T.
// Serialize детерминирован и без побочных эффектов; Deserialize проверяет структуру
// и при ошибке возвращает *domain.SerializationError, а не частично заполненное значение.
type Contract[T any] interface {
	Topic() string
	Transport() Transport
	Serialize(value T) ([]byte, error)
	Deserialize(data []byte) (T, error)
}

func serializationError(topic string, err error) error {
	return &domain.SerializationError{Topic: topic, Err: err}
}
