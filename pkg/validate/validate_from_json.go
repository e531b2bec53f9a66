package validate

import (
	"github.com/Gunvolt24/eventbus/internal/contract"
)

// ValidateFromJSON: строгая проверка одного документа контрактом топика.
// Ошибка: *domain.SerializationError (битый JSON, лишние поля, нарушение схемы).
func ValidateFromJSON[T any](c contract.Contract[T], raw []byte) (T, error) {
	return c.Deserialize(raw)
}

// Canonical: каноническая форма значения (как её отправит продьюсер).
func Canonical[T any](c contract.Contract[T], value T) ([]byte, error) {
	return c.Serialize(value)
}
