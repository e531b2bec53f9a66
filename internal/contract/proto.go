package contract

import (
	"errors"

	"google.golang.org/protobuf/proto"
)

// ProtoContract: бинарный контракт поверх protobuf-сообщения T.
type ProtoContract[T proto.Message] struct {
	topic string
	newFn func() T
}

// NewProto создаёт бинарный контракт. Новые экземпляры T получаем через protoreflect,
// поэтому достаточно сгенерированного типа-указателя (например *structpb.Struct).
func NewProto[T proto.Message](topic string) *ProtoContract[T] {
	var zero T
	mt := zero.ProtoReflect().Type()
	return &ProtoContract[T]{
		topic: topic,
		newFn: func() T { return mt.New().Interface().(T) },
	}
}

func (c *ProtoContract[T]) Topic() string        { return c.topic }
func (c *ProtoContract[T]) Transport() Transport { return TransportBinary }

// Serialize кодирует сообщение детерминированно (стабильный порядок ключей map).
func (c *ProtoContract[T]) Serialize(value T) ([]byte, error) {
	if !value.ProtoReflect().IsValid() {
		return nil, serializationError(c.topic, errors.New("message is nil"))
	}
	raw, err := proto.MarshalOptions{Deterministic: true}.Marshal(value)
	if err != nil {
		return nil, serializationError(c.topic, err)
	}
	return raw, nil
}

// Deserialize разбирает байты в новое сообщение и проверяет обязательные поля.
func (c *ProtoContract[T]) Deserialize(data []byte) (T, error) {
	var zero T
	msg := c.newFn()
	if err := proto.Unmarshal(data, msg); err != nil {
		return zero, serializationError(c.topic, err)
	}
	if err := proto.CheckInitialized(msg); err != nil {
		return zero, serializationError(c.topic, err)
	}
	return msg, nil
}
