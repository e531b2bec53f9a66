package contract

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// Общий валидатор: кэширует разбор тегов, потокобезопасен.
var structValidator = validator.New(validator.WithRequiredStructEnabled())

// JSONContract: JSON-контракт со схемой, заданной тегами validate у типа T.
type JSONContract[T any] struct {
	topic    string
	validate bool
}

// NewJSON создаёт JSON-контракт для топика. Если T (или *T): структура,
// значения проверяются валидатором и при сериализации, и при десериализации.
func NewJSON[T any](topic string) *JSONContract[T] {
	return &JSONContract[T]{topic: topic, validate: isStruct[T]()}
}

func (c *JSONContract[T]) Topic() string        { return c.topic }
func (c *JSONContract[T]) Transport() Transport { return TransportJSON }

// Serialize проверяет значение и кодирует его в JSON.
func (c *JSONContract[T]) Serialize(value T) ([]byte, error) {
	if err := c.check(value); err != nil {
		return nil, serializationError(c.topic, err)
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, serializationError(c.topic, err)
	}
	return raw, nil
}

// Deserialize декодирует строго: неизвестные поля и мусор после объекта запрещены.
func (c *JSONContract[T]) Deserialize(data []byte) (T, error) {
	var zero T
	if len(bytes.TrimSpace(data)) == 0 {
		return zero, serializationError(c.topic, errors.New("empty payload"))
	}

	var value T
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&value); err != nil {
		return zero, serializationError(c.topic, fmt.Errorf("invalid json: %w", err))
	}
	// гарантируем отсутствие данных после объекта
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return zero, serializationError(c.topic, errors.New("invalid json: trailing data"))
	}
	if err := c.check(value); err != nil {
		return zero, serializationError(c.topic, err)
	}
	return value, nil
}

func (c *JSONContract[T]) check(value T) error {
	if !c.validate {
		return nil
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return errors.New("value is nil")
	}
	if err := structValidator.Struct(value); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	return nil
}

func isStruct[T any]() bool {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}
