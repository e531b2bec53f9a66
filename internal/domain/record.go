package domain

import (
	"strconv"
	"time"
)

// RawRecord: запись в том виде, в каком её отдал брокер. После создания не изменяется.
type RawRecord struct {
	Topic       string
	Partition   int32
	Offset      int64
	LeaderEpoch int32 // нужен брокеру при коммите; -1, если неизвестен
	Key         []byte
	Value       []byte
	Headers     map[string][]byte
	Timestamp   time.Time
}

// Ref возвращает координаты записи для стратегии обработки ошибок.
func (r RawRecord) Ref() RecordRef {
	return RecordRef{Topic: r.Topic, Partition: r.Partition, Offset: r.Offset}
}

// Message: типизированное сообщение, полученное из RawRecord через контракт топика.
type Message[T any] struct {
	Value     T
	Topic     string
	Partition int32
	Offset    int64
	Key       []byte
	Headers   map[string][]byte
	Timestamp time.Time
}

// NewMessage переносит метаданные записи в типизированное сообщение.
func NewMessage[T any](rec RawRecord, value T) *Message[T] {
	return &Message[T]{
		Value:     value,
		Topic:     rec.Topic,
		Partition: rec.Partition,
		Offset:    rec.Offset,
		Key:       rec.Key,
		Headers:   rec.Headers,
		Timestamp: rec.Timestamp,
	}
}

// RecordRef: (topic, partition, offset) первой записи неудачного цикла.
type RecordRef struct {
	Topic     string
	Partition int32
	Offset    int64
}

// Verdict: решение стратегии обработки ошибок.
type Verdict int

const (
	VerdictRetry Verdict = iota // перечитать с того же оффсета
	VerdictSkip                 // закоммитить, несмотря на ошибку
)

func (v Verdict) String() string {
	if v == VerdictSkip {
		return "skip"
	}
	return "retry"
}

// OutgoingRecord: сообщение, поставленное продьюсером в очередь на отправку.
type OutgoingRecord struct {
	Topic     string
	Key       []byte
	Partition *int32 // nil: партицию выбирает партиционер клиента
	Headers   map[string][]byte
	Value     []byte
}

// DeliveryReport: итог асинхронной доставки, приходит в колбэк продьюсера.
type DeliveryReport struct {
	Topic     string
	Partition int32
	Offset    int64
	Key       []byte
	Headers   map[string][]byte
}

// Заголовки с координатами исходной записи: по ним сбой доставки производной
// записи связывается с уже закоммиченным источником.
const (
	HeaderSourceTopic     = "x-source-topic"
	HeaderSourcePartition = "x-source-partition"
	HeaderSourceOffset    = "x-source-offset"
)

// SourceHeaders кодирует координаты ref в заголовки.
func SourceHeaders(ref RecordRef) map[string][]byte {
	return map[string][]byte{
		HeaderSourceTopic:     []byte(ref.Topic),
		HeaderSourcePartition: []byte(strconv.FormatInt(int64(ref.Partition), 10)),
		HeaderSourceOffset:    []byte(strconv.FormatInt(ref.Offset, 10)),
	}
}

// SourceRef восстанавливает координаты из заголовков; false, если их нет или они битые.
func SourceRef(h map[string][]byte) (RecordRef, bool) {
	topic := string(h[HeaderSourceTopic])
	if topic == "" {
		return RecordRef{}, false
	}
	p, err := strconv.ParseInt(string(h[HeaderSourcePartition]), 10, 32)
	if err != nil {
		return RecordRef{}, false
	}
	off, err := strconv.ParseInt(string(h[HeaderSourceOffset]), 10, 64)
	if err != nil {
		return RecordRef{}, false
	}
	return RecordRef{Topic: topic, Partition: int32(p), Offset: off}, true
}
