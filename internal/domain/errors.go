package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig: фатальная ошибка конфигурации консьюмера (проверяется при старте).
	ErrInvalidConfig = errors.New("invalid consumer configuration")
	// ErrNotConnected: операция требует активного соединения с брокером.
	ErrNotConnected = errors.New("not connected")
	// ErrFlushTimeout: не все сообщения подтверждены брокером за отведённое время.
	ErrFlushTimeout = errors.New("flush timed out")
	// ErrHandlerPanic: обработчик запаниковал; паника превращена в ошибку цикла.
	ErrHandlerPanic = errors.New("handler panicked")
	// ErrAlreadyRunning: цикл консьюмера уже запущен.
	ErrAlreadyRunning = errors.New("consumer loop already running")
)

// ConnectionError: сбой уровня брокера: connect, poll, commit, disconnect.
type ConnectionError struct {
	Op      string // connect | poll | commit | seek | send | disconnect
	Timeout bool   // true, если вышел таймаут, а не брокер вернул ошибку
	Err     error
}

func (e *ConnectionError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("broker %s: timed out: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("broker %s: %v", e.Op, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// SerializationError: полезная нагрузка не соответствует контракту топика.
type SerializationError struct {
	Topic string
	Err   error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialization failed topic=%s: %v", e.Topic, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

// Retriable: повтор не сделает битое сообщение корректным.
func (e *SerializationError) Retriable() bool { return false }

// CrashError: терминальное состояние цикла: исчерпан лимит подряд идущих ошибок.
type CrashError struct {
	Attempts int
	Err      error
}

func (e *CrashError) Error() string {
	return fmt.Sprintf("consumer crashed after %d consecutive error(s): %v", e.Attempts, e.Err)
}

func (e *CrashError) Unwrap() error { return e.Err }

// IsRetriable: общий признак для ошибок, умеющих сообщить о повторяемости.
// Ошибки без метода Retriable считаются повторяемыми.
func IsRetriable(err error) bool {
	var r interface{ Retriable() bool }
	if errors.As(err, &r) {
		return r.Retriable()
	}
	return true
}

// RecordError: сбой, привязанный к конкретной записи (битая нагрузка или ошибка её обработчика).
type RecordError struct {
	Ref RecordRef
	Err error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %s[%d]@%d: %v", e.Ref.Topic, e.Ref.Partition, e.Ref.Offset, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// BatchError: неудачный batch-цикл. Refs: все записи батча в порядке poll;
// при пропуске они коммитятся вместе с виновной.
type BatchError struct {
	Refs []RecordRef
	Err  error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("batch of %d record(s): %v", len(e.Refs), e.Err)
}

func (e *BatchError) Unwrap() error { return e.Err }

// FailedRecords: запись, которой принадлежит ошибка (fallback, если ошибка её не знает),
// и остальные записи того же батча.
func FailedRecords(err error, fallback RecordRef) (culprit RecordRef, rest []RecordRef) {
	culprit = fallback
	var rerr *RecordError
	if errors.As(err, &rerr) {
		culprit = rerr.Ref
	}
	var berr *BatchError
	if errors.As(err, &berr) {
		for _, ref := range berr.Refs {
			if ref != culprit {
				rest = append(rest, ref)
			}
		}
	}
	return culprit, rest
}
