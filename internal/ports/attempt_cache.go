package ports

// AttemptCounter: счётчик попыток обработки по ключу записи.
// Требования к реализации: потокобезопасность, ограниченный объём памяти.
type AttemptCounter interface {
	// Incr увеличивает счётчик и возвращает новое значение.
	Incr(key string) int
	// Forget удаляет ключ.
	Forget(key string)
}
