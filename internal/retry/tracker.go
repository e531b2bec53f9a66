package retry

import (
	"math/rand"
	"sync"
	"time"
)

// Значения по умолчанию.
const (
	DefaultMaxErrors    = 5
	DefaultInitialDelay = 100 * time.Millisecond
	DefaultMaxDelay     = 5 * time.Second
)

// Config: параметры счётчика подряд идущих ошибок и backoff.
// Нулевые значения заменяются дефолтами.
type Config struct {
	MaxErrors    int
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

// Tracker: счётчик подряд идущих ошибок цикла консьюмера и экспоненциальный backoff
// с мультипликативным джиттером [0.5, 1.0]. Живёт ровно столько, сколько один цикл.
type Tracker struct {
	maxErrors    int
	initialDelay time.Duration
	maxDelay     time.Duration

	tries int

	// jitterRand: источник случайности, чтобы рассинхронизировать повторы разных инстансов.
	mu         sync.Mutex
	jitterRand *rand.Rand
}

// NewTracker: конструктор с дефолтами для незаданных полей.
func NewTracker(cfg Config) *Tracker {
	return NewTrackerWithRand(cfg, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewTrackerWithRand: то же, но с заданным источником случайности (для тестов).
func NewTrackerWithRand(cfg Config, rnd *rand.Rand) *Tracker {
	if cfg.MaxErrors <= 0 {
		cfg.MaxErrors = DefaultMaxErrors
	}
	if cfg.InitialDelay <= 0 {
		cfg.InitialDelay = DefaultInitialDelay
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = DefaultMaxDelay
	}
	if cfg.MaxDelay < cfg.InitialDelay {
		cfg.MaxDelay = cfg.InitialDelay
	}
	return &Tracker{
		maxErrors:    cfg.MaxErrors,
		initialDelay: cfg.InitialDelay,
		maxDelay:     cfg.MaxDelay,
		jitterRand:   rnd,
	}
}

// Increment фиксирует ещё одну неудачную попытку.
func (t *Tracker) Increment() { t.tries++ }

// Reset обнуляет счётчик после полностью успешного цикла.
func (t *Tracker) Reset() { t.tries = 0 }

// Tries: текущее число подряд идущих ошибок.
func (t *Tracker) Tries() int { return t.tries }

// MaxErrors: лимит подряд идущих ошибок.
func (t *Tracker) MaxErrors() int { return t.maxErrors }

// Exhausted: лимит исчерпан, цикл должен упасть.
func (t *Tracker) Exhausted() bool { return t.tries >= t.maxErrors }

// Base: задержка без джиттера: min(initial * 2^(tries-1), max).
func (t *Tracker) Base() time.Duration {
	if t.tries <= 0 {
		return 0
	}
	d := t.initialDelay
	for i := 1; i < t.tries; i++ {
		d *= 2
		if d >= t.maxDelay {
			return t.maxDelay
		}
	}
	if d > t.maxDelay {
		return t.maxDelay
	}
	return d
}

// Delay: Base() с джиттером: половина фиксирована, вторая половина случайна.
func (t *Tracker) Delay() time.Duration {
	d := t.Base()
	if d <= 0 {
		return 0
	}
	half := d / 2
	t.mu.Lock()
	jitter := time.Duration(t.jitterRand.Int63n(int64(d-half) + 1))
	t.mu.Unlock()
	return half + jitter
}
