package memory

import (
	"container/list"
	"sync"
	"time"

	"github.com/Gunvolt24/eventbus/internal/ports"
	"github.com/Gunvolt24/eventbus/pkg/metrics"
)

var _ ports.AttemptCounter = (*AttemptCache)(nil)

type entry struct {
	key       string
	attempts  int
	expiresAt time.Time
}

// AttemptCache: счётчики попыток по ключу записи с вытеснением LRU и TTL.
// Вытеснение обнуляет счётчик, поэтому ёмкость должна покрывать число
// одновременно «болеющих» записей.
type AttemptCache struct {
	capacity int
	ttl      time.Duration
	now      func() time.Time

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

func NewAttemptCache(capacity int, ttl time.Duration) *AttemptCache {
	if capacity <= 0 {
		capacity = 1
	}
	return &AttemptCache{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

// Incr увеличивает счётчик ключа и возвращает новое значение; истёкший ключ начинает с 1.
func (c *AttemptCache) Incr(key string) int {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[key]; ok {
		ent := elem.Value.(*entry)
		if !c.isExpired(ent, now) {
			ent.attempts++
			ent.expiresAt = c.expiryFrom(now)
			c.ll.MoveToFront(elem)
			metrics.CacheOps.WithLabelValues("hit").Inc()
			return ent.attempts
		}
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
	} else {
		metrics.CacheOps.WithLabelValues("miss").Inc()
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry{key: key, attempts: 1, expiresAt: c.expiryFrom(now)})
	c.index[key] = elem
	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	metrics.CacheSize.Set(float64(c.ll.Len()))
	return 1
}

// Forget удаляет ключ (запись обработана или отправлена в журнал).
func (c *AttemptCache) Forget(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.index[key]; ok {
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(c.ll.Len()))
	}
}

// Len: число живых ключей (включая ещё не вычищенные истёкшие).
func (c *AttemptCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}
