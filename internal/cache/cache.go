// Package cache provides a small in-process TTL cache with LRU eviction,
// used to avoid re-reading hot lookups from the storage backend.
package cache

import (
	"container/list"
	"sync"
	"time"
)

const (
	// DefaultTTL is how long an entry stays valid after being set.
	DefaultTTL = 30 * time.Minute

	// DefaultCapacity bounds the number of live entries; the least recently
	// used entry is evicted when the bound is exceeded.
	DefaultCapacity = 1000
)

type entry[V any] struct {
	key      string
	value    V
	storedAt time.Time
}

// Cache is a fixed-capacity TTL cache safe for concurrent use. Expired
// entries are dropped lazily on access; capacity overflow evicts the least
// recently used entry.
type Cache[V any] struct {
	mu       sync.Mutex
	ttl      time.Duration
	capacity int
	now      func() time.Time

	entries map[string]*list.Element
	order   *list.List // front = most recently used

	// gens counts invalidations per key. It outlives the entries themselves
	// so a refill that started before an Invalidate can be told apart from
	// one that started after.
	gens map[string]uint64

	hits   int64
	misses int64
}

// New constructs a Cache with the given TTL and capacity. Non-positive
// arguments fall back to [DefaultTTL] and [DefaultCapacity].
func New[V any](ttl time.Duration, capacity int) *Cache[V] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Cache[V]{
		ttl:      ttl,
		capacity: capacity,
		now:      time.Now,
		entries:  make(map[string]*list.Element, capacity),
		order:    list.New(),
		gens:     make(map[string]uint64),
	}
}

// SetClock replaces the cache's time source. Intended for tests that need to
// control expiry deterministically.
func (c *Cache[V]) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Get returns the cached value for key and whether it was present and fresh.
// A hit promotes the entry to most recently used.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V

	elem, ok := c.entries[key]
	if !ok {
		c.misses++
		return zero, false
	}

	ent := elem.Value.(*entry[V])
	if c.now().Sub(ent.storedAt) > c.ttl {
		c.removeLocked(elem)
		c.misses++
		return zero, false
	}

	c.order.MoveToFront(elem)
	c.hits++
	return ent.value, true
}

// Set stores value under key, replacing any previous entry and resetting its
// TTL. The least recently used entry is evicted if the cache is full.
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.setLocked(key, value)
}

// Generation reports the key's invalidation generation. Read it before a
// slow load and pass it to [Cache.SetIfGeneration] so the load's result
// cannot overwrite a concurrent invalidation.
func (c *Cache[V]) Generation(key string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gens[key]
}

// SetIfGeneration stores value under key only when the key's generation
// still equals gen, i.e. no Invalidate happened since gen was observed.
// Reports whether the value was stored.
func (c *Cache[V]) SetIfGeneration(key string, value V, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gens[key] != gen {
		return false
	}
	c.setLocked(key, value)
	return true
}

func (c *Cache[V]) setLocked(key string, value V) {
	if elem, ok := c.entries[key]; ok {
		ent := elem.Value.(*entry[V])
		ent.value = value
		ent.storedAt = c.now()
		c.order.MoveToFront(elem)
		return
	}

	elem := c.order.PushFront(&entry[V]{
		key:      key,
		value:    value,
		storedAt: c.now(),
	})
	c.entries[key] = elem

	if c.order.Len() > c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			c.removeLocked(oldest)
		}
	}
}

// Invalidate drops the entry for key if one exists and bumps the key's
// generation. The bump happens even for keys that are not currently cached,
// so an in-flight refill for that key is rejected either way.
func (c *Cache[V]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gens[key]++
	if elem, ok := c.entries[key]; ok {
		c.removeLocked(elem)
	}
}

// Len reports the number of entries currently held, including any that have
// expired but not yet been dropped.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Stats reports the cumulative hit and miss counts.
func (c *Cache[V]) Stats() (hits, misses int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

func (c *Cache[V]) removeLocked(elem *list.Element) {
	ent := elem.Value.(*entry[V])
	delete(c.entries, ent.key)
	c.order.Remove(elem)
}
