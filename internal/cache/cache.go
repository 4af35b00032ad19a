package cache

import "sync"

// Cache is a thread-safe memo table with least-recently-used eviction.
//
// Values are created at most once per resident key: GetOrCreate runs the
// constructor under the lock, so concurrent callers asking for the same key
// observe the same value.
//
// Cache must not be copied after creation (has mutex).
type Cache[K comparable, V any] struct {
	mu    sync.Mutex
	items map[K]*entry[K, V]
	order lruList[K, V]
	limit int

	hits      uint64
	misses    uint64
	evictions uint64
}

// New creates a cache holding at most limit entries.
// A limit of 0 or less means unbounded.
func New[K comparable, V any](limit int) *Cache[K, V] {
	return &Cache[K, V]{
		items: make(map[K]*entry[K, V]),
		limit: limit,
	}
}

// Get returns the value stored for key and marks it recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.order.moveToFront(e)
	return e.value, true
}

// GetOrCreate returns the value for key, calling create on a miss.
// When create fails nothing is stored and the error is returned.
func (c *Cache[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.items[key]; ok {
		c.hits++
		c.order.moveToFront(e)
		return e.value, nil
	}

	c.misses++
	value, err := create()
	if err != nil {
		return value, err
	}
	c.insert(key, value)
	return value, nil
}

// Delete removes key and reports whether it was present.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		return false
	}
	c.order.unlink(e)
	delete(c.items, key)
	return true
}

// Clear removes all entries. Counters are kept.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[K]*entry[K, V])
	c.order = lruList[K, V]{}
}

// Len returns the number of resident entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}

// Stats returns a snapshot of the cache counters.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Stats{
		Len:       len(c.items),
		Limit:     c.limit,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
	if total := c.hits + c.misses; total > 0 {
		s.HitRate = float64(c.hits) / float64(total)
	}
	return s
}

// insert adds a new entry and evicts the least recently used ones while
// over the limit. Caller must hold c.mu.
func (c *Cache[K, V]) insert(key K, value V) {
	e := &entry[K, V]{key: key, value: value}
	c.items[key] = e
	c.order.pushFront(e)

	for c.limit > 0 && c.order.len > c.limit {
		old := c.order.popBack()
		delete(c.items, old.key)
		c.evictions++
	}
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Limit is the maximum number of entries, 0 when unbounded.
	Limit int
	// Hits counts lookups that found a resident entry.
	Hits uint64
	// Misses counts lookups that did not.
	Misses uint64
	// HitRate is Hits / (Hits + Misses), 0 before the first lookup.
	HitRate float64
	// Evictions counts entries dropped to honor Limit.
	Evictions uint64
}
