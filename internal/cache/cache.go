package cache

import "sync"

// DefaultCapacity is used when New is given a non-positive capacity.
const DefaultCapacity = 64

// Cache is a thread-safe LRU cache holding at most Capacity entries.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*entry[K, V]
	order    recency[K]
	capacity int

	hits, misses, evictions uint64
}

type entry[K comparable, V any] struct {
	value V
	node  *node[K]
}

// New creates a cache holding up to capacity entries.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache[K, V]{
		entries:  make(map[K]*entry[K, V]),
		capacity: capacity,
	}
}

// Get returns the value stored under key and marks it recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.order.touch(e.node)
	return e.value, true
}

// Set stores value under key, evicting the least recently used entry when
// the cache is full.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(key, value)
}

// GetOrCreate returns the cached value for key or stores the result of
// create. create runs under the lock, so concurrent callers never build the
// same key twice. Errors from create are returned and nothing is stored.
func (c *Cache[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		c.hits++
		c.order.touch(e.node)
		return e.value, nil
	}
	c.misses++
	value, err := create()
	if err != nil {
		return value, err
	}
	c.set(key, value)
	return value, nil
}

// Delete removes key and reports whether it was present.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return false
	}
	c.order.unlink(e.node)
	delete(c.entries, key)
	return true
}

// Clear removes all entries. Statistics are kept.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*entry[K, V])
	c.order = recency[K]{}
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns a snapshot of the cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Stats{
		Len:       len(c.entries),
		Capacity:  c.capacity,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
	if total := c.hits + c.misses; total > 0 {
		s.HitRate = float64(c.hits) / float64(total)
	}
	return s
}

// set stores value. Caller must hold c.mu.
func (c *Cache[K, V]) set(key K, value V) {
	if e, ok := c.entries[key]; ok {
		e.value = value
		c.order.touch(e.node)
		return
	}
	c.entries[key] = &entry[K, V]{value: value, node: c.order.pushFront(key)}
	for len(c.entries) > c.capacity {
		oldest, ok := c.order.popBack()
		if !ok {
			break
		}
		delete(c.entries, oldest)
		c.evictions++
	}
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the maximum number of entries.
	Capacity int
	// Hits and Misses count Get and GetOrCreate lookups.
	Hits, Misses uint64
	// HitRate is Hits / (Hits + Misses), or 0 before any lookup.
	HitRate float64
	// Evictions counts entries dropped to stay within Capacity.
	Evictions uint64
}
