// Package cache holds compiled outlines keyed by their source.
//
// Scenes repeat the same outline many times over (list rows, toolbar
// buttons), and compiling path data costs far more than a map lookup, so
// compiled results live in a bounded LRU.
package cache

import (
	"container/list"
	"sync"
	"sync/atomic"
)

// Cache is an LRU map safe for concurrent use. It must not be copied.
type Cache[K comparable, V any] struct {
	mu    sync.Mutex
	items map[K]*list.Element // values are *entry[K, V]
	order *list.List          // front is most recent
	limit int

	hits, misses atomic.Uint64
}

type entry[K comparable, V any] struct {
	key K
	val V
}

// New returns a cache that keeps at most capacity entries; capacity <= 0
// never evicts.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	return &Cache[K, V]{
		items: make(map[K]*list.Element),
		order: list.New(),
		limit: capacity,
	}
}

// lookup finds key, promotes it and counts the hit or miss. c.mu is held.
func (c *Cache[K, V]) lookup(key K) (V, bool) {
	el, ok := c.items[key]
	if !ok {
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	c.hits.Add(1)
	c.order.MoveToFront(el)
	return el.Value.(*entry[K, V]).val, true
}

// store inserts or replaces key and evicts the oldest entry past the
// limit. c.mu is held.
func (c *Cache[K, V]) store(key K, val V) {
	if el, ok := c.items[key]; ok {
		el.Value.(*entry[K, V]).val = val
		c.order.MoveToFront(el)
		return
	}
	c.items[key] = c.order.PushFront(&entry[K, V]{key: key, val: val})
	if c.limit > 0 && c.order.Len() > c.limit {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*entry[K, V]).key)
	}
}

// Get returns the cached value for key and marks it most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lookup(key)
}

// Set stores val under key, evicting the least recently used entry when full.
func (c *Cache[K, V]) Set(key K, val V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store(key, val)
}

// GetOrCreate returns the cached value for key, calling create on a miss.
// A failed create is not cached. create runs with the cache locked, so a
// key is never compiled twice concurrently.
func (c *Cache[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.lookup(key); ok {
		return v, nil
	}
	v, err := create()
	if err == nil {
		c.store(key, v)
	}
	return v, err
}

// Delete reports whether key was present.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if ok {
		c.order.Remove(el)
		delete(c.items, key)
	}
	return ok
}

// Clear drops every entry but keeps the hit and miss counts.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.items)
	c.order.Init()
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Stats returns a snapshot of the hit and miss counters.
func (c *Cache[K, V]) Stats() Stats {
	return Stats{
		Len:      c.Len(),
		Capacity: c.limit,
		Hits:     c.hits.Load(),
		Misses:   c.misses.Load(),
	}
}

// Stats is a snapshot of cache usage.
type Stats struct {
	Len      int
	Capacity int
	Hits     uint64
	Misses   uint64
}

// HitRate is zero before the first lookup.
func (s Stats) HitRate() float64 {
	if n := s.Hits + s.Misses; n > 0 {
		return float64(s.Hits) / float64(n)
	}
	return 0
}
