// Package lru provides a fixed-capacity, recency-ordered key/value cache.
// When the cache is full the least-recently-used entry is evicted.
package lru

import "container/list"

// Cache is a bounded LRU cache. It is not safe for concurrent use; the
// parsing pipeline that owns it runs on a single logical thread.
type Cache[K comparable, V any] struct {
	capacity int
	order    *list.List // front = most recently used
	entries  map[K]*list.Element
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// New creates a cache with the given capacity. Capacities below 1 are
// clamped to 1 rather than rejected.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &Cache[K, V]{
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[K]*list.Element, capacity),
	}
}

// Get returns the value for key and whether it was present. A hit promotes
// the key to most-recently-used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	if el, ok := c.entries[key]; ok {
		c.order.MoveToFront(el)
		return el.Value.(*entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Set stores a value under key, evicting the least-recently-used entry if
// the cache would exceed its capacity.
func (c *Cache[K, V]) Set(key K, value V) {
	if el, ok := c.entries[key]; ok {
		el.Value.(*entry[K, V]).value = value
		c.order.MoveToFront(el)
		return
	}
	c.entries[key] = c.order.PushFront(&entry[K, V]{key: key, value: value})
	if c.order.Len() > c.capacity {
		c.evictOldest()
	}
}

// Delete removes key from the cache. Removing an absent key is a no-op.
func (c *Cache[K, V]) Delete(key K) {
	if el, ok := c.entries[key]; ok {
		c.order.Remove(el)
		delete(c.entries, key)
	}
}

// Clear removes all entries.
func (c *Cache[K, V]) Clear() {
	c.order.Init()
	clear(c.entries)
}

// Len returns the number of entries currently cached.
func (c *Cache[K, V]) Len() int {
	return c.order.Len()
}

// Capacity returns the fixed capacity the cache was created with.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

func (c *Cache[K, V]) evictOldest() {
	oldest := c.order.Back()
	if oldest == nil {
		return
	}
	c.order.Remove(oldest)
	delete(c.entries, oldest.Value.(*entry[K, V]).key)
}
