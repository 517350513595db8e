package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultCapacity = 100

var _ Cache[string, any] = (*LRUCache[string, any])(nil)

// LRUCache is a concurrent, fixed-size cache with an LRU eviction policy.
type LRUCache[K comparable, V any] struct {
	capacity int
	lru      *lru.Cache[K, V]
}

// NewLRUCache creates a new LRU Cache instance with the given capacity.
// A capacity of zero or less falls back to a default.
func NewLRUCache[K comparable, V any](capacity int) *LRUCache[K, V] {
	if capacity <= 0 {
		capacity = defaultCapacity
	}

	// lru.New only fails on a non-positive size.
	c, err := lru.New[K, V](capacity)
	if err != nil {
		panic(err)
	}

	return &LRUCache[K, V]{capacity: capacity, lru: c}
}

// Capacity returns the maximum number of entries kept.
func (c *LRUCache[K, V]) Capacity() int {
	return c.capacity
}

// Get retrieves a value from the cache.
// If found, the item is promoted to Most Recently Used (MRU).
func (c *LRUCache[K, V]) Get(key K) (V, bool) {
	return c.lru.Get(key)
}

// Set adds a value to the cache, applying any provided options.
func (c *LRUCache[K, V]) Set(key K, value V, opts *options) bool {
	if opts == nil {
		opts = Options()
	}

	if opts.skipExisting {
		found, _ := c.lru.ContainsOrAdd(key, value)
		return !found
	}

	if opts.updateExistingOnly && !c.lru.Contains(key) {
		return false
	}

	c.lru.Add(key, value)
	return true
}

func (c *LRUCache[K, V]) Remove(key K) {
	c.lru.Remove(key)
}

func (c *LRUCache[K, V]) Purge() {
	c.lru.Purge()
}

func (c *LRUCache[K, V]) Len() int {
	return c.lru.Len()
}
