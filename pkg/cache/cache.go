// Package cache wraps a bounded least-recently-used store behind a
// get-or-load contract. A nil or zero-capacity cache degrades to a
// passthrough that invokes the loader on every call and stores nothing.
package cache

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache is a bounded LRU mapping with loader-style population. Capacity is
// fixed at construction; inserting beyond capacity evicts the least recently
// used entry. It is not safe for concurrent use without external locking.
type Cache[K comparable, V any] struct {
	entries *lru.Cache[K, V]
}

// New returns a Cache holding at most size entries. A size of zero or less
// yields a passthrough cache.
func New[K comparable, V any](size int) (*Cache[K, V], error) {
	if size <= 0 {
		return &Cache[K, V]{}, nil
	}
	entries, err := lru.New[K, V](size)
	if err != nil {
		return nil, fmt.Errorf("cache: create lru: %w", err)
	}
	return &Cache[K, V]{entries: entries}, nil
}

// GetOrLoad returns the cached value for key, invoking load on a miss and
// storing the result. Loader errors are returned without caching anything.
func (c *Cache[K, V]) GetOrLoad(key K, load func() (V, error)) (V, error) {
	if c == nil || c.entries == nil {
		return load()
	}
	if value, ok := c.entries.Get(key); ok {
		return value, nil
	}
	value, err := load()
	if err != nil {
		var zero V
		return zero, err
	}
	c.entries.Add(key, value)
	return value, nil
}

// Contains reports whether key is cached, without refreshing recency.
func (c *Cache[K, V]) Contains(key K) bool {
	if c == nil || c.entries == nil {
		return false
	}
	return c.entries.Contains(key)
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	if c == nil || c.entries == nil {
		return 0
	}
	return c.entries.Len()
}

// Clear drops every entry unconditionally.
func (c *Cache[K, V]) Clear() {
	if c == nil || c.entries == nil {
		return
	}
	c.entries.Purge()
}
