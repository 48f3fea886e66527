// File: memo.go
// Title: Bounded Memoization Cache
// Description: A size bounded, concurrency safe memo keyed by string. Misses
//              for the same key are collapsed so an expensive value (a zone
//              formatter, a compiled pattern) is built once even when many
//              goroutines ask for it at the same time.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation on golang-lru and singleflight

// Package memo provides the bounded caches used by the date engine.
package memo

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// Cache memoizes values of type V by string key
type Cache[V any] struct {
	entries *lru.Cache[string, V]
	group   singleflight.Group
	hits    atomic.Int64
	misses  atomic.Int64
}

// Stats is a point-in-time view of cache usage
type Stats struct {
	Size   int
	Hits   int64
	Misses int64
}

// New creates a cache holding at most size entries. A non-positive size
// falls back to 1.
func New[V any](size int) (*Cache[V], error) {
	if size <= 0 {
		size = 1
	}
	entries, err := lru.New[string, V](size)
	if err != nil {
		return nil, err
	}
	return &Cache[V]{entries: entries}, nil
}

// Get returns the cached value for key, calling build on a miss. The bool
// reports whether the value came from the cache. Errors from build are not
// cached.
func (c *Cache[V]) Get(key string, build func() (V, error)) (V, bool, error) {
	if v, ok := c.entries.Get(key); ok {
		c.hits.Add(1)
		return v, true, nil
	}

	c.misses.Add(1)
	res, err, _ := c.group.Do(key, func() (interface{}, error) {
		if v, ok := c.entries.Get(key); ok {
			return v, nil
		}
		v, err := build()
		if err != nil {
			return v, err
		}
		c.entries.Add(key, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, false, err
	}
	return res.(V), false, nil
}

// Peek returns a cached value without building or touching recency
func (c *Cache[V]) Peek(key string) (V, bool) {
	return c.entries.Peek(key)
}

// Len returns the number of cached entries
func (c *Cache[V]) Len() int {
	return c.entries.Len()
}

// Purge drops every entry and resets the counters
func (c *Cache[V]) Purge() {
	c.entries.Purge()
	c.hits.Store(0)
	c.misses.Store(0)
}

// Stats returns current usage counters
func (c *Cache[V]) Stats() Stats {
	return Stats{
		Size:   c.entries.Len(),
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
	}
}
