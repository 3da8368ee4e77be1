// ============================================================================
// minilang - Front end for a small teaching language
// ============================================================================
//
// Package:     cache
// Description: Bounded in-memory cache for compilation results, keyed by a
//              hash of the inputs
// Author:      Mike Stoffels
// Created:     2025-12-07
// License:     MIT
// ============================================================================

package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

// Entry represents a cached item
type Entry[V any] struct {
	Value V
	Added time.Time
}

// Cache is a thread-safe in-memory cache. When full, the oldest entry is
// evicted.
type Cache[V any] struct {
	mu       sync.RWMutex
	items    map[string]*Entry[V]
	maxItems int

	// Metrics
	hits   int64
	misses int64
}

// Config holds cache configuration
type Config struct {
	MaxItems int
}

// DefaultConfig returns default cache configuration
func DefaultConfig() Config {
	return Config{MaxItems: 16}
}

// New creates a new cache instance
func New[V any](cfg Config) *Cache[V] {
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = DefaultConfig().MaxItems
	}
	return &Cache[V]{
		items:    make(map[string]*Entry[V]),
		maxItems: cfg.MaxItems,
	}
}

// Key hashes the given parts into a cache key. Parts are length-prefixed so
// that ("ab", "c") and ("a", "bc") differ.
func Key(parts ...string) string {
	h := sha256.New()
	var size [8]byte
	for _, p := range parts {
		n := uint64(len(p))
		for i := range size {
			size[i] = byte(n >> (8 * i))
		}
		h.Write(size[:])
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Get retrieves a value from the cache
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.items[key]
	if !exists {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	return entry.Value, true
}

// Set stores a value in the cache
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[key]; !exists && len(c.items) >= c.maxItems {
		c.evictOldest()
	}
	c.items[key] = &Entry[V]{Value: value, Added: time.Now()}
}

// Delete removes a value from the cache
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Clear removes all items from the cache
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*Entry[V])
}

// Size returns the number of items in the cache
func (c *Cache[V]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Stats returns cache statistics
func (c *Cache[V]) Stats() (hits, misses int64, hitRate float64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	hits = c.hits
	misses = c.misses
	total := hits + misses
	if total > 0 {
		hitRate = float64(hits) / float64(total) * 100
	}
	return
}

// evictOldest removes the oldest entry (must be called with lock held)
func (c *Cache[V]) evictOldest() {
	var oldestKey string
	var oldestTime time.Time

	for key, entry := range c.items {
		if oldestKey == "" || entry.Added.Before(oldestTime) {
			oldestKey = key
			oldestTime = entry.Added
		}
	}

	if oldestKey != "" {
		delete(c.items, oldestKey)
	}
}

// GetOrSet returns the cached value for key or computes and stores it. A
// failed computation is not cached.
func (c *Cache[V]) GetOrSet(key string, fn func() (V, error)) (V, bool, error) {
	if val, ok := c.Get(key); ok {
		return val, true, nil
	}

	val, err := fn()
	if err != nil {
		return val, false, err
	}

	c.Set(key, val)
	return val, false, nil
}
