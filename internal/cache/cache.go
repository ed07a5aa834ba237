// Package cache is a small TTL memoization layer around the load step, so a
// page of metric queries re-parses the CSV at most once per TTL window.
package cache

import (
    "sync"
    "time"
)

type entry[V any] struct {
    value  V
    expiry time.Time
}

// TTL is a key -> (value, expiry) cache. Zero ttl means entries never expire
// until Invalidate or Clear. Safe for concurrent use.
type TTL[V any] struct {
    mu      sync.Mutex
    ttl     time.Duration
    entries map[string]entry[V]
    now     func() time.Time
}

func New[V any](ttl time.Duration) *TTL[V] {
    return &TTL[V]{ttl: ttl, entries: map[string]entry[V]{}, now: time.Now}
}

// Get returns the cached value for key if present and unexpired.
func (c *TTL[V]) Get(key string) (V, bool) {
    c.mu.Lock()
    defer c.mu.Unlock()
    e, ok := c.entries[key]
    if !ok { var zero V; return zero, false }
    if !e.expiry.IsZero() && c.now().After(e.expiry) {
        delete(c.entries, key)
        var zero V
        return zero, false
    }
    return e.value, true
}

// Set stores value under key with the cache's TTL.
func (c *TTL[V]) Set(key string, value V) {
    c.mu.Lock()
    defer c.mu.Unlock()
    var exp time.Time
    if c.ttl > 0 { exp = c.now().Add(c.ttl) }
    c.entries[key] = entry[V]{value: value, expiry: exp}
}

// GetOrLoad returns the cached value or computes, stores, and returns a fresh
// one. load runs under the lock, so concurrent misses stay single-flight.
func (c *TTL[V]) GetOrLoad(key string, load func() V) V {
    if v, ok := c.Get(key); ok { return v }
    c.mu.Lock()
    defer c.mu.Unlock()
    if e, ok := c.entries[key]; ok && (e.expiry.IsZero() || !c.now().After(e.expiry)) {
        return e.value
    }
    v := load()
    var exp time.Time
    if c.ttl > 0 { exp = c.now().Add(c.ttl) }
    c.entries[key] = entry[V]{value: v, expiry: exp}
    return v
}

// Invalidate drops one key.
func (c *TTL[V]) Invalidate(key string) {
    c.mu.Lock()
    defer c.mu.Unlock()
    delete(c.entries, key)
}

// Clear drops everything.
func (c *TTL[V]) Clear() {
    c.mu.Lock()
    defer c.mu.Unlock()
    c.entries = map[string]entry[V]{}
}
