// Package pagecache caches rendered dashboard views keyed by route path and
// marks them stale when the underlying data changes.
package pagecache

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Cache stores rendered page payloads. Invalidate marks the cached
// rendering of a path stale so the next read recomputes it.
type Cache interface {
	Get(ctx context.Context, path string) ([]byte, bool)
	Set(ctx context.Context, path string, payload []byte)
	Invalidate(ctx context.Context, path string) error
}

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

type memoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
}

// NewMemoryCache returns an in-process cache used when Redis is not configured.
func NewMemoryCache(ttl time.Duration) Cache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &memoryCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
	}
}

func (c *memoryCache) Get(ctx context.Context, path string) ([]byte, bool) {
	_ = ctx
	key := normalizePath(path)
	if key == "" {
		return nil, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return entry.payload, true
}

func (c *memoryCache) Set(ctx context.Context, path string, payload []byte) {
	_ = ctx
	key := normalizePath(path)
	if key == "" || len(payload) == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = memoryEntry{
		payload:   payload,
		expiresAt: time.Now().Add(c.ttl),
	}
}

func (c *memoryCache) Invalidate(ctx context.Context, path string) error {
	_ = ctx
	key := normalizePath(path)
	if key == "" {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

func normalizePath(path string) string {
	return strings.ToLower(strings.TrimSpace(path))
}
