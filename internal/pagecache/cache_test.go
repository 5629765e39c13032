package pagecache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(time.Minute)

	_, ok := cache.Get(ctx, "/dashboard/invoices")
	assert.False(t, ok)

	cache.Set(ctx, "/dashboard/invoices", []byte(`{"invoices":[]}`))

	payload, ok := cache.Get(ctx, "/dashboard/invoices")
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"invoices":[]}`), payload)

	// Keys are normalized: different case hits the same entry.
	_, ok = cache.Get(ctx, "/Dashboard/Invoices")
	assert.True(t, ok)
}

func TestMemoryCacheInvalidate(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(time.Minute)

	cache.Set(ctx, "/dashboard/invoices", []byte("stale"))
	assert.NoError(t, cache.Invalidate(ctx, "/dashboard/invoices"))

	_, ok := cache.Get(ctx, "/dashboard/invoices")
	assert.False(t, ok)

	// Invalidating a path that was never cached is a no-op.
	assert.NoError(t, cache.Invalidate(ctx, "/dashboard/customers"))
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(time.Nanosecond)

	cache.Set(ctx, "/dashboard/invoices", []byte("payload"))
	time.Sleep(time.Millisecond)

	_, ok := cache.Get(ctx, "/dashboard/invoices")
	assert.False(t, ok)
}
