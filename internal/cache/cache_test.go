package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return New(client), mr
}

func TestCacheSetGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	_, ok := c.Get(ctx, KeyServices)
	assert.False(t, ok)

	c.Set(ctx, KeyServices, []byte(`[{"id":1}]`))

	payload, ok := c.Get(ctx, KeyServices)
	require.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, string(payload))
}

func TestCacheInvalidate(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, KeyServices, []byte(`[]`))
	c.Set(ctx, KeyServicesVersion, []byte(`{"version":"none"}`))

	c.Invalidate(ctx, KeyServices, KeyServicesVersion)

	_, ok := c.Get(ctx, KeyServices)
	assert.False(t, ok)
	_, ok = c.Get(ctx, KeyServicesVersion)
	assert.False(t, ok)
}

func TestCacheExpiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, KeySiteConfig, []byte(`{}`))
	mr.FastForward(DefaultTTL + time.Second)

	_, ok := c.Get(ctx, KeySiteConfig)
	assert.False(t, ok)
}

func TestCacheNilSafe(t *testing.T) {
	ctx := context.Background()
	var c *Cache

	_, ok := c.Get(ctx, KeyServices)
	assert.False(t, ok)
	c.Set(ctx, KeyServices, []byte(`[]`))
	c.Invalidate(ctx, KeyServices)

	empty := &Cache{}
	_, ok = empty.Get(ctx, KeyServices)
	assert.False(t, ok)
}
