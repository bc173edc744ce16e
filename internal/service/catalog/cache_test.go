package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_ExpiresAfterTTL(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	c := NewMemoryCache()
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 300*time.Second))

	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	now = now.Add(299 * time.Second)
	_, err = c.Get(ctx, "k")
	require.NoError(t, err)

	now = now.Add(time.Second)
	_, err = c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCache_Sweep(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	c := NewMemoryCache()
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "short", []byte("1"), time.Second))
	require.NoError(t, c.Set(ctx, "long", []byte("2"), time.Hour))

	now = now.Add(time.Minute)
	assert.Equal(t, 1, c.Sweep())
	assert.Equal(t, 1, c.Len())

	_, err := c.Get(ctx, "long")
	assert.NoError(t, err)
}

func TestMemoryCache_Miss(t *testing.T) {
	t.Parallel()

	_, err := NewMemoryCache().Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func newTestRedisCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	c := NewRedisCache(client)
	t.Cleanup(func() { _ = c.Close() })

	return c, mr
}

func TestRedisCache_SetGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c, mr := newTestRedisCache(t)

	require.NoError(t, c.Ping(ctx))
	require.NoError(t, c.Set(ctx, "products", []byte(`{"products":[]}`), 300*time.Second))

	got, err := c.Get(ctx, "products")
	require.NoError(t, err)
	assert.JSONEq(t, `{"products":[]}`, string(got))

	assert.True(t, mr.Exists(redisKeyPrefix+"products"))
	assert.Equal(t, 300*time.Second, mr.TTL(redisKeyPrefix+"products"))
}

func TestRedisCache_ExpiresAfterTTL(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c, mr := newTestRedisCache(t)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 300*time.Second))

	mr.FastForward(301 * time.Second)

	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisCache_ConnectionFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c, mr := newTestRedisCache(t)
	mr.Close()

	_, err := c.Get(ctx, "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}
