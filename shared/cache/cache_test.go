package cache_test

import (
	"context"
	"fmt"
	"spa/infras/otel/mocks"
	"spa/shared/cache"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T) (cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisCache(client, mocks.NewOtel()), server
}

func TestRedisCache_SaveGet(t *testing.T) {
	ctx := context.Background()
	c, _ := newCache(t)

	type payload struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}

	require.NoError(t, c.Save(ctx, "booking:get:b-1", payload{ID: "b-1", Status: "pending"}, 60))

	var got payload
	require.NoError(t, c.Get(ctx, "booking:get:b-1", &got))
	assert.Equal(t, payload{ID: "b-1", Status: "pending"}, got)

	var raw string
	require.NoError(t, c.Save(ctx, "plain", "value", 60))
	require.NoError(t, c.Get(ctx, "plain", &raw))
	assert.Equal(t, "value", raw)
}

func TestRedisCache_GetMissing(t *testing.T) {
	c, _ := newCache(t)

	var got string
	err := c.Get(context.Background(), "missing", &got)

	require.Error(t, err)
	assert.ErrorIs(t, err, cache.Nil)
}

func TestRedisCache_Clear(t *testing.T) {
	ctx := context.Background()
	c, server := newCache(t)

	require.NoError(t, c.Save(ctx, "blocked:gets:1", "a", 60))
	require.NoError(t, c.Save(ctx, "blocked:gets:2", "b", 60))
	require.NoError(t, c.Save(ctx, "booking:get:1", "c", 60))

	require.NoError(t, c.Clear(ctx, "blocked:gets*"))

	assert.False(t, server.Exists("blocked:gets:1"))
	assert.False(t, server.Exists("blocked:gets:2"))
	assert.True(t, server.Exists("booking:get:1"))
}

func TestRedisCache_Lock(t *testing.T) {
	ctx := context.Background()
	c, server := newCache(t)

	require.NoError(t, c.Lock(ctx, "lock:therapist:t-1:2025-11-15", "owner-a", 10*time.Second))

	err := c.Lock(ctx, "lock:therapist:t-1:2025-11-15", "owner-b", 10*time.Second)
	assert.ErrorIs(t, err, cache.ErrLockNotAcquired)

	// a foreign token must not release the lock
	require.NoError(t, c.Unlock(ctx, "lock:therapist:t-1:2025-11-15", "owner-b"))
	assert.True(t, server.Exists("lock:therapist:t-1:2025-11-15"))

	require.NoError(t, c.Unlock(ctx, "lock:therapist:t-1:2025-11-15", "owner-a"))
	assert.False(t, server.Exists("lock:therapist:t-1:2025-11-15"))

	require.NoError(t, c.Lock(ctx, "lock:therapist:t-1:2025-11-15", "owner-b", 10*time.Second))
}

func TestRedisCache_LockExpires(t *testing.T) {
	ctx := context.Background()
	c, server := newCache(t)

	require.NoError(t, c.Lock(ctx, "lock:room:r-1:2025-11-15", "owner-a", time.Second))

	server.FastForward(2 * time.Second)

	require.NoError(t, c.Lock(ctx, "lock:room:r-1:2025-11-15", "owner-b", time.Second))
}

func TestRedisCache_ClearAcrossScanBatches(t *testing.T) {
	ctx := context.Background()
	c, server := newCache(t)

	for i := range 250 {
		require.NoError(t, server.Set(fmt.Sprintf("room:gets:%d", i), "x"))
	}

	require.NoError(t, server.Set("room:get:keep", "y"))

	require.NoError(t, c.Clear(ctx, "room:gets*"))

	assert.Equal(t, []string{"room:get:keep"}, server.Keys())
}

func TestRedisCache_SaveBytesVerbatim(t *testing.T) {
	ctx := context.Background()
	c, server := newCache(t)

	require.NoError(t, c.Save(ctx, "raw", []byte(`{"id":"b-1"}`), 60))

	got, err := server.Get("raw")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"b-1"}`, got)
	assert.Equal(t, time.Minute, server.TTL("raw"))
}
