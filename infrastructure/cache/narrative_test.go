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

func setupNarrativeCache(t *testing.T, ttl time.Duration) (NarrativeCache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisNarrativeCache(client, ttl), mr
}

func TestRedisNarrativeCache(t *testing.T) {
	ctx := context.Background()
	cache, mr := setupNarrativeCache(t, time.Hour)

	_, found, err := cache.Get(ctx, "prompt A")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, cache.Set(ctx, "prompt A", "narrativa A"))

	text, found, err := cache.Get(ctx, "prompt A")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "narrativa A", text)

	_, found, err = cache.Get(ctx, "prompt B")
	require.NoError(t, err)
	assert.False(t, found)

	assert.Equal(t, time.Hour, mr.TTL(narrativeKey("prompt A")))
}

func TestRedisNarrativeCache_Expiration(t *testing.T) {
	ctx := context.Background()
	cache, mr := setupNarrativeCache(t, time.Minute)

	require.NoError(t, cache.Set(ctx, "prompt", "texto"))
	mr.FastForward(2 * time.Minute)

	_, found, err := cache.Get(ctx, "prompt")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisNarrativeCache_Unavailable(t *testing.T) {
	ctx := context.Background()
	cache, mr := setupNarrativeCache(t, time.Minute)
	mr.Close()

	_, _, err := cache.Get(ctx, "prompt")
	assert.Error(t, err)
	assert.Error(t, cache.Set(ctx, "prompt", "texto"))
}

func TestNewRedisClient(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client, err := NewRedisClient(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	defer client.Close()

	bare, err := NewRedisClient(context.Background(), mr.Addr())
	require.NoError(t, err)
	defer bare.Close()
}

func TestNarrativeKey(t *testing.T) {
	assert.Equal(t, narrativeKey("a"), narrativeKey("a"))
	assert.NotEqual(t, narrativeKey("a"), narrativeKey("b"))
	assert.Len(t, narrativeKey("a"), len(narrativeKeyPrefix)+64)
}
