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

type cachedThing struct {
	ID    string   `json:"id"`
	Likes int      `json:"likes"`
	Tags  []string `json:"tags"`
}

func setupRedisCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisCacheFromClient(client, "jaalakam"), mr
}

func TestRedisCache_SetGet(t *testing.T) {
	t.Run("Should round-trip a value under the prefixed key", func(t *testing.T) {
		c, mr := setupRedisCache(t)
		ctx := context.Background()

		in := cachedThing{ID: "a1", Likes: 3, Tags: []string{"poem"}}
		require.NoError(t, c.Set(ctx, "literature:a1", in, time.Minute))
		assert.True(t, mr.Exists("jaalakam:literature:a1"))

		var out cachedThing
		found, err := c.Get(ctx, "literature:a1", &out)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, in, out)
	})

	t.Run("Should report a miss without error", func(t *testing.T) {
		c, _ := setupRedisCache(t)

		var out cachedThing
		found, err := c.Get(context.Background(), "missing", &out)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, out.ID)
	})

	t.Run("Should expire after the TTL", func(t *testing.T) {
		c, mr := setupRedisCache(t)
		ctx := context.Background()

		require.NoError(t, c.Set(ctx, "k", cachedThing{ID: "x"}, time.Minute))
		mr.FastForward(2 * time.Minute)

		var out cachedThing
		found, err := c.Get(ctx, "k", &out)
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestRedisCache_Delete(t *testing.T) {
	c, mr := setupRedisCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "a", 1, time.Minute))
	require.NoError(t, c.Set(ctx, "b", 2, time.Minute))
	require.NoError(t, c.Delete(ctx, "a", "b", "never-set"))

	assert.False(t, mr.Exists("jaalakam:a"))
	assert.False(t, mr.Exists("jaalakam:b"))
	assert.NoError(t, c.Delete(ctx))
}

func TestRedisCache_Incr(t *testing.T) {
	c, mr := setupRedisCache(t)
	ctx := context.Background()

	n, err := c.Incr(ctx, "gen:a", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = c.Incr(ctx, "gen:a", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, time.Minute, mr.TTL("jaalakam:gen:a"))

	var stored int64
	found, err := c.Get(ctx, "gen:a", &stored)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(2), stored)
}

func TestRedisCache_Ping(t *testing.T) {
	c, mr := setupRedisCache(t)
	assert.NoError(t, c.Ping(context.Background()))

	mr.Close()
	assert.Error(t, c.Ping(context.Background()))
}
