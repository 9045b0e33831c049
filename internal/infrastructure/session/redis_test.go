package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T, ttl time.Duration) (*RedisTokenStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisTokenStore(client, "", ttl), mr
}

func TestRedisTokenStore(t *testing.T) {
	ctx := context.Background()

	t.Run("load before save means no session", func(t *testing.T) {
		store, _ := newRedisStore(t, 0)
		token, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, token)
	})

	t.Run("round trip under the default key", func(t *testing.T) {
		store, mr := newRedisStore(t, 0)
		require.NoError(t, store.Save(ctx, "tok"))

		got, err := mr.Get(DefaultRedisKey)
		require.NoError(t, err)
		assert.Equal(t, "tok", got)

		token, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "tok", token)
	})

	t.Run("ttl expires the token", func(t *testing.T) {
		store, mr := newRedisStore(t, time.Minute)
		require.NoError(t, store.Save(ctx, "tok"))

		mr.FastForward(2 * time.Minute)

		token, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, token)
	})

	t.Run("clear deletes the key and is idempotent", func(t *testing.T) {
		store, _ := newRedisStore(t, 0)
		require.NoError(t, store.Save(ctx, "tok"))
		require.NoError(t, store.Clear(ctx))

		token, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, token)

		require.NoError(t, store.Clear(ctx))
	})

	t.Run("connection failure surfaces", func(t *testing.T) {
		store, mr := newRedisStore(t, 0)
		mr.Close()

		_, err := store.Load(ctx)
		assert.Error(t, err)
	})
}
