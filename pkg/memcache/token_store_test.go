package mem

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*RedisTokens, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisTokens(client, "ezyvoyage:"), mr
}

func TestTokenStores(t *testing.T) {
	redisStore, _ := newRedisStore(t)
	stores := map[string]TokenStore{
		"memory": NewMemoryTokens(),
		"redis":  redisStore,
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, RevokeToken(ctx, store, "jti-1", time.Hour))
			revoked, err := IsRevoked(ctx, store, "jti-1")
			require.NoError(t, err)
			assert.True(t, revoked)

			revoked, err = IsRevoked(ctx, store, "jti-2")
			require.NoError(t, err)
			assert.False(t, revoked)

			require.NoError(t, SaveOAuthState(ctx, store, "state-abc", time.Minute))
			ok, err := ConsumeOAuthState(ctx, store, "state-abc")
			require.NoError(t, err)
			assert.True(t, ok)

			ok, err = ConsumeOAuthState(ctx, store, "state-abc")
			require.NoError(t, err)
			assert.False(t, ok, "state is single use")
		})
	}
}

func TestMemoryTokens_Expiry(t *testing.T) {
	store := NewMemoryTokens()
	now := time.Now()
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", "v", time.Minute))
	now = now.Add(2 * time.Minute)

	ok, err := store.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = store.Consume(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisTokens_Expiry(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, RevokeToken(ctx, store, "jti-9", time.Minute))
	assert.True(t, mr.Exists("ezyvoyage:revoked:jti-9"))

	mr.FastForward(2 * time.Minute)
	revoked, err := IsRevoked(ctx, store, "jti-9")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, RevokeToken(ctx, store, "jti-10", 0))
	assert.False(t, mr.Exists("ezyvoyage:revoked:jti-10"))
}
