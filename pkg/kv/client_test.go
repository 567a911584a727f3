package kv

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	raw := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { raw.Close() })
	return NewFromClient(raw), mr
}

func TestSetGetRoundTrip(t *testing.T) {
	client, _ := setupClient(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, client.StateKey("cart"), `[]`, 0))

	val, err := client.Get(ctx, client.StateKey("cart"))
	require.NoError(t, err)
	assert.Equal(t, `[]`, val)
}

func TestGetMissingKey(t *testing.T) {
	client, _ := setupClient(t)

	_, err := client.Get(context.Background(), client.StateKey("currentUser"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelIsIdempotent(t *testing.T) {
	client, mr := setupClient(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "fm:state:isLoggedIn", "true", 0))
	require.NoError(t, client.Del(ctx, "fm:state:isLoggedIn"))
	assert.False(t, mr.Exists("fm:state:isLoggedIn"))

	// Deleting an absent key is not an error.
	require.NoError(t, client.Del(ctx, "fm:state:isLoggedIn"))
}

func TestStateKeyNamespacing(t *testing.T) {
	client, _ := setupClient(t)

	assert.Equal(t, "fm:state:cart", client.StateKey("cart"))
	assert.Equal(t, "fm:state:isLoggedIn", client.StateKey("isLoggedIn"))
	assert.Equal(t, "fm:rate_limit:login:1.2.3.4", client.RateLimitKey("login:1.2.3.4"))
}

func TestFixedWindowAllow(t *testing.T) {
	client, mr := setupClient(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, count, err := client.FixedWindowAllow(ctx, "login:ip", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, int64(i+1), count)
	}

	allowed, count, err := client.FixedWindowAllow(ctx, "login:ip", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, int64(4), count)

	// Window expiry resets the counter.
	mr.FastForward(2 * time.Minute)
	allowed, count, err = client.FixedWindowAllow(ctx, "login:ip", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, int64(1), count)
}
