package middleware

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisLimiterUnderTest(t *testing.T) (*RedisLimiter, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisLimiter(client), srv
}

func TestRedisLimiterCountsWithinWindow(t *testing.T) {
	limiter, _ := newRedisLimiterUnderTest(t)

	for i := 0; i < 5; i++ {
		require.True(t, limiter.Allow("apply:user-1", 5, time.Minute), "request %d should pass", i+1)
	}
	assert.False(t, limiter.Allow("apply:user-1", 5, time.Minute))
	assert.True(t, limiter.Allow("apply:user-2", 5, time.Minute), "separate keys get separate counters")
}

func TestRedisLimiterWindowExpiry(t *testing.T) {
	limiter, srv := newRedisLimiterUnderTest(t)

	require.True(t, limiter.Allow("k", 1, time.Second))
	require.False(t, limiter.Allow("k", 1, time.Second))

	srv.FastForward(2 * time.Second)
	assert.True(t, limiter.Allow("k", 1, time.Second))
}

func TestRedisLimiterFailsOpen(t *testing.T) {
	limiter, srv := newRedisLimiterUnderTest(t)
	srv.Close()

	assert.True(t, limiter.Allow("k", 1, time.Minute))
}

func TestRedisLimiterNilClient(t *testing.T) {
	assert.Nil(t, NewRedisLimiter(nil))
	var limiter *RedisLimiter
	assert.True(t, limiter.Allow("k", 1, time.Minute))
}
