package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/freshmartapp/freshmart-backend/pkg/kv"
)

func limiterStore(t *testing.T) (*kv.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	raw := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { raw.Close() })
	return kv.NewFromClient(raw), mr
}

func limitedHandler(store *kv.Client, policy AuthRateLimitPolicy) http.Handler {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return AuthRateLimit(policy, store, nil)(next)
}

func hit(handler http.Handler, ip string) int {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	req.Header.Set("X-Forwarded-For", ip)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec.Code
}

func TestAuthRateLimitBlocksAfterLimit(t *testing.T) {
	store, _ := limiterStore(t)
	handler := limitedHandler(store, NewAuthRateLimitPolicy("login", time.Minute, 3))

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hit(handler, "10.0.0.1"))
	}
	assert.Equal(t, http.StatusTooManyRequests, hit(handler, "10.0.0.1"))
}

func TestAuthRateLimitIsPerIP(t *testing.T) {
	store, _ := limiterStore(t)
	handler := limitedHandler(store, NewAuthRateLimitPolicy("login", time.Minute, 1))

	assert.Equal(t, http.StatusOK, hit(handler, "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, hit(handler, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, hit(handler, "10.0.0.2"))
}

func TestAuthRateLimitWindowExpires(t *testing.T) {
	store, mr := limiterStore(t)
	handler := limitedHandler(store, NewAuthRateLimitPolicy("login", time.Minute, 1))

	assert.Equal(t, http.StatusOK, hit(handler, "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, hit(handler, "10.0.0.1"))

	mr.FastForward(2 * time.Minute)
	assert.Equal(t, http.StatusOK, hit(handler, "10.0.0.1"))
}

func TestAuthRateLimitDisabledPolicyPassesThrough(t *testing.T) {
	store, _ := limiterStore(t)
	handler := limitedHandler(store, NewAuthRateLimitPolicy("login", 0, 0))

	for i := 0; i < 10; i++ {
		assert.Equal(t, http.StatusOK, hit(handler, "10.0.0.1"))
	}
}
