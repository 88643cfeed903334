package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"texstock/internal/pkg/cache"
	"texstock/internal/pkg/middleware"
)

// fakeCache is an in-memory cache.Client for middleware tests.
type fakeCache struct {
	counts map[string]int
}

func newFakeCache() *fakeCache {
	return &fakeCache{counts: map[string]int{}}
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	count, ok := f.counts[key]
	if !ok {
		return "", cache.ErrCacheMiss
	}
	return strconv.Itoa(count), nil
}

func (f *fakeCache) GetInt(ctx context.Context, key string) (int, error) {
	count, ok := f.counts[key]
	if !ok {
		return 0, cache.ErrCacheMiss
	}
	return count, nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	f.counts[key] = value.(int)
	return nil
}

func (f *fakeCache) Incr(ctx context.Context, key string) error {
	f.counts[key]++
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	delete(f.counts, key)
	return nil
}

func TestRateLimiter_AllowsUpToLimitThenRejects(t *testing.T) {
	fake := newFakeCache()
	limited := middleware.RateLimiter(fake, 3, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/v1/slots", nil)
		req.RemoteAddr = "10.0.0.7:55001"
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/slots", nil)
	req.RemoteAddr = "10.0.0.7:55001"
	rec := httptest.NewRecorder()
	limited.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRateLimiter_CountsPerClientUnderServiceKey(t *testing.T) {
	fake := newFakeCache()
	limited := middleware.RateLimiter(fake, 1, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRequest(http.MethodGet, "/v1/slots", nil)
	first.RemoteAddr = "10.0.0.8:55002"
	rec := httptest.NewRecorder()
	limited.ServeHTTP(rec, first)
	assert.Equal(t, http.StatusOK, rec.Code)

	other := httptest.NewRequest(http.MethodGet, "/v1/slots", nil)
	other.RemoteAddr = "10.0.0.9:55003"
	rec = httptest.NewRecorder()
	limited.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Contains(t, fake.counts, "texstock:rate-limit:10.0.0.8")
	assert.Contains(t, fake.counts, "texstock:rate-limit:10.0.0.9")
}
