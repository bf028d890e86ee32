package middlewares

import (
	"clinic-site/internal/app/services/shared/ratelimiter"
	"clinic-site/internal/pkg/constvars"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type counterRedis struct {
	counts map[string]int
	err    error
}

func (c *counterRedis) Delete(ctx context.Context, keys ...string) error { return nil }
func (c *counterRedis) DeleteByPattern(ctx context.Context, pattern string) (int, error) {
	return 0, nil
}
func (c *counterRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}
func (c *counterRedis) Get(ctx context.Context, key string) (string, error) { return "", nil }
func (c *counterRedis) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	c.counts[key]++
	return c.counts[key], nil
}
func (c *counterRedis) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	return true, nil
}

func TestFormSubmissionLimit(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	post := func(handler http.Handler) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/booking", nil)
		req.RemoteAddr = "192.0.2.10:5555"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	t.Run("Blocks Over Quota", func(t *testing.T) {
		redis := &counterRedis{counts: map[string]int{}}
		middlewares := &Middlewares{
			Log:         zap.NewNop(),
			FormLimiter: ratelimiter.NewResourceLimiter(redis, zap.NewNop()),
		}
		handler := middlewares.FormSubmissionLimit(ok)

		for i := 0; i < constvars.FormLimiterMaxQuota; i++ {
			assert.Equal(t, http.StatusOK, post(handler).Code)
		}

		rr := post(handler)
		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderRetryAfter))
	})

	t.Run("Redis Failure Lets Request Through", func(t *testing.T) {
		redis := &counterRedis{counts: map[string]int{}, err: errors.New("connection refused")}
		middlewares := &Middlewares{
			Log:         zap.NewNop(),
			FormLimiter: ratelimiter.NewResourceLimiter(redis, zap.NewNop()),
		}

		assert.Equal(t, http.StatusOK, post(middlewares.FormSubmissionLimit(ok)).Code)
	})

	t.Run("Disabled Without Limiter", func(t *testing.T) {
		middlewares := &Middlewares{Log: zap.NewNop()}
		assert.Equal(t, http.StatusOK, post(middlewares.FormSubmissionLimit(ok)).Code)
	})

	t.Run("GET Is Not Counted", func(t *testing.T) {
		redis := &counterRedis{counts: map[string]int{}}
		middlewares := &Middlewares{
			Log:         zap.NewNop(),
			FormLimiter: ratelimiter.NewResourceLimiter(redis, zap.NewNop()),
		}

		rr := httptest.NewRecorder()
		middlewares.FormSubmissionLimit(ok).ServeHTTP(rr, httptest.NewRequest("GET", "/contact", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, redis.counts)
	})
}
