package middlewares

import (
	"clinic-site/internal/pkg/constvars"
	"clinic-site/internal/pkg/utils"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter is a per IP token bucket that blocks a client for blockTime once its bucket runs dry.
// It guards the deploy webhook, which has no Redis to share counters through.
type RateLimiter struct {
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	rps       int
	burst     int
	blockTime time.Duration
	now       func() time.Time
}

func NewRateLimiter(rps, burst int, blockTime time.Duration) *RateLimiter {
	if rps <= 0 {
		rps = 1
	}
	if burst <= 0 {
		burst = rps
	}
	return &RateLimiter{
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		rps:       rps,
		burst:     burst,
		blockTime: blockTime,
		now:       time.Now,
	}
}

// WebhookRateLimit builds the webhook limiter from Webhook.MaxRequestsPerSecond and Webhook.Burst.
func (m *Middlewares) WebhookRateLimit() func(next http.Handler) http.Handler {
	limiter := NewRateLimiter(
		m.InternalConfig.Webhook.MaxRequestsPerSecond,
		m.InternalConfig.Webhook.Burst,
		time.Duration(constvars.WebhookLimiterBlockInSec)*time.Second,
	)
	return limiter.Limit
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			ip = req.RemoteAddr
		}

		if !r.allow(ip) {
			w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(int(r.blockTime.Seconds())))
			utils.BuildTextResponse(w, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests)
			return
		}

		next.ServeHTTP(w, req)
	})
}

func (r *RateLimiter) allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if blockedUntil, found := r.blocked[ip]; found {
		if now.Before(blockedUntil) {
			return false
		}
		delete(r.blocked, ip)
	}

	limiter, exists := r.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rate.Limit(r.rps), r.burst)
		r.limiters[ip] = limiter
	}

	if !limiter.AllowN(now, 1) {
		r.blocked[ip] = now.Add(r.blockTime)
		return false
	}
	return true
}
