package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/phrazzld/users-api/internal/api/shared"
	"golang.org/x/time/rate"
)

// RateLimiterConfig configures a per-client token bucket limiter.
type RateLimiterConfig struct {
	// RatePerMinute is the sustained number of requests allowed per client.
	RatePerMinute int
	// Burst is the number of requests a client may make at once. Defaults to
	// RatePerMinute when zero.
	Burst int
	// ExpiresIn is how long an idle client's bucket is kept.
	ExpiresIn time.Duration
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter limits requests per client IP.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	expires  time.Duration
	now      func() time.Time
}

// NewRateLimiter creates a RateLimiter from cfg.
func NewRateLimiter(cfg RateLimiterConfig) *RateLimiter {
	burst := cfg.Burst
	if burst <= 0 {
		burst = cfg.RatePerMinute
	}
	expires := cfg.ExpiresIn
	if expires <= 0 {
		expires = 3 * time.Minute
	}

	return &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Every(time.Minute / time.Duration(max(cfg.RatePerMinute, 1))),
		burst:    burst,
		expires:  expires,
		now:      time.Now,
	}
}

// Allow reports whether a request from key may proceed now. Buckets idle for
// longer than the expiry are dropped on each call.
func (l *RateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for k, v := range l.visitors {
		if now.Sub(v.lastSeen) > l.expires {
			delete(l.visitors, k)
		}
	}

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// Middleware rejects requests over the limit with 429 Too Many Requests.
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(clientKey(r)) {
			w.Header().Set("Retry-After", "60")
			shared.RespondWithErrorAndLog(w, r, http.StatusTooManyRequests, "Rate limit exceeded", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientKey identifies the caller by IP. chi's RealIP middleware has already
// rewritten RemoteAddr when the request came through a proxy.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
