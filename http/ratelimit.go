package http

import (
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// ClientLimiter rate-limits requests per client IP using token buckets.
// Each client gets its own limiter, so one noisy client cannot starve the
// others.
type ClientLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewClientLimiter creates a ClientLimiter with the given per-client
// requests-per-second limit. Burst equals the ceiling of rps, minimum 1.
func NewClientLimiter(rps float64) *ClientLimiter {
	return &ClientLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

func (l *ClientLimiter) limiter(client string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	limiter, ok := l.limiters[client]
	if !ok {
		burst := int(l.rps)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(l.rps), burst)
		l.limiters[client] = limiter
	}
	return limiter
}

// Allow reports whether a request from client is within its rate limit.
func (l *ClientLimiter) Allow(client string) bool {
	return l.limiter(client).Allow()
}

// Middleware wraps next, rejecting over-limit requests with 429.
func (l *ClientLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(clientIP(r)) {
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
