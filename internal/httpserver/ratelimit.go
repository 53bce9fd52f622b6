// internal/httpserver/ratelimit.go
//
// Fixed-window rate limiting for credential endpoints, keyed by
// action + client IP. Windows reset lazily on the next attempt after expiry;
// stale entries are swept opportunistically so the map stays bounded.

package httpserver

import (
	"net"
	"net/http"
	"sync"
	"time"
)

type attemptWindow struct {
	count int
	start time.Time
}

type rateLimiter struct {
	mu       sync.Mutex
	max      int
	window   time.Duration
	attempts map[string]*attemptWindow
}

func newRateLimiter(max int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		max:      max,
		window:   window,
		attempts: make(map[string]*attemptWindow),
	}
}

// allow records one attempt for key and reports whether it is within budget.
func (rl *rateLimiter) allow(key string) bool {
	now := time.Now()
	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Opportunistic sweep keeps the map from growing unbounded.
	if len(rl.attempts) > 10_000 {
		for k, w := range rl.attempts {
			if now.Sub(w.start) > rl.window {
				delete(rl.attempts, k)
			}
		}
	}

	w, ok := rl.attempts[key]
	if !ok || now.Sub(w.start) > rl.window {
		rl.attempts[key] = &attemptWindow{count: 1, start: now}
		return true
	}
	w.count++
	return w.count <= rl.max
}

// byIP wraps a handler, rejecting clients over budget with HTTP 429.
// RemoteAddr is already normalized by chi's RealIP middleware.
func (rl *rateLimiter) byIP(action string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := r.RemoteAddr
			if host, _, err := net.SplitHostPort(ip); err == nil {
				ip = host
			}
			if !rl.allow(action + "|" + ip) {
				http.Error(w, `{"error":"too_many_attempts","retryAfterSeconds":900}`, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
