// Rate limiter for endpoints that allocate server state (session creation).
// Fixed-window counters per client, pruned lazily on use.
package api

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// RateLimiter caps how many requests a client may make per window.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientWindow
	limit   int
	window  time.Duration
	swept   time.Time
}

type clientWindow struct {
	count int
	start time.Time
}

// NewRateLimiter creates a limiter allowing limit requests per window.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		clients: make(map[string]*clientWindow),
		limit:   limit,
		window:  window,
		swept:   time.Now(),
	}
}

// Allow reports whether the client is within its budget, counting the request
// when it is. Expired windows restart on the next request.
func (rl *RateLimiter) Allow(client string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	rl.sweep(now)

	cw, ok := rl.clients[client]
	if !ok || now.Sub(cw.start) >= rl.window {
		rl.clients[client] = &clientWindow{count: 1, start: now}
		return true
	}
	if cw.count < rl.limit {
		cw.count++
		return true
	}
	return false
}

// RetryAfter returns whole seconds until the client's window restarts.
func (rl *RateLimiter) RetryAfter(client string) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cw, ok := rl.clients[client]
	if !ok {
		return 0
	}
	remaining := rl.window - time.Since(cw.start)
	if remaining <= 0 {
		return 0
	}
	return int(remaining.Seconds()) + 1
}

// sweep drops expired windows. Runs under rl.mu, at most once per window, so
// the map stays bounded without a background goroutine.
func (rl *RateLimiter) sweep(now time.Time) {
	if now.Sub(rl.swept) < rl.window {
		return
	}
	for client, cw := range rl.clients {
		if now.Sub(cw.start) >= rl.window {
			delete(rl.clients, client)
		}
	}
	rl.swept = now
}

// RateLimitMiddleware wraps a handler with rate limiting. Returns 429 when
// the limit is exceeded.
func RateLimitMiddleware(rl *RateLimiter, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !rl.Allow(ip) {
			w.Header().Set("Retry-After", strconv.Itoa(rl.RetryAfter(ip)))
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next(w, r)
	}
}

// clientIP strips the port from RemoteAddr and honors X-Forwarded-For for
// proxied requests.
func clientIP(r *http.Request) string {
	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx >= 0 {
		ip = ip[:idx]
	}
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ip = xff
		if idx := strings.Index(xff, ","); idx >= 0 {
			ip = xff[:idx]
		}
	}
	return ip
}
