package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/loukach/infocar-eurotax-mapper/internal/server/response"
)

// RateLimiter limits requests per client IP over a fixed one-minute
// window. State for idle clients is dropped by a background sweep.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientWindow
	limit   int
	window  time.Duration
	logger  *zerolog.Logger
}

// clientWindow is the request count for one IP in the current window.
type clientWindow struct {
	count   int
	started time.Time
}

// NewRateLimiter creates a rate limiter allowing limit requests per
// minute per IP.
func NewRateLimiter(limit int, logger *zerolog.Logger) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*clientWindow),
		limit:   limit,
		window:  time.Minute,
		logger:  logger,
	}
	go rl.sweep()
	return rl
}

// sweep drops clients that have been idle for several windows.
func (rl *RateLimiter) sweep() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-10 * rl.window)
		rl.mu.Lock()
		for ip, c := range rl.clients {
			if c.started.Before(cutoff) {
				delete(rl.clients, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// allow counts a request from ip and reports whether it fits in the
// current window.
func (rl *RateLimiter) allow(ip string) bool {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	c, ok := rl.clients[ip]
	if !ok || now.Sub(c.started) > rl.window {
		rl.clients[ip] = &clientWindow{count: 1, started: now}
		return true
	}

	c.count++
	return c.count <= rl.limit
}

// RateLimit middleware rejects requests over the per-IP limit with 429.
func RateLimit(rl *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			if !rl.allow(ip) {
				rl.logger.Warn().
					Str("ip", ip).
					Str("path", r.URL.Path).
					Msg("rate limit exceeded")
				response.JSON(w, http.StatusTooManyRequests, response.Fail(
					"RATE_LIMITED",
					"Rate limit exceeded",
					"Too many requests. Please try again later.",
				))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP picks the first X-Forwarded-For hop when present and falls
// back to the connection address with the port stripped.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if i := strings.IndexByte(forwarded, ','); i >= 0 {
			forwarded = forwarded[:i]
		}
		return strings.TrimSpace(forwarded)
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
