package ratelim

import (
	"net"
	"net/http"
	"sync"
	"time"

	"vibeholidays/utils"

	"github.com/julienschmidt/httprouter"
	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per client IP. State is held in
// process memory, so the ceiling applies per server instance.
type RateLimiter struct {
	visitors map[string]*rate.Limiter
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
}

// NewRateLimiter is the general limiter for public endpoints.
func NewRateLimiter() *RateLimiter {
	return newLimiter(rate.Every(time.Minute/60), 60)
}

// NewAuthRateLimiter is deliberately tighter to slow credential guessing.
func NewAuthRateLimiter() *RateLimiter {
	return newLimiter(rate.Every(time.Minute/5), 5)
}

func newLimiter(limit rate.Limit, burst int) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*rate.Limiter),
		limit:    limit,
		burst:    burst,
	}
}

// Get or create a rate limiter for an IP
func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if limiter, exists := rl.visitors[ip]; exists {
		return limiter
	}

	limiter := rate.NewLimiter(rl.limit, rl.burst)
	rl.visitors[ip] = limiter

	// Clean up old IPs after 10 minutes
	go func() {
		time.Sleep(10 * time.Minute)
		rl.mu.Lock()
		delete(rl.visitors, ip)
		rl.mu.Unlock()
	}()

	return limiter
}

// Limit enforces the per-IP ceiling. Only source IP and timing matter;
// request content is never inspected.
func (rl *RateLimiter) Limit(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		limiter := rl.getLimiter(clientIP(r))

		if !limiter.Allow() {
			utils.RespondWithError(w, http.StatusTooManyRequests, "Too many requests, please try again later")
			return
		}

		next(w, r, ps)
	}
}

// clientIP strips the port from RemoteAddr so one client maps to one
// bucket regardless of ephemeral ports.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
