package worker

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// Limiter implements per-caller-address rate limiting. Each address gets its
// own token bucket, created lazily with the default rate and burst.
type Limiter struct {
	limiters     map[string]*rate.Limiter
	mu           sync.RWMutex
	defaultRate  rate.Limit
	defaultBurst int
}

// NewLimiter creates a new rate limiter
func NewLimiter(requestsPerSecond float64, burst int) *Limiter {
	if burst <= 0 {
		burst = 1
	}

	return &Limiter{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  rate.Limit(requestsPerSecond),
		defaultBurst: burst,
	}
}

// Allow checks if a request from the address is allowed without waiting
func (l *Limiter) Allow(addr string) bool {
	return l.getLimiter(addr).Allow()
}

// Wait blocks until the address is cleared to proceed or the context ends
func (l *Limiter) Wait(ctx context.Context, addr string) error {
	return l.getLimiter(addr).Wait(ctx)
}

// getLimiter returns the rate limiter for an address
func (l *Limiter) getLimiter(addr string) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[addr]
	l.mu.RUnlock()

	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Double-check after acquiring write lock
	if limiter, exists := l.limiters[addr]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(l.defaultRate, l.defaultBurst)
	l.limiters[addr] = limiter

	return limiter
}

// SetRate sets a custom rate limit for a specific address
func (l *Limiter) SetRate(addr string, requestsPerSecond float64, burst int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if burst <= 0 {
		burst = l.defaultBurst
	}

	l.limiters[addr] = rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
}
