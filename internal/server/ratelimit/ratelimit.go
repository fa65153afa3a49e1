// Package ratelimit provides token-bucket rate limiting for the scoring API.
package ratelimit

import (
	"sync"
	"time"
)

// TokenBucket allows a number of requests per window, with tokens
// refilling at a steady rate.
type TokenBucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// allow checks if a token is available and consumes it if so
func (tb *TokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill)
	tb.tokens = min(float64(tb.capacity), tb.tokens+elapsed.Seconds()*tb.refillRate)
	tb.lastRefill = now

	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}

// Limiter manages per-client token buckets keyed by client and endpoint
type Limiter struct {
	mu         sync.Mutex
	buckets    map[string]*TokenBucket
	lastAccess map[string]time.Time
	config     *Config
}

// NewLimiter creates a limiter with the given configuration
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = DefaultConfig()
	}
	return &Limiter{
		buckets:    make(map[string]*TokenBucket),
		lastAccess: make(map[string]time.Time),
		config:     config,
	}
}

// Allow reports whether a request from the client to the endpoint may
// proceed. Unknown endpoints use the default limit; the health check is
// never limited.
func (l *Limiter) Allow(clientID, path string) bool {
	if !l.config.Enabled || path == "/health" {
		return true
	}

	endpoint := l.config.match(path)
	if endpoint.Limit <= 0 {
		return true
	}

	key := clientID + ":" + path
	bucket := l.getBucket(key, endpoint)
	return bucket.allow()
}

func (l *Limiter) getBucket(key string, endpoint EndpointConfig) *TokenBucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.lastAccess[key] = time.Now()
	l.sweepLocked()

	if bucket, ok := l.buckets[key]; ok {
		return bucket
	}

	burst := endpoint.Burst
	if burst <= 0 {
		burst = endpoint.Limit
	}
	refillRate := float64(endpoint.Limit) / endpoint.Window.Seconds()
	bucket := newTokenBucket(burst, refillRate)
	l.buckets[key] = bucket
	return bucket
}

// sweepLocked drops buckets idle past the cleanup interval; caller holds l.mu
func (l *Limiter) sweepLocked() {
	if l.config.CleanupInterval <= 0 || len(l.buckets) < 1024 {
		return
	}
	cutoff := time.Now().Add(-l.config.CleanupInterval)
	for key, last := range l.lastAccess {
		if last.Before(cutoff) {
			delete(l.buckets, key)
			delete(l.lastAccess, key)
		}
	}
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
