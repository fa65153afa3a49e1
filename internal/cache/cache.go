// Package cache provides a TTL cache for match results. The cache is a
// performance optimization owned by the engine's caller, never a source
// of truth: entries expire quickly and are invalidated explicitly when a
// profile or job changes.
package cache

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/jobmatch/internal/types"
)

// DefaultTTL keeps cached results fresh for minutes, not hours
const DefaultTTL = 5 * time.Minute

// Key identifies one cached result. Versions are part of the key so a
// profile or job update naturally misses stale entries even before
// explicit invalidation runs.
type Key struct {
	CandidateID    uuid.UUID
	JobID          uuid.UUID
	ProfileVersion int64
	JobVersion     int64
}

type entry struct {
	result  *types.MatchResult
	expires time.Time
}

// ResultCache is a concurrency-safe TTL cache for match results
type ResultCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[Key]entry
	now     func() time.Time
}

// New creates a cache with the given TTL; a non-positive TTL uses the default
func New(ttl time.Duration) *ResultCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ResultCache{
		ttl:     ttl,
		entries: make(map[Key]entry),
		now:     time.Now,
	}
}

// Get returns a cached result if present and unexpired
func (c *ResultCache) Get(key Key) (*types.MatchResult, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.now().After(e.expires) {
		return nil, false
	}
	return e.result, true
}

// Put stores a result under the key, also sweeping any expired entries
func (c *ResultCache) Put(key Key, result *types.MatchResult) {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	for k, e := range c.entries {
		if now.After(e.expires) {
			delete(c.entries, k)
		}
	}
	c.entries[key] = entry{result: result, expires: now.Add(c.ttl)}
}

// InvalidateCandidate drops every entry for the candidate. Called by the
// owner when a profile mutation lands.
func (c *ResultCache) InvalidateCandidate(candidateID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if k.CandidateID == candidateID {
			delete(c.entries, k)
		}
	}
}

// InvalidateJob drops every entry for the job
func (c *ResultCache) InvalidateJob(jobID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if k.JobID == jobID {
			delete(c.entries, k)
		}
	}
}

// Len reports the number of entries currently held, expired or not
func (c *ResultCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
