// Package cache provides result caches for computed risk assessments.
// Two tiers are available: an in-process LRU for standalone operation
// and a Redis-backed cache for deployments with shared state.
package cache

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/claus-risk-server/internal/domain"
)

type memoryEntry struct {
	assessment *domain.RiskAssessment
	expiresAt  time.Time
}

// MemoryCache is an in-process LRU cache with per-entry TTL.
type MemoryCache struct {
	entries    *lru.Cache[string, memoryEntry]
	defaultTTL time.Duration
}

// NewMemoryCache creates a memory cache holding at most maxEntries
// assessments, each expiring after ttl.
func NewMemoryCache(maxEntries int, ttl time.Duration) (*MemoryCache, error) {
	if maxEntries <= 0 {
		maxEntries = 1000
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	entries, err := lru.New[string, memoryEntry](maxEntries)
	if err != nil {
		return nil, fmt.Errorf("failed to create LRU cache: %w", err)
	}

	return &MemoryCache{
		entries:    entries,
		defaultTTL: ttl,
	}, nil
}

// Get implements domain.ResultCache.
func (c *MemoryCache) Get(_ context.Context, key string) (*domain.RiskAssessment, bool) {
	entry, ok := c.entries.Get(key)
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		c.entries.Remove(key)
		return nil, false
	}
	return entry.assessment, true
}

// Set implements domain.ResultCache.
func (c *MemoryCache) Set(_ context.Context, key string, assessment *domain.RiskAssessment) error {
	c.entries.Add(key, memoryEntry{
		assessment: assessment,
		expiresAt:  time.Now().Add(c.defaultTTL),
	})
	return nil
}

// Len returns the number of cached entries, expired or not.
func (c *MemoryCache) Len() int {
	return c.entries.Len()
}
