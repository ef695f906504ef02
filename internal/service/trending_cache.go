package service

import (
	"sync"
	"time"
)

type TrendingCache struct {
	mu       sync.RWMutex
	queries  []string
	cachedAt time.Time
	ttl      time.Duration
}

func NewTrendingCache(ttl time.Duration) *TrendingCache {
	return &TrendingCache{ttl: ttl}
}

func (c *TrendingCache) Get() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.queries == nil || time.Since(c.cachedAt) > c.ttl {
		return nil
	}
	return c.queries
}

func (c *TrendingCache) Set(queries []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.queries = queries
	c.cachedAt = time.Now()
}
