package thread

import (
	"context"
	"time"

	"github.com/fallacyscope/fallacyscope/internal/model"
	gocache "github.com/patrickmn/go-cache"
)

// CachedRegistry wraps a Registry with a short-TTL memory cache, so a
// synchronous and a streaming call for the same thread URL within the
// window share one fetch
type CachedRegistry struct {
	registry *Registry
	cache    *gocache.Cache
}

// NewCachedRegistry creates a caching wrapper around the registry
func NewCachedRegistry(registry *Registry, ttl time.Duration) *CachedRegistry {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachedRegistry{
		registry: registry,
		cache:    gocache.New(ttl, 2*ttl),
	}
}

// Fetch returns a cached thread for the URL or fetches and stores it
func (c *CachedRegistry) Fetch(ctx context.Context, url string) (*model.Thread, error) {
	if cached, found := c.cache.Get(url); found {
		return cached.(*model.Thread), nil
	}

	thread, err := c.registry.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	c.cache.Set(url, thread, gocache.DefaultExpiration)
	return thread, nil
}
