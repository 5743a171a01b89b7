package moderate

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// CacheKey hashes the exact text pair to a fixed-size key. The news text is
// length-prefixed so two distinct pairs can never produce the same encoded
// string. No normalization: differing whitespace or case is a different key.
func CacheKey(news, comment string) string {
	sum := sha1.Sum([]byte(fmt.Sprintf("%d:%s%s", len(news), news, comment)))
	return hex.EncodeToString(sum[:])
}

// ResultCache memoizes moderation results keyed by the exact (news, comment)
// text pair. Bounded capacity with least-recently-used eviction. Concurrent
// misses on the same key share one computation via singleflight, so the
// backing pipeline runs at most once per key at a time.
type ResultCache struct {
	entries *lru.Cache[string, string]
	group   singleflight.Group
}

// NewResultCache creates a cache with a fixed maximum entry count
func NewResultCache(capacity int) (*ResultCache, error) {
	if capacity <= 0 {
		capacity = 1
	}
	entries, err := lru.New[string, string](capacity)
	if err != nil {
		return nil, fmt.Errorf("create LRU: %w", err)
	}
	return &ResultCache{entries: entries}, nil
}

// GetOrCompute returns the cached result for the pair, or invokes compute,
// stores the result, and returns it. A successful lookup refreshes recency
// and never re-invokes compute.
func (c *ResultCache) GetOrCompute(news, comment string, compute func() (string, error)) (string, error) {
	key := CacheKey(news, comment)

	if value, ok := c.entries.Get(key); ok {
		return value, nil
	}

	value, err, _ := c.group.Do(key, func() (interface{}, error) {
		// Re-check under singleflight: a concurrent caller may have stored
		// the value between our lookup and this computation.
		if value, ok := c.entries.Get(key); ok {
			return value, nil
		}
		result, err := compute()
		if err != nil {
			return "", err
		}
		c.entries.Add(key, result)
		return result, nil
	})
	if err != nil {
		return "", err
	}
	return value.(string), nil
}

// Len returns the current number of cached entries
func (c *ResultCache) Len() int {
	return c.entries.Len()
}
