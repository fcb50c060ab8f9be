// Package cache provides a bounded in-memory LRU response cache with TTLs
// and ETag support.
package cache

import (
	"crypto/md5"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru"
)

// TTLs by response kind. Derived data only changes on a dataset reload,
// which purges the cache, so these mostly bound client-side staleness.
const (
	TTLDerived = 1 * time.Hour
	TTLEmbeds  = 24 * time.Hour
)

type entry struct {
	data      []byte
	etag      string
	expiresAt time.Time
}

// Cache is a thread-safe LRU cache of serialized responses.
type Cache struct {
	lru     *lru.Cache
	size    int
	enabled bool

	hits   atomic.Int64
	misses atomic.Int64
}

// New creates a cache holding at most size entries. Pass enabled=false to
// create a no-op cache.
func New(enabled bool, size int) (*Cache, error) {
	l, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("create lru cache: %w", err)
	}
	return &Cache{lru: l, size: size, enabled: enabled}, nil
}

// Get retrieves a cached value. Returns data, etag, and whether the entry was found.
func (c *Cache) Get(key string) (data []byte, etag string, ok bool) {
	if !c.enabled {
		return nil, "", false
	}
	v, found := c.lru.Get(key)
	if !found {
		c.misses.Add(1)
		return nil, "", false
	}
	e := v.(entry)
	if time.Now().After(e.expiresAt) {
		c.lru.Remove(key)
		c.misses.Add(1)
		return nil, "", false
	}
	c.hits.Add(1)
	return e.data, e.etag, true
}

// Set stores a value with a TTL and returns its ETag.
func (c *Cache) Set(key string, data []byte, ttl time.Duration) string {
	etag := ComputeETag(data)
	if !c.enabled {
		return etag
	}
	c.lru.Add(key, entry{
		data:      data,
		etag:      etag,
		expiresAt: time.Now().Add(ttl),
	})
	return etag
}

// Purge drops every entry.
func (c *Cache) Purge() {
	c.lru.Purge()
}

// Stats returns cache statistics.
func (c *Cache) Stats() map[string]interface{} {
	return map[string]interface{}{
		"enabled":  c.enabled,
		"keys":     c.lru.Len(),
		"capacity": c.size,
		"hits":     c.hits.Load(),
		"misses":   c.misses.Load(),
	}
}

// ComputeETag generates a weak ETag from response data using MD5.
func ComputeETag(data []byte) string {
	hash := md5.Sum(data)
	return fmt.Sprintf(`W/"%x"`, hash[:8])
}

// CheckETagMatch checks if an If-None-Match header matches the current ETag.
// The header may list several tags.
func CheckETagMatch(ifNoneMatch, etag string) bool {
	if ifNoneMatch == "" {
		return false
	}
	for _, candidate := range strings.Split(ifNoneMatch, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || candidate == etag {
			return true
		}
	}
	return false
}
