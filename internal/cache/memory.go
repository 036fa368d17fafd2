package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache is the hot layer for registry blobs: the model table is
// read on every checker build, so between discovery runs lookups never
// touch disk.
type MemoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache creates a memory cache. defaultTTL applies to entries
// stored with a zero ttl; cleanupInterval controls how often expired
// entries are swept.
func NewMemoryCache(defaultTTL, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{store: gocache.New(defaultTTL, cleanupInterval)}
}

// Get returns the blob for key, if present and unexpired
func (c *MemoryCache) Get(key string) ([]byte, bool) {
	val, found := c.store.Get(key)
	if !found {
		return nil, false
	}

	data, ok := val.([]byte)
	if !ok {
		// Only blobs enter through Set; anything else is dropped
		c.store.Delete(key)
		return nil, false
	}
	return data, true
}

// Set stores a blob. A zero ttl selects the cache default.
func (c *MemoryCache) Set(key string, value []byte, ttl time.Duration) error {
	c.store.Set(key, value, ttl)
	return nil
}

// Delete removes one entry
func (c *MemoryCache) Delete(key string) error {
	c.store.Delete(key)
	return nil
}

// Clear drops every entry
func (c *MemoryCache) Clear() error {
	c.store.Flush()
	return nil
}
