// Package cache backs the model registry with a small layered cache:
// memory for the hot path, disk so discovered model IDs survive restarts.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a stable cache key for a named blob
func Key(name string) string {
	hash := sha256.Sum256([]byte(name))
	return "veridex:v1:" + hex.EncodeToString(hash[:])
}
