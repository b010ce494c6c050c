// Package cache provides layered (memory + disk) caching for search
// responses so repeated claims do not re-hit the search engine.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the storage contract shared by the memory, disk, and layered
// implementations.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a stable cache key from a search query. The version tag
// invalidates old entries when the cached payload shape changes.
func Key(query string) string {
	hash := sha256.Sum256([]byte(query))
	return "factforge:v1:" + hex.EncodeToString(hash[:])
}
