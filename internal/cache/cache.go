package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching oracle responses
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a cache key from arbitrary input (e.g., clause text plus
// jurisdiction code). The version prefix invalidates old entries when the
// opinion format changes.
func Key(input string) string {
	hash := sha256.Sum256([]byte(input))
	return "leaselint:v1:" + hex.EncodeToString(hash[:])
}
