package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Cache defines the interface for byte-value caching.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a cache key from the given parts. Parts are joined with an
// unlikely separator before hashing so ("ab","c") and ("a","bc") differ.
func Key(parts ...string) string {
	joined := strings.Join(parts, "\x1f")
	hash := sha256.Sum256([]byte(joined))
	return "ontoclass:v1:" + hex.EncodeToString(hash[:])
}
