package store

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Store is the keyword-keyed record store the report assembler persists
// analysis runs into. Implementations must tolerate concurrent readers.
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives the storage key for a product keyword
func Key(keyword string) string {
	hash := sha256.Sum256([]byte(keyword))
	return "marketlens:v1:" + hex.EncodeToString(hash[:])
}
