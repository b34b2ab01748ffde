package cache

import "lru-cache-api/internal/optional"

// Cache defines a capacity-bounded key-value cache with LRU eviction.
// Implementations may or may not be goroutine-safe; see Synchronized.
type Cache[K comparable, V any] interface {
	// Put stores value under key and marks key most recently used.
	// Exceeding capacity evicts the least recently used entry.
	Put(key K, value V) error

	// Get returns the value for key, or an empty Optional on a miss.
	// A hit marks key most recently used.
	Get(key K) (optional.Optional[V], error)

	// Remove deletes key and reports whether it was present.
	Remove(key K) (bool, error)

	// Contains reports whether key is stored, without touching recency.
	Contains(key K) bool

	// Clear removes all entries.
	Clear()

	// Size returns the number of stored entries.
	Size() int

	// Capacity returns the maximum number of entries.
	Capacity() int

	// Keys returns the stored keys from most to least recently used.
	Keys() []K

	// Snapshot returns a new map of every stored key to its value.
	Snapshot() map[K]V

	// Stats returns hit, miss and eviction counters.
	Stats() Stats
}

// Stats is a point-in-time view of cache counters.
type Stats struct {
	Hits      uint64 `json:"hits"`
	Misses    uint64 `json:"misses"`
	Evictions uint64 `json:"evictions"`
	Size      int    `json:"size"`
	Capacity  int    `json:"capacity"`
}
