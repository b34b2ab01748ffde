// Package cache implements a fixed-capacity, in-memory key-value cache with
// least-recently-used eviction.
//
// LruCache pairs a map index with a doubly linked recency list so Put, Get,
// Remove and eviction are all O(1). Lookups report presence through
// optional.Optional rather than a zero value.
//
// LruCache is single-threaded. Synchronized adds a mutex boundary around each
// operation for callers that share a cache between goroutines.
package cache
