package cache

import (
	"sync"

	"lru-cache-api/internal/optional"
)

// Synchronized guards every operation of an inner Cache with a RWMutex.
// Get takes the write lock because a hit reorders the recency list.
type Synchronized[K comparable, V any] struct {
	mu    sync.RWMutex
	inner Cache[K, V]
}

// NewSynchronized wraps inner. The caller must not use inner directly afterwards.
func NewSynchronized[K comparable, V any](inner Cache[K, V]) *Synchronized[K, V] {
	return &Synchronized[K, V]{inner: inner}
}

func (s *Synchronized[K, V]) lockR() func() {
	s.mu.RLock()
	return s.mu.RUnlock
}

func (s *Synchronized[K, V]) lockW() func() {
	s.mu.Lock()
	return s.mu.Unlock
}

// Put implements Cache.Put.
func (s *Synchronized[K, V]) Put(key K, value V) error {
	unlock := s.lockW()
	defer unlock()
	return s.inner.Put(key, value)
}

// Get implements Cache.Get.
func (s *Synchronized[K, V]) Get(key K) (optional.Optional[V], error) {
	unlock := s.lockW()
	defer unlock()
	return s.inner.Get(key)
}

// Remove implements Cache.Remove.
func (s *Synchronized[K, V]) Remove(key K) (bool, error) {
	unlock := s.lockW()
	defer unlock()
	return s.inner.Remove(key)
}

// Contains implements Cache.Contains.
func (s *Synchronized[K, V]) Contains(key K) bool {
	unlock := s.lockR()
	defer unlock()
	return s.inner.Contains(key)
}

// Clear implements Cache.Clear.
func (s *Synchronized[K, V]) Clear() {
	unlock := s.lockW()
	defer unlock()
	s.inner.Clear()
}

// Size implements Cache.Size.
func (s *Synchronized[K, V]) Size() int {
	unlock := s.lockR()
	defer unlock()
	return s.inner.Size()
}

// Capacity implements Cache.Capacity.
func (s *Synchronized[K, V]) Capacity() int {
	return s.inner.Capacity()
}

// Keys implements Cache.Keys.
func (s *Synchronized[K, V]) Keys() []K {
	unlock := s.lockR()
	defer unlock()
	return s.inner.Keys()
}

// Snapshot implements Cache.Snapshot.
func (s *Synchronized[K, V]) Snapshot() map[K]V {
	unlock := s.lockR()
	defer unlock()
	return s.inner.Snapshot()
}

// Stats implements Cache.Stats.
func (s *Synchronized[K, V]) Stats() Stats {
	unlock := s.lockR()
	defer unlock()
	return s.inner.Stats()
}

var _ Cache[string, any] = (*Synchronized[string, any])(nil)
