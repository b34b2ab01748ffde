package service

import (
	"errors"
	"fmt"
	"sync"

	"lru-cache-api/internal/cache"
	"lru-cache-api/internal/database"
	"lru-cache-api/internal/realtime"
)

// ErrNotFound is returned when a key is in neither the cache nor the store.
var ErrNotFound = errors.New("key not found")

// Source tells where a looked-up value came from.
type Source string

const (
	SourceCache Source = "cache"
	SourceStore Source = "store"
)

// Publisher receives cache change events.
type Publisher interface {
	Publish(evt realtime.Event)
}

// RecordService fronts a RecordStore with a shared LRU cache.
// Reads go through the cache; writes go to the store and then the cache.
//
// mu orders every store access with the cache update that follows it, so a
// read-through fill can never resurrect a value a concurrent Delete removed.
// Events are published only after mu and the cache lock are released.
type RecordService struct {
	mu        sync.Mutex
	cache     *cache.Synchronized[string, string]
	store     *database.RecordStore
	publisher Publisher

	// evictions collected by OnEvict; guarded by mu
	pending []realtime.Event
}

// NewRecordService builds the cache with the given capacity. Evictions are
// reported to publisher, which may be nil.
func NewRecordService(capacity int, store *database.RecordStore, publisher Publisher) (*RecordService, error) {
	s := &RecordService{store: store, publisher: publisher}

	lru, err := cache.NewLruCacheWithOptions[string, string](capacity, cache.Options[string, string]{
		OnEvict: func(key, _ string) {
			// Put only runs under s.mu
			s.pending = append(s.pending, newEvent(realtime.EventEvict, key))
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create cache: %w", err)
	}
	s.cache = cache.NewSynchronized[string, string](lru)
	return s, nil
}

// Lookup returns the value for key, loading it from the store on a cache miss.
func (s *RecordService) Lookup(key string) (string, Source, error) {
	s.mu.Lock()
	value, source, err := s.lookupLocked(key)
	events := s.takePendingLocked()
	s.mu.Unlock()

	s.publishAll(events)
	return value, source, err
}

func (s *RecordService) lookupLocked(key string) (string, Source, error) {
	cached, err := s.cache.Get(key)
	if err != nil {
		return "", "", err
	}
	if value, err := cached.Get(); err == nil {
		return value, SourceCache, nil
	}

	rec, err := s.store.Find(key)
	if err != nil {
		if errors.Is(err, database.ErrRecordNotFound) {
			return "", "", ErrNotFound
		}
		return "", "", fmt.Errorf("load %q: %w", key, err)
	}
	if err := s.cache.Put(key, rec.Value); err != nil {
		return "", "", err
	}
	return rec.Value, SourceStore, nil
}

// Store writes value to the store and then to the cache.
func (s *RecordService) Store(key, value string) error {
	s.mu.Lock()
	err := s.storeLocked(key, value)
	if err == nil {
		s.pending = append(s.pending, newEvent(realtime.EventPut, key))
	}
	events := s.takePendingLocked()
	s.mu.Unlock()

	s.publishAll(events)
	return err
}

func (s *RecordService) storeLocked(key, value string) error {
	if _, err := s.store.Save(key, value); err != nil {
		return fmt.Errorf("save %q: %w", key, err)
	}
	return s.cache.Put(key, value)
}

// Delete removes key from the store and the cache.
func (s *RecordService) Delete(key string) error {
	s.mu.Lock()
	err := s.deleteLocked(key)
	if err == nil {
		s.pending = append(s.pending, newEvent(realtime.EventRemove, key))
	}
	events := s.takePendingLocked()
	s.mu.Unlock()

	s.publishAll(events)
	return err
}

func (s *RecordService) deleteLocked(key string) error {
	deleted, err := s.store.Delete(key)
	if err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	removed, err := s.cache.Remove(key)
	if err != nil {
		return err
	}
	if !deleted && !removed {
		return ErrNotFound
	}
	return nil
}

// Purge empties the cache. The store is left untouched.
func (s *RecordService) Purge() {
	s.mu.Lock()
	s.cache.Clear()
	s.pending = nil
	s.mu.Unlock()

	s.publishAll([]realtime.Event{newEvent(realtime.EventClear, "")})
}

// Snapshot returns every cached key and value.
func (s *RecordService) Snapshot() map[string]string {
	return s.cache.Snapshot()
}

// Keys returns cached keys from most to least recently used.
func (s *RecordService) Keys() []string {
	return s.cache.Keys()
}

// Stats returns the cache counters.
func (s *RecordService) Stats() cache.Stats {
	return s.cache.Stats()
}

// RecordCount returns the number of records in the store.
func (s *RecordService) RecordCount() (int64, error) {
	return s.store.Count()
}

func (s *RecordService) takePendingLocked() []realtime.Event {
	events := s.pending
	s.pending = nil
	return events
}

func (s *RecordService) publishAll(events []realtime.Event) {
	if s.publisher == nil {
		return
	}
	for _, evt := range events {
		s.publisher.Publish(evt)
	}
}

func newEvent(t realtime.EventType, key string) realtime.Event {
	return realtime.Event{Type: t, Key: key, Version: 1}
}
