package cache

import "lru-cache-api/internal/optional"

// entry is one stored key/value pair and its position in recency order.
// newer and older are traversal links only; the index map owns the entry.
type entry[K comparable, V any] struct {
	key   K
	value V
	newer *entry[K, V]
	older *entry[K, V]
}

// Options controls construction of an LruCache.
type Options[K comparable, V any] struct {
	// OnEvict, if set, is called with each entry dropped to make room for a new key.
	// It runs synchronously inside Put and must not call back into the cache.
	OnEvict func(key K, value V)
}

// LruCache is a fixed-capacity map that evicts the least recently used entry.
// It is NOT goroutine-safe; wrap it with NewSynchronized for concurrent use.
type LruCache[K comparable, V any] struct {
	capacity int
	index    map[K]*entry[K, V]

	mostRecent  *entry[K, V]
	leastRecent *entry[K, V]

	onEvict func(K, V)

	hits      uint64
	misses    uint64
	evictions uint64
}

// NewLruCache constructs an empty cache holding at most capacity entries.
func NewLruCache[K comparable, V any](capacity int) (*LruCache[K, V], error) {
	return NewLruCacheWithOptions[K, V](capacity, Options[K, V]{})
}

// NewLruCacheWithOptions is NewLruCache with an eviction callback.
func NewLruCacheWithOptions[K comparable, V any](capacity int, opts Options[K, V]) (*LruCache[K, V], error) {
	if capacity <= 0 {
		return nil, invalidArgument("capacity must be positive")
	}
	return &LruCache[K, V]{
		capacity: capacity,
		index:    make(map[K]*entry[K, V], capacity),
		onEvict:  opts.OnEvict,
	}, nil
}

// Put implements Cache.Put.
func (c *LruCache[K, V]) Put(key K, value V) error {
	if err := checkValue(key, "key"); err != nil {
		return err
	}
	if err := checkValue(value, "value"); err != nil {
		return err
	}

	if e, ok := c.index[key]; ok {
		e.value = value
		c.touch(e)
		return nil
	}

	e := &entry[K, V]{key: key, value: value}
	c.index[key] = e
	c.pushMostRecent(e)

	if len(c.index) > c.capacity {
		c.evictLeastRecent()
	}
	return nil
}

// Get implements Cache.Get.
func (c *LruCache[K, V]) Get(key K) (optional.Optional[V], error) {
	if err := checkValue(key, "key"); err != nil {
		return optional.Empty[V](), err
	}

	e, ok := c.index[key]
	if !ok {
		c.misses++
		return optional.Empty[V](), nil
	}
	c.hits++
	c.touch(e)
	return optional.Of(e.value), nil
}

// Remove implements Cache.Remove.
func (c *LruCache[K, V]) Remove(key K) (bool, error) {
	if err := checkValue(key, "key"); err != nil {
		return false, err
	}

	e, ok := c.index[key]
	if !ok {
		return false, nil
	}
	delete(c.index, key)
	c.unlink(e)
	return true, nil
}

// Contains implements Cache.Contains.
func (c *LruCache[K, V]) Contains(key K) bool {
	_, ok := c.index[key]
	return ok
}

// Clear implements Cache.Clear.
func (c *LruCache[K, V]) Clear() {
	c.index = make(map[K]*entry[K, V], c.capacity)
	c.mostRecent = nil
	c.leastRecent = nil
}

// Size implements Cache.Size.
func (c *LruCache[K, V]) Size() int {
	return len(c.index)
}

// Capacity implements Cache.Capacity.
func (c *LruCache[K, V]) Capacity() int {
	return c.capacity
}

// Keys implements Cache.Keys.
func (c *LruCache[K, V]) Keys() []K {
	out := make([]K, 0, len(c.index))
	for e := c.mostRecent; e != nil; e = e.older {
		out = append(out, e.key)
	}
	return out
}

// Snapshot implements Cache.Snapshot.
func (c *LruCache[K, V]) Snapshot() map[K]V {
	out := make(map[K]V, len(c.index))
	for k, e := range c.index {
		out[k] = e.value
	}
	return out
}

// Stats implements Cache.Stats.
func (c *LruCache[K, V]) Stats() Stats {
	return Stats{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Size:      len(c.index),
		Capacity:  c.capacity,
	}
}

// touch moves e to the most recent end.
func (c *LruCache[K, V]) touch(e *entry[K, V]) {
	if e == c.mostRecent {
		return
	}
	c.unlink(e)
	c.pushMostRecent(e)
}

func (c *LruCache[K, V]) evictLeastRecent() {
	victim := c.leastRecent
	if victim == nil {
		return
	}
	delete(c.index, victim.key)
	c.unlink(victim)
	c.evictions++
	if c.onEvict != nil {
		c.onEvict(victim.key, victim.value)
	}
}

// unlink detaches e from the recency list, fixing both ends if needed.
func (c *LruCache[K, V]) unlink(e *entry[K, V]) {
	if e.older != nil {
		e.older.newer = e.newer
	} else {
		c.leastRecent = e.newer
	}
	if e.newer != nil {
		e.newer.older = e.older
	} else {
		c.mostRecent = e.older
	}
	e.newer, e.older = nil, nil
}

// pushMostRecent attaches an unlinked e as the new most recent entry.
func (c *LruCache[K, V]) pushMostRecent(e *entry[K, V]) {
	e.older = c.mostRecent
	if c.mostRecent != nil {
		c.mostRecent.newer = e
	}
	c.mostRecent = e
	if c.leastRecent == nil {
		c.leastRecent = e
	}
}

// Ensure LruCache implements Cache at compile time.
var _ Cache[string, any] = (*LruCache[string, any])(nil)
