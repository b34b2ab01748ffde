package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSynchronized_DelegatesToInner(t *testing.T) {
	inner, err := NewLruCache[string, string](2)
	require.NoError(t, err)
	c := NewSynchronized[string, string](inner)

	require.NoError(t, c.Put("a", "A"))
	require.NoError(t, c.Put("b", "B"))
	got, err := c.Get("a")
	require.NoError(t, err)
	require.True(t, got.IsPresent())

	require.NoError(t, c.Put("c", "C"))
	require.False(t, c.Contains("b"))
	require.Equal(t, []string{"c", "a"}, c.Keys())
	require.Equal(t, map[string]string{"a": "A", "c": "C"}, c.Snapshot())
	require.Equal(t, 2, c.Capacity())

	removed, err := c.Remove("a")
	require.NoError(t, err)
	require.True(t, removed)
	require.Equal(t, 1, c.Size())

	c.Clear()
	require.Equal(t, 0, c.Size())
	require.Equal(t, uint64(1), c.Stats().Evictions)
}

func TestSynchronized_ConcurrentAccess(t *testing.T) {
	const (
		workers  = 16
		rounds   = 200
		capacity = 32
	)
	inner, err := NewLruCache[int, int](capacity)
	require.NoError(t, err)
	c := NewSynchronized[int, int](inner)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		w := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			for r := 0; r < rounds; r++ {
				key := (w*rounds + r) % (capacity * 2)
				_ = c.Put(key, r)
				_, _ = c.Get(key)
				if r%7 == 0 {
					_, _ = c.Remove(key)
				}
				_ = c.Snapshot()
			}
		}()
	}
	wg.Wait()

	require.LessOrEqual(t, c.Size(), capacity)
	requireConsistent(t, inner)
}
