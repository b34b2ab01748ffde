package service

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"lru-cache-api/internal/database"
	"lru-cache-api/internal/realtime"
	"lru-cache-api/internal/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestLookup_FillDoesNotResurrectConcurrentDelete(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	store := database.NewRecordStore(db)
	svc, err := NewRecordService(2, store, nil)
	require.NoError(t, err)
	_, err = store.Save("a", "1")
	require.NoError(t, err)

	// Start a Delete right after Lookup has read the row and before it fills the cache.
	var once sync.Once
	deleteDone := make(chan error, 1)
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:delete_during_fill", func(*gorm.DB) {
		once.Do(func() {
			go func() { deleteDone <- svc.Delete("a") }()
			select {
			case err := <-deleteDone:
				deleteDone <- err
			case <-time.After(50 * time.Millisecond):
			}
		})
	}))

	v, src, err := svc.Lookup("a")
	require.NoError(t, err)
	require.Equal(t, "1", v)
	require.Equal(t, SourceStore, src)

	select {
	case err := <-deleteDone:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("delete did not finish")
	}

	_, err = store.Find("a")
	require.ErrorIs(t, err, database.ErrRecordNotFound)
	_, _, err = svc.Lookup("a")
	require.ErrorIs(t, err, ErrNotFound)
	require.Empty(t, svc.Snapshot())
}

func TestStore_ConcurrentWritesKeepCacheAndStoreEqual(t *testing.T) {
	svc, store, _ := newService(t, 4)

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		value := string(rune('a' + i))
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- svc.Store("k", value)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	rec, err := store.Find("k")
	require.NoError(t, err)
	require.Equal(t, rec.Value, svc.Snapshot()["k"])
}

// blockingPublisher holds the first eviction event until released.
type blockingPublisher struct {
	fired   atomic.Bool
	entered chan struct{}
	release chan struct{}
}

func (p *blockingPublisher) Publish(evt realtime.Event) {
	if evt.Type != realtime.EventEvict {
		return
	}
	if !p.fired.CompareAndSwap(false, true) {
		return
	}
	close(p.entered)
	<-p.release
}

func TestSlowPublisherDoesNotBlockCache(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	pub := &blockingPublisher{entered: make(chan struct{}), release: make(chan struct{})}
	svc, err := NewRecordService(1, database.NewRecordStore(db), pub)
	require.NoError(t, err)

	require.NoError(t, svc.Store("a", "1"))

	storeDone := make(chan error, 1)
	go func() { storeDone <- svc.Store("b", "2") }()

	select {
	case <-pub.entered:
	case <-time.After(2 * time.Second):
		t.Fatal("eviction was not published")
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = svc.Stats()
		_ = svc.Snapshot()
		_, _, _ = svc.Lookup("b")
		_ = svc.Store("c", "3")
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cache operations blocked behind a slow publisher")
	}
	require.Equal(t, map[string]string{"c": "3"}, svc.Snapshot())

	close(pub.release)
	require.NoError(t, <-storeDone)
}
