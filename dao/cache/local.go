package cache

import (
	"context"
	"sync/atomic"
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
)

// purge every this many writes
const purgeEvery = 1024

type localEntry struct {
	value     []byte
	expiresAt time.Time
}

// LocalStore is an in-process Store backed by a sharded concurrent map.
// Each process keeps its own entries; nothing is shared between nodes.
type LocalStore struct {
	items  cmap.ConcurrentMap[string, localEntry]
	now    func() time.Time
	writes atomic.Uint64
}

func NewLocalStore() *LocalStore {
	return &LocalStore{items: cmap.New[localEntry](), now: time.Now}
}

// WithClock replaces the time source; used by tests to step past a TTL.
func (s *LocalStore) WithClock(now func() time.Time) *LocalStore {
	s.now = now
	return s
}

func (s *LocalStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	e, ok := s.items.Get(key)
	if !ok {
		return nil, false, nil
	}
	if s.expired(e) {
		s.items.RemoveCb(key, func(_ string, v localEntry, exists bool) bool {
			return exists && s.expired(v)
		})
		return nil, false, nil
	}
	return e.value, true, nil
}

func (s *LocalStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.items.Set(key, localEntry{value: value, expiresAt: s.now().Add(ttl)})
	if s.writes.Add(1)%purgeEvery == 0 {
		s.Purge()
	}
	return nil
}

// Purge drops every expired entry.
func (s *LocalStore) Purge() {
	for item := range s.items.IterBuffered() {
		if s.expired(item.Val) {
			s.items.RemoveCb(item.Key, func(_ string, v localEntry, exists bool) bool {
				return exists && s.expired(v)
			})
		}
	}
}

func (s *LocalStore) Len() int {
	return s.items.Count()
}

func (s *LocalStore) expired(e localEntry) bool {
	return !s.now().Before(e.expiresAt)
}
