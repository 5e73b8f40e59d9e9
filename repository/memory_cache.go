package repository

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

var _ CacheRepository = (*MemoryCache)(nil)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryCache is an in-process CacheRepository holding at most maxEntries
// schedules, evicting the least recently used. Entries older than
// sweepTTL are removed by the LRU's background sweep; a shorter per-entry
// ttl passed to Set is enforced on read.
type MemoryCache struct {
	lru *expirable.LRU[string, memoryEntry]
	now func() time.Time
}

// NewMemoryCache creates a cache bounded to maxEntries. A sweepTTL of zero
// disables the background sweep.
func NewMemoryCache(maxEntries int, sweepTTL time.Duration) *MemoryCache {
	return &MemoryCache{
		lru: expirable.NewLRU[string, memoryEntry](maxEntries, nil, sweepTTL),
		now: time.Now,
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool, error) {
	entry, ok := m.lru.Get(key)
	if !ok {
		return "", false, nil
	}
	if !entry.expiresAt.IsZero() && !m.now().Before(entry.expiresAt) {
		m.lru.Remove(key)
		return "", false, nil
	}
	return entry.value, true, nil
}

func (m *MemoryCache) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = m.now().Add(ttl)
	}
	m.lru.Add(key, entry)
	return nil
}

// Len reports the number of stored entries.
func (m *MemoryCache) Len() int {
	return m.lru.Len()
}

func (m *MemoryCache) Purge() {
	m.lru.Purge()
}
