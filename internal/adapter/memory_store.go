package adapter

import (
	"context"
	"sync"
	"time"

	"page-assist/internal/domain"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryStore is the in-process fallback used when no Redis address is
// configured. Contents are lost on restart.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok || m.expired(entry) {
		return "", domain.ErrCacheMiss
	}
	return entry.value, nil
}

func (m *MemoryStore) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	entry := memoryEntry{value: value}
	if expiration > 0 {
		entry.expiresAt = m.now().Add(expiration)
	}
	m.mu.Lock()
	m.entries[key] = entry
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (m *MemoryStore) expired(e memoryEntry) bool {
	return !e.expiresAt.IsZero() && !m.now().Before(e.expiresAt)
}

var _ domain.Cache = (*MemoryStore)(nil)
