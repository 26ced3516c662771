package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps entries in a thread-safe map. Useful for tests and
// single-node deployments that can afford a cold cache on restart.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]Entry
	now     func() time.Time
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]Entry),
		now:     time.Now,
	}
}

// Get retrieves the entry for key.
func (s *MemoryStore) Get(ctx context.Context, key Key) (Entry, bool, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[key.String()]
	return entry, ok, nil
}

// Put replaces the entry for key.
func (s *MemoryStore) Put(ctx context.Context, key Key, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]byte, len(payload))
	copy(copied, payload)
	s.entries[key.String()] = Entry{Payload: copied, StoredAt: s.now()}
	return nil
}
