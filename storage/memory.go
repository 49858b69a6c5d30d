package storage

import (
	"context"
	"sync"
)

// MemoryStorage keeps the snapshot in process memory. It satisfies the
// rehydration contract only within a single process lifetime; use it for
// tests and sessions that should not outlive the process.
type MemoryStorage struct {
	mu   sync.RWMutex
	snap *Snapshot
}

// NewMemoryStorage returns an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (m *MemoryStorage) Save(_ context.Context, snap Snapshot) error {
	user := make([]byte, len(snap.User))
	copy(user, snap.User)
	snap.User = user

	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = &snap
	return nil
}

func (m *MemoryStorage) Load(_ context.Context) (*Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.snap == nil {
		return nil, nil
	}
	out := *m.snap
	out.User = make([]byte, len(m.snap.User))
	copy(out.User, m.snap.User)
	return &out, nil
}

func (m *MemoryStorage) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = nil
	return nil
}
