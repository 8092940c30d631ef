package db

import (
	"context"
	"sync"
)

// MemoryStore keeps entries in process memory. Used by tests and by
// STORE_DRIVER=memory.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string][]byte{}}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (m *MemoryStore) Put(_ context.Context, entries ...Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range entries {
		if e.Value == nil {
			delete(m.data, e.Key)
			continue
		}
		v := make([]byte, len(e.Value))
		copy(v, e.Value)
		m.data[e.Key] = v
	}
	return nil
}

func (m *MemoryStore) Close() error { return nil }
