package storage

import (
	"context"
	"sync"
)

// Memory keeps snapshots in-process. Each instance is isolated, which is what
// tests and single-shot sessions want.
type Memory struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemory builds an empty in-process gateway.
func NewMemory() *Memory {
	return &Memory{records: map[string][]byte{}}
}

func (m *Memory) Read(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.records[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *Memory) Write(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	m.records[key] = stored
	return nil
}

func (m *Memory) Clear(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, key)
	return nil
}
