package storage

import (
	"context"
	"sync"
)

// MemoryKV implements KeyValue with an in-process map. Nothing survives a
// restart; intended for tests and standalone runs.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{
		values: make(map[string]string),
	}
}

// Get retrieves the value for a key.
func (s *MemoryKV) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

// Set writes the value for a key.
func (s *MemoryKV) Set(ctx context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryKV) Close() error {
	return nil
}
