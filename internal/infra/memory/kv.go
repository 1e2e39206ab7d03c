// Package memory provides an in-memory KV adapter for tests and development.
package memory

import (
	"context"
	"sync"
)

// KV is an in-memory implementation of the storage port.
type KV struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewKV creates an empty in-memory store.
func NewKV() *KV {
	return &KV{values: make(map[string]string)}
}

// Get retrieves a value by key.
func (s *KV) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

// Set stores a value under a key.
func (s *KV) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
