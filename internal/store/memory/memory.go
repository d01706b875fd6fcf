// Package memory provides an in-process store.Store backed by a map.
// It is the default for tests and for STORAGE=memory, where state is
// intentionally discarded on restart.
package memory

import (
	"context"
	"sync"
)

// Store is a map-backed key-value store guarded by an RWMutex.
type Store struct {
	mu      sync.RWMutex
	entries map[string]string
}

// New returns an empty Store.
func New() *Store {
	return &Store{entries: make(map[string]string)}
}

// Get returns the value for key, or ok=false if it was never set.
func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.entries[key]
	return v, ok, nil
}

// Set overwrites the value for key.
func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = value
	return nil
}
