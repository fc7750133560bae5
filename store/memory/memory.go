// Package memory provides a thread-safe in-memory implementation of
// store.Records. Suitable for tests and single-process embedding.
package memory

import (
	"fmt"
	"sync"

	"github.com/laito/laito/store"
)

// Store is a thread-safe in-memory implementation of store.Records.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ store.Records = (*Store)(nil)

// New creates a new empty in-memory store.
func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

func (s *Store) Put(key string, data []byte) error {
	if !store.ValidKey(key) {
		return fmt.Errorf("%w: %q", store.ErrInvalidKey, key)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), data...)
	return nil
}

func (s *Store) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, fmt.Errorf("%s: %w", key, store.ErrNotFound)
	}
	return append([]byte(nil), v...), nil
}

func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[key]; !ok {
		return fmt.Errorf("%s: %w", key, store.ErrNotFound)
	}
	delete(s.data, key)
	return nil
}

func (s *Store) List() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys, nil
}
