// File: store/mem_store.go
package store

import (
	"encoding/json"
	"fmt"
	"sync"
)

// MemStore is an in-memory Store used by tests. It round-trips values through
// JSON so it exercises the same encode/decode boundary as FileStore.
type MemStore struct {
	mu      sync.Mutex
	records map[string][]byte
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{records: make(map[string][]byte)}
}

// Get decodes the stored record for key into the provided value.
func (s *MemStore) Get(key string, into any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.records[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, into); err != nil {
		return false, fmt.Errorf("decode record %s: %w", key, err)
	}
	return true, nil
}

// Set overwrites the whole record for key.
func (s *MemStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode record %s: %w", key, err)
	}
	s.records[key] = data
	return nil
}

// Delete removes the record for key.
func (s *MemStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, key)
	return nil
}
