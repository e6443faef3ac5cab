package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore keeps collections in process memory. It honors the same
// read-empty / write-replace contract as the SQLite backend and is used
// for tests and local runs without a database file.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]byte)}
}

func (s *MemoryStore) Read(ctx context.Context, collection string, out any) error {
	s.mu.RLock()
	data, ok := s.collections[collection]
	s.mu.RUnlock()
	if !ok {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode collection %q: %w: %w", collection, ErrSerialization, err)
	}
	return nil
}

func (s *MemoryStore) Write(ctx context.Context, collection string, records any) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode collection %q: %w: %w", collection, ErrSerialization, err)
	}

	s.mu.Lock()
	s.collections[collection] = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
