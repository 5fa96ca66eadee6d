package repository

import (
	"encoding/json"
	"sync"
)

// MemoryStore is an in-memory Store, used by tests in place of the sqlite
// backed repository.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (s *MemoryStore) Get(key string, dest any) bool {
	s.mu.Lock()
	raw, ok := s.data[key]
	s.mu.Unlock()
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false
	}
	return true
}

func (s *MemoryStore) Put(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[key] = string(raw)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}

// PutRaw stores an already-encoded value, letting tests plant malformed JSON.
func (s *MemoryStore) PutRaw(key, raw string) {
	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()
}
