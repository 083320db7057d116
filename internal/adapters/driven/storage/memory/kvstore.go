package memory

import (
	"encoding/json"
	"sync"

	"github.com/plateful-labs/plateful-cli/internal/core/ports/driven"
	"github.com/plateful-labs/plateful-cli/internal/logger"
)

// Ensure KVStore implements the interface.
var _ driven.KeyValueStore = (*KVStore)(nil)

// KVStore is an in-memory implementation of driven.KeyValueStore for
// testing. Values round-trip through JSON so tests exercise the same
// serialisation path as the persistent store.
type KVStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewKVStore creates a new in-memory key-value store.
func NewKVStore() *KVStore {
	return &KVStore{records: make(map[string][]byte)}
}

// Save serialises value under key.
func (s *KVStore) Save(key string, value any) bool {
	data, err := json.Marshal(value)
	if err != nil {
		logger.Warn("save %q: %v", key, err)
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = data
	return true
}

// Load deserialises the record at key into dest.
func (s *KVStore) Load(key string, dest any) bool {
	s.mu.RLock()
	data, ok := s.records[key]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		logger.Warn("load %q: %v", key, err)
		return false
	}
	return true
}

// Remove deletes the record at key.
func (s *KVStore) Remove(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, key)
	return true
}

// ClearAll removes the records for the given keys.
func (s *KVStore) ClearAll(keys ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.records, key)
	}
}

// Len returns the number of stored records. Test helper.
func (s *KVStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
