package inmemkv

import (
	"sync"

	"github.com/prachishaw/ClassCapsule/core"
)

// Store is a core.KVStore kept in memory; values are lost when the process exits.
type Store struct {
	mutex sync.RWMutex
	table map[string]string
}

var _ core.KVStore = (*Store)(nil)

func New() *Store {
	return &Store{table: make(map[string]string)}
}

func (s *Store) Get(key string) (string, bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	val, ok := s.table[key]
	return val, ok, nil
}

func (s *Store) Set(key, value string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.table[key] = value
	return nil
}

func (s *Store) Remove(key string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.table, key)
	return nil
}

// Keys returns the stored keys, in no particular order.
func (s *Store) Keys() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	keys := make([]string, 0, len(s.table))
	for k := range s.table {
		keys = append(keys, k)
	}
	return keys
}
