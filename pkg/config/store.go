package config

import (
	"os"
	"sync"
)

// Store is the key/value environment the accessor reads from and ingestion
// writes to.
type Store interface {
	Lookup(key string) (string, bool)
	Set(key, value string) error
	Unset(key string) error
}

// OSStore is the process environment.
type OSStore struct{}

func (OSStore) Lookup(key string) (string, bool) { return os.LookupEnv(key) }
func (OSStore) Set(key, value string) error      { return os.Setenv(key, value) }
func (OSStore) Unset(key string) error           { return os.Unsetenv(key) }

// MapStore is an in-memory Store. It is safe for concurrent use.
type MapStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMapStore returns a store seeded with a copy of values.
func NewMapStore(values map[string]string) *MapStore {
	m := &MapStore{values: make(map[string]string, len(values))}
	for k, v := range values {
		m.values[k] = v
	}
	return m
}

func (m *MapStore) Lookup(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MapStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	return nil
}

func (m *MapStore) Unset(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// Len returns the number of stored keys.
func (m *MapStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.values)
}
