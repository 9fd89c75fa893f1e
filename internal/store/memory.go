package store

import (
	"sort"
	"strings"
	"sync"
)

// Memory is an in-process Store used by tests and embedded deployments.
type Memory struct {
	mu      sync.RWMutex
	buckets map[Class]map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{
		buckets: map[Class]map[string][]byte{
			ClassInstance:   {},
			ClassPersistent: {},
		},
	}
}

func (m *Memory) Get(class Class, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.buckets[class][key]
	if !ok {
		return nil, false, nil
	}
	copied := make([]byte, len(value))
	copy(copied, value)
	return copied, true, nil
}

func (m *Memory) Set(class Class, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := make([]byte, len(value))
	copy(copied, value)
	m.buckets[class][key] = copied
	return nil
}

func (m *Memory) Has(class Class, key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.buckets[class][key]
	return ok, nil
}

func (m *Memory) Remove(class Class, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.buckets[class], key)
	return nil
}

func (m *Memory) Keys(class Class, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var keys []string
	for key := range m.buckets[class] {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// Len reports the number of keys in a class. Test helper.
func (m *Memory) Len(class Class) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.buckets[class])
}
