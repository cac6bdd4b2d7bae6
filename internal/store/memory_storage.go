package store

import (
	"context"
	"sync"
)

type memoryStorage struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemoryStorage returns a [LocalStorage] that keeps items in process
// memory only. Used for tests and for "memory" storage kind.
func NewMemoryStorage() LocalStorage {
	return &memoryStorage{items: make(map[string]string)}
}

func (m *memoryStorage) GetItem(_ context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.items[key]
	if !ok {
		return "", ErrItemNotFound
	}
	return value, nil
}

func (m *memoryStorage) SetItem(_ context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[key] = value
	return nil
}

func (m *memoryStorage) RemoveItem(_ context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items, key)
	return nil
}
