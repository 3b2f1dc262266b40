package mocks

import (
	"context"
	"sync"
	"time"
)

// MockCacheStore is a mock implementation of the CacheStore interface for testing.
// Entries never expire; the TTL passed to Set is recorded instead.
type MockCacheStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
	ttls    map[string]time.Duration

	GetErr error
	SetErr error
}

// NewMockCacheStore creates a new mock cache store
func NewMockCacheStore() *MockCacheStore {
	return &MockCacheStore{
		entries: make(map[string][]byte),
		ttls:    make(map[string]time.Duration),
	}
}

// Get retrieves a value by key
func (m *MockCacheStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.GetErr != nil {
		return nil, false, m.GetErr
	}
	value, ok := m.entries[key]
	return value, ok, nil
}

// Set stores a value under key
func (m *MockCacheStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SetErr != nil {
		return m.SetErr
	}
	m.entries[key] = append([]byte(nil), value...)
	m.ttls[key] = ttl
	return nil
}

// Delete removes a key
func (m *MockCacheStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
	delete(m.ttls, key)
	return nil
}

// TTL returns the ttl the key was stored with
func (m *MockCacheStore) TTL(key string) (time.Duration, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ttl, ok := m.ttls[key]
	return ttl, ok
}

// Len returns the number of stored entries
func (m *MockCacheStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
