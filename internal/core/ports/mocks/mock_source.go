package mocks

import (
	"context"
	"sync"

	"github.com/kamal-hamza/sx-cli/internal/core/domain"
)

// MockSource is an in-memory AssetSource for testing
type MockSource struct {
	mu    sync.RWMutex
	name  string
	docs  []*domain.Document
	err   error
	calls int
}

// NewMockSource creates a mock source with the given name
func NewMockSource(name string) *MockSource {
	return &MockSource{name: name}
}

// Name returns the source name
func (m *MockSource) Name() string {
	return m.name
}

// Put parses raw markup and registers it under identifier. A later Put with
// the same identifier is returned after the earlier one.
func (m *MockSource) Put(identifier, raw string) *MockSource {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.docs = append(m.docs, domain.NewDocument(identifier, raw, "mock://"+identifier))
	return m
}

// Clear removes every document
func (m *MockSource) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = nil
}

// FailWith makes Documents return err
func (m *MockSource) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Calls returns how often Documents was called
func (m *MockSource) Calls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls
}

// Documents returns the registered documents in insertion order
func (m *MockSource) Documents(ctx context.Context) ([]*domain.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	docs := make([]*domain.Document, len(m.docs))
	copy(docs, m.docs)
	return docs, nil
}
