package services

import (
	"sort"
	"sync"
)

// UsageTracker records the identifiers referenced through sprite-mode
// lookups during one request lifecycle
type UsageTracker struct {
	mu   sync.Mutex
	used map[string]struct{}
}

// NewUsageTracker creates an empty tracker
func NewUsageTracker() *UsageTracker {
	return &UsageTracker{used: make(map[string]struct{})}
}

// Record marks an identifier as used. Duplicates collapse.
func (t *UsageTracker) Record(identifier string) {
	if identifier == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.used[identifier] = struct{}{}
}

// Sorted returns the used identifiers in lexicographic order without
// clearing them
func (t *UsageTracker) Sorted() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sortedLocked()
}

// Drain returns the used identifiers in lexicographic order and clears the
// set for the next lifecycle
func (t *UsageTracker) Drain() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	ids := t.sortedLocked()
	t.used = make(map[string]struct{})
	return ids
}

// Reset clears the set at the start of a lifecycle
func (t *UsageTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.used = make(map[string]struct{})
}

// Len returns the number of distinct identifiers recorded
func (t *UsageTracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.used)
}

func (t *UsageTracker) sortedLocked() []string {
	ids := make([]string, 0, len(t.used))
	for id := range t.used {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
