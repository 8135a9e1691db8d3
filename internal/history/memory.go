package history

import (
	"sync"
	"time"
)

// Memory is an in-memory store, used when no database is configured.
type Memory struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewMemory creates a new in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Add appends an entry.
func (m *Memory) Add(e *Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e.Ts.IsZero() {
		e.Ts = time.Now()
	}
	e.ID = int64(len(m.entries) + 1)
	m.entries = append(m.entries, *e)
	return nil
}

// Last returns up to n of the most recent entries, oldest first.
func (m *Memory) Last(n int) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if n <= 0 {
		return nil, nil
	}
	if n > len(m.entries) {
		n = len(m.entries)
	}
	r := make([]Entry, n)
	copy(r, m.entries[len(m.entries)-n:])
	return r, nil
}

// Close is a no-op for memory store.
func (m *Memory) Close() error {
	return nil
}
