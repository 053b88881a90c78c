package drafts

import (
	"sync"
	"time"
)

type entry struct {
	val       []byte
	expiresAt time.Time // zero means no expiry
}

// MemoryStore is a process-local Storage used when no Redis is configured
// and in tests.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]entry
	now  func() time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

// SetClock replaces the time source used for expiry.
func (m *MemoryStore) SetClock(now func() time.Time) {
	m.mu.Lock()
	m.now = now
	m.mu.Unlock()
}

// Get returns nil without error for missing or expired keys.
func (m *MemoryStore) Get(key string) ([]byte, error) {
	m.mu.RLock()
	e, ok := m.data[key]
	m.mu.RUnlock()
	if !ok || m.expired(e) {
		return nil, nil
	}
	out := make([]byte, len(e.val))
	copy(out, e.val)
	return out, nil
}

// Set stores val under key. A zero exp never expires.
func (m *MemoryStore) Set(key string, val []byte, exp time.Duration) error {
	e := entry{val: make([]byte, len(val))}
	copy(e.val, val)
	if exp > 0 {
		e.expiresAt = m.now().Add(exp)
	}

	m.mu.Lock()
	m.data[key] = e
	m.mu.Unlock()
	return nil
}

// Delete removes key.
func (m *MemoryStore) Delete(key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
	return nil
}

// Len returns the number of stored keys, expired ones included.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Sweep drops expired entries and returns how many were removed.
func (m *MemoryStore) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for k, e := range m.data {
		if m.expired(e) {
			delete(m.data, k)
			removed++
		}
	}
	return removed
}

func (m *MemoryStore) expired(e entry) bool {
	return !e.expiresAt.IsZero() && !m.now().Before(e.expiresAt)
}
