package kolor

import "sync"

// Store is the persistent key-value store the best score lives in.
// storage.Store satisfies it.
type Store interface {
	// GetInteger returns the value under key; ok is false when absent.
	GetInteger(key string) (value int, ok bool, err error)
	// SetInteger stores value under key.
	SetInteger(key string, value int) error
}

// MemoryStore is an in-process Store. It is used when no database is
// available and in tests, where Writes counts SetInteger calls.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]int
	writes int
}

// NewMemoryStore creates an empty memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]int)}
}

// GetInteger implements Store.
func (m *MemoryStore) GetInteger(key string) (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// SetInteger implements Store.
func (m *MemoryStore) SetInteger(key string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	m.writes++
	return nil
}

// Writes returns how many times SetInteger was called.
func (m *MemoryStore) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

type nopStore struct{}

func (nopStore) GetInteger(string) (int, bool, error) { return 0, false, nil }
func (nopStore) SetInteger(string, int) error         { return nil }
