package session

import (
	"maps"
	"sync"
	"time"
)

// MemoryStore implements Store using in-process map storage. It deliberately
// uses the plain calling convention: there is no I/O to cancel.
//
// Expiry decisions belong to the Manager, so Get returns expired records as
// stored; the optional janitor goroutine only reclaims memory between
// requests.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*Record
	ticker  *time.Ticker
	done    chan struct{}
	closed  bool
}

// NewMemoryStore creates an in-memory session store. A positive
// cleanupInterval starts a janitor goroutine that evicts expired records;
// zero disables it.
func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	store := &MemoryStore{
		records: make(map[string]*Record),
		done:    make(chan struct{}),
	}

	if cleanupInterval > 0 {
		store.ticker = time.NewTicker(cleanupInterval)
		go store.cleanupLoop()
	}

	return store
}

// Get retrieves a copy of the record for the id, or ErrNotFound.
func (m *MemoryStore) Get(id string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, exists := m.records[id]
	if !exists {
		return nil, ErrNotFound
	}

	return copyRecord(rec), nil
}

// Set stores a copy of the record under the id, replacing any existing one.
func (m *MemoryStore) Set(id string, rec *Record) error {
	if id == "" || rec == nil {
		return ErrInvalidRecord
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[id] = copyRecord(rec)
	return nil
}

// Destroy removes the record for the id. Absent ids are a no-op.
func (m *MemoryStore) Destroy(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, id)
	return nil
}

// DeleteExpired removes all records whose expiry has passed.
func (m *MemoryStore) DeleteExpired() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for id, rec := range m.records {
		if !rec.ExpiresAt.IsZero() && !now.Before(rec.ExpiresAt) {
			delete(m.records, id)
		}
	}
}

// Len returns the number of stored records, expired ones included.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.records)
}

// Close stops the janitor goroutine. Safe to call more than once.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true

	if m.ticker != nil {
		m.ticker.Stop()
	}
	close(m.done)
	return nil
}

// cleanupLoop runs periodic eviction of expired records
func (m *MemoryStore) cleanupLoop() {
	for {
		select {
		case <-m.ticker.C:
			m.DeleteExpired()
		case <-m.done:
			return
		}
	}
}

// copyRecord deep-copies a record so callers never share payload maps.
func copyRecord(rec *Record) *Record {
	c := &Record{ExpiresAt: rec.ExpiresAt}
	if rec.Data != nil {
		c.Data = make(map[string]any, len(rec.Data))
		maps.Copy(c.Data, rec.Data)
	}
	return c
}
