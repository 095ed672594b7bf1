package session

import (
	"context"
	"sync"
)

// MemoryKV is an in-process session backing for tests and for running
// without Redis.
type MemoryKV struct {
	mu       sync.RWMutex
	sessions map[string]map[string]string
}

// NewMemoryKV builds an empty in-memory backing.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{sessions: make(map[string]map[string]string)}
}

// Get reads one key of a session.
func (m *MemoryKV) Get(_ context.Context, sid, key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	bag, ok := m.sessions[sid]
	if !ok {
		return "", false
	}
	val, ok := bag[key]
	return val, ok
}

// Set writes one key of a session.
func (m *MemoryKV) Set(_ context.Context, sid, key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	bag, ok := m.sessions[sid]
	if !ok {
		bag = make(map[string]string)
		m.sessions[sid] = bag
	}
	bag[key] = value
}

// Delete removes individual keys.
func (m *MemoryKV) Delete(_ context.Context, sid string, keys ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	bag, ok := m.sessions[sid]
	if !ok {
		return
	}
	for _, key := range keys {
		delete(bag, key)
	}
}

// Clear drops the whole session.
func (m *MemoryKV) Clear(_ context.Context, sid string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sid)
}
