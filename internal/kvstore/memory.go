package kvstore

import (
	"context"
	"sync"
)

// Memory is a Store backed by process memory. Intended for tests.
type Memory struct {
	mu   sync.RWMutex
	vals map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory { return &Memory{vals: make(map[string]string)} }

func (m *Memory) Driver() Driver { return DriverMemory }

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.vals[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vals[key] = value
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.vals, key)
	return nil
}

func (m *Memory) Close() error { return nil }
