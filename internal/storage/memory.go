package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
)

// Memory is an in-process Store. It keeps the encoded bytes so that callers can
// compare stored records byte for byte.
type Memory struct {
	mu      sync.RWMutex
	records map[string][]byte

	// FailSet makes every Set return this error when non-nil.
	FailSet error
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{records: make(map[string][]byte)}
}

func (m *Memory) Get(ctx context.Context, name string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.RLock()
	data, ok := m.records[name]
	m.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return nil
}

func (m *Memory) Set(ctx context.Context, name string, value any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.FailSet != nil {
		return m.FailSet
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	m.mu.Lock()
	m.records[name] = data
	m.mu.Unlock()
	return nil
}

// Raw returns a copy of the stored bytes for name.
func (m *Memory) Raw(name string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.records[name]
	return slices.Clone(data), ok
}

func (m *Memory) Close() error { return nil }
