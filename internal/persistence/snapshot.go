// Package persistence provides the durable key-value boundary the entity
// store writes whole-collection snapshots through. Each Put replaces the
// entire value under a key; there is no delta or transactional log.
package persistence

import (
	"context"
	"sync"
)

// Snapshot keys, one per entity collection.
const (
	KeyLeads       = "crm:leads"
	KeyProperties  = "crm:properties"
	KeyTeamMembers = "crm:team_members"
)

// Snapshotter is the durable key-value boundary. A Put either fully
// succeeds or the caller's in-memory state diverges from storage; the
// store reports that divergence but does not roll back.
type Snapshotter interface {
	Put(ctx context.Context, key string, value []byte) error
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
}

// MemorySnapshotter keeps snapshots in process memory. Used for tests and
// for running without a durable backend configured.
type MemorySnapshotter struct {
	mu   sync.RWMutex
	data map[string][]byte

	// FailPuts makes every Put return this error while leaving stored
	// state untouched. Exercised by store tests covering the
	// write-failure inconsistency window.
	FailPuts error
}

// NewMemorySnapshotter creates an empty in-process snapshotter.
func NewMemorySnapshotter() *MemorySnapshotter {
	return &MemorySnapshotter{data: make(map[string][]byte)}
}

func (m *MemorySnapshotter) Put(_ context.Context, key string, value []byte) error {
	if m.FailPuts != nil {
		return m.FailPuts
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	buf := make([]byte, len(value))
	copy(buf, value)
	m.data[key] = buf
	return nil
}

func (m *MemorySnapshotter) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	buf := make([]byte, len(value))
	copy(buf, value)
	return buf, true, nil
}
