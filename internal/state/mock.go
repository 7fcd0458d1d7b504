// internal/state/mock.go
package state

import (
	"database/sql"
)

// Mock is a test double for Manager.
type Mock struct {
	values    map[string]string
	workspace *WorkspaceState
	closed    bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{values: make(map[string]string)}
}

func (m *Mock) DB() *sql.DB { return nil }

func (m *Mock) Get(key string) (string, error) {
	return m.values[key], nil
}

func (m *Mock) Set(key, value string) error {
	m.values[key] = value
	return nil
}

func (m *Mock) Remove(key string) error {
	delete(m.values, key)
	return nil
}

func (m *Mock) ClearLayout() error {
	m.values = make(map[string]string)
	return nil
}

func (m *Mock) SaveWorkspace(state WorkspaceState) {
	m.workspace = &state
}

func (m *Mock) GetWorkspace() (*WorkspaceState, error) {
	return m.workspace, nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetWorkspace(state *WorkspaceState) { m.workspace = state }

func (m *Mock) Value(key string) string { return m.values[key] }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
