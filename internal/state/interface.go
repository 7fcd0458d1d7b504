// internal/state/interface.go
package state

import (
	"database/sql"
)

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	DB() *sql.DB
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
	ClearLayout() error
	SaveWorkspace(state WorkspaceState)
	GetWorkspace() (*WorkspaceState, error)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
