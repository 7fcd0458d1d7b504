package state

import (
	"database/sql"
	"errors"

	dbutil "github.com/atelier-sh/atelier/internal/db"
)

type WorkspaceState struct {
	Root         string
	FocusedPanel string // "sidebar", "conversation", "main" or "manager"
}

func getWorkspace(db *sql.DB) (*WorkspaceState, error) {
	row := db.QueryRow(`
		SELECT root, focused_panel
		FROM workspace_state WHERE id = 1
	`)

	var state WorkspaceState
	var focusedPanel sql.NullString

	err := row.Scan(&state.Root, &focusedPanel)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	state.FocusedPanel = dbutil.NullStringValue(focusedPanel)

	return &state, nil
}

func saveWorkspace(db *sql.DB, state WorkspaceState) error {
	_, err := db.Exec(`
		INSERT INTO workspace_state (id, root, focused_panel)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			root = excluded.root,
			focused_panel = excluded.focused_panel
	`, state.Root, state.FocusedPanel)

	return err
}
