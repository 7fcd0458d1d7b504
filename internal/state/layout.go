package state

import (
	"database/sql"
	"errors"

	dbutil "github.com/atelier-sh/atelier/internal/db"
)

// Get returns the layout value stored under key. A missing key is not an
// error; it returns the empty string so the layout engine falls back to its
// defaults.
func (m *Manager) Get(key string) (string, error) {
	return getLayoutValue(m.db, key)
}

// Set stores value under key, overwriting any previous value.
func (m *Manager) Set(key, value string) error {
	return setLayoutValue(m.db, key, value)
}

// Remove deletes the value stored under key. Removing an absent key is a
// no-op.
func (m *Manager) Remove(key string) error {
	_, err := m.db.Exec(`DELETE FROM layout_state WHERE key = ?`, key)
	return err
}

// ClearLayout deletes every stored layout value in one transaction so a
// partial reset can never survive a crash.
func (m *Manager) ClearLayout() error {
	return dbutil.WithTx(m.db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`DELETE FROM layout_state`)
		return err
	})
}

func getLayoutValue(db *sql.DB, key string) (string, error) {
	row := db.QueryRow(`SELECT value FROM layout_state WHERE key = ?`, key)

	var value string
	err := row.Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func setLayoutValue(db *sql.DB, key, value string) error {
	_, err := db.Exec(`
		INSERT INTO layout_state (key, value)
		VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value
	`, key, value)
	return err
}
