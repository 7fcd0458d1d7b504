// Package db holds small helpers shared by stores built on database/sql.
package db

import "database/sql"

// WithTx runs fn inside a transaction. The transaction commits when fn
// returns nil and rolls back otherwise.
func WithTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		tx.Rollback() //nolint:errcheck // the fn error is the one to report
		return err
	}
	return tx.Commit()
}

// NullStringValue unwraps a NullString, mapping NULL to the empty string.
func NullStringValue(n sql.NullString) string {
	if n.Valid {
		return n.String
	}
	return ""
}
