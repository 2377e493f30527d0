package dbx

import (
	"database/sql"
	"time"
)

// Timestamps are stored as unix milliseconds so the same schema works on
// SQLite and PostgreSQL.

// Millis converts an optional time to a nullable column value.
func Millis(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.UnixMilli(), Valid: true}
}

// FromMillis converts a nullable column value back to an optional UTC time.
func FromMillis(n sql.NullInt64) *time.Time {
	if !n.Valid {
		return nil
	}
	t := time.UnixMilli(n.Int64).UTC()
	return &t
}
