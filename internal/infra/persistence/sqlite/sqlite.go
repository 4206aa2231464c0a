// Package sqlite is the embedded credential store backed by modernc.org/sqlite.
package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"ogfinder/internal/errors"

	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	first_name    TEXT NOT NULL,
	last_name     TEXT NOT NULL,
	company_name  TEXT NOT NULL,
	country       TEXT NOT NULL,
	trading_role  TEXT NOT NULL,
	role          TEXT NOT NULL DEFAULT 'basic',
	created_at    TEXT NOT NULL
);
`

// Open opens (or creates) a sqlite database at path, creating parent directories.
// ":memory:" opens a private in-memory database.
func Open(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, errors.Wrap(err, "create db dir")
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite db")
	}

	// One writer keeps SQLITE_BUSY out of the request path.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(`PRAGMA busy_timeout = 5000;`); err != nil {
		db.Close()

		return nil, errors.Wrap(err, "set busy timeout")
	}

	return db, nil
}

// Init creates the schema. It is idempotent.
func Init(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, createUsersTable); err != nil {
		return errors.Wrap(err, "create users table")
	}

	return nil
}

func sqliteCode(err error) (int, bool) {
	var sqliteErr *msqlite.Error
	if !errors.As(err, &sqliteErr) {
		return 0, false
	}

	return sqliteErr.Code(), true
}

func isUniqueConstraintViolation(err error) bool {
	code, ok := sqliteCode(err)

	return ok && (code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY)
}

func isBusy(err error) bool {
	code, ok := sqliteCode(err)
	if !ok {
		return false
	}

	// Extended codes keep the primary code in the low byte.
	primary := code & 0xff

	return primary == sqlite3.SQLITE_BUSY || primary == sqlite3.SQLITE_LOCKED || primary == sqlite3.SQLITE_CANTOPEN
}
