package db

import (
	"database/sql"
	"errors"

	sqlite "github.com/mattn/go-sqlite3"
)

var (
	ErrNotFound = errors.New("not found")
)

// NewSQLiteDB creates a new SQLite DB
func NewSQLiteDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}
	_, err = db.Exec(`
		PRAGMA foreign_keys = ON;
		pragma journal_mode = WAL;
		pragma synchronous = normal;
		pragma journal_size_limit  = 6144000;
	`)
	return db, err
}

func ReturnErrNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// IsUniqueConstraintErr reports whether err was raised by a violated UNIQUE or PRIMARY KEY constraint
func IsUniqueConstraintErr(err error) bool {
	sqliteErr, ok := SQLiteErr(err)
	if !ok {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite.ErrConstraintUnique ||
		sqliteErr.ExtendedCode == sqlite.ErrConstraintPrimaryKey
}
