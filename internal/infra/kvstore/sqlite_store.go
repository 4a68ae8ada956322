// Package kvstore provides the installation-local key-value stores used by the registration coordinator.
package kvstore

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"pushreg/internal/domain/repository"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS kv_entries (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
`

// SQLiteStore persists entries in a single SQLite file so they survive restarts.
type SQLiteStore struct {
	db *sql.DB
}

var _ repository.KeyValueStore = (*SQLiteStore)(nil)

// OpenSQLite creates or opens the store at path, creating parent directories as needed.
//
// The database runs in WAL mode with a 5s busy timeout and a single connection,
// since SQLite only supports one writer at a time.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, errors.Wrapf(err, "create store directory %s", dir)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite store")
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()

		return nil, errors.Wrap(err, "ping sqlite store")
	}

	if err := applyPragmas(db); err != nil {
		_ = db.Close()

		return nil, err
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()

		return nil, errors.Wrap(err, "apply store schema")
	}

	return &SQLiteStore{db: db}, nil
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return errors.Wrapf(err, "execute %q", pragma)
		}
	}

	return nil
}

// Get returns the value stored under key, or def when absent.
func (s *SQLiteStore) Get(ctx context.Context, key, def string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_entries WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return def, nil
	}
	if err != nil {
		return def, errors.Wrapf(err, "get %s", key)
	}

	return value, nil
}

// Set upserts key.
func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv_entries (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, value, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return errors.Wrapf(err, "set %s", key)
	}

	return nil
}

// Remove deletes key if present.
func (s *SQLiteStore) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv_entries WHERE key = ?`, key); err != nil {
		return errors.Wrapf(err, "remove %s", key)
	}

	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}

	return errors.WithStack(s.db.Close())
}
