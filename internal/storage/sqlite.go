package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/hbnb/pkg/types"
)

// Schema DDL for the objects table. position keeps registry order.
const (
	createObjects = `CREATE TABLE IF NOT EXISTS objects (
    position INTEGER NOT NULL,
    key TEXT PRIMARY KEY,
    type_name TEXT NOT NULL,
    record TEXT NOT NULL
);`

	idxObjectsType = `CREATE INDEX IF NOT EXISTS idx_objects_type ON objects(type_name);`
)

// SQLiteStore keeps the registry in a SQLite database, one row per entity
// with the record stored as JSON text. Store rewrites the table inside a
// single transaction.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore returns a store backed by the database file at path. The
// database is opened lazily; Load on a missing file does not create it.
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Location() string { return s.path }

// open connects to the database and ensures the schema exists.
func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}
	for _, ddl := range []string{createObjects, idxObjectsType} {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	s.db = db
	return nil
}

// Load reads every row ordered by position.
func (s *SQLiteStore) Load() ([]Entry, error) {
	if s.db == nil {
		if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
	}
	if err := s.open(); err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrIOFailure, err)
	}

	rows, err := s.db.Query("SELECT key, record FROM objects ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("%w: querying objects: %w", types.ErrIOFailure, err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var key, raw string
		if err := rows.Scan(&key, &raw); err != nil {
			return nil, fmt.Errorf("%w: scanning row: %w", types.ErrIOFailure, err)
		}
		rec := types.NewRecord()
		if err := json.Unmarshal([]byte(raw), rec); err != nil {
			return nil, fmt.Errorf("%w: record %q: %w", types.ErrMalformedData, key, err)
		}
		entries = append(entries, Entry{Key: key, Record: rec})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrIOFailure, err)
	}
	return entries, nil
}

// Store replaces every row with entries. All rows are written or none.
func (s *SQLiteStore) Store(entries []Entry) error {
	if err := s.open(); err != nil {
		return fmt.Errorf("%w: %w", types.ErrIOFailure, err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: beginning transaction: %w", types.ErrIOFailure, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM objects"); err != nil {
		return fmt.Errorf("%w: clearing objects: %w", types.ErrIOFailure, err)
	}

	stmt, err := tx.Prepare("INSERT INTO objects (position, key, type_name, record) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("%w: preparing insert: %w", types.ErrIOFailure, err)
	}
	defer stmt.Close()

	for i, e := range entries {
		raw, err := e.Record.MarshalJSON()
		if err != nil {
			return fmt.Errorf("%w: record %q: %w", types.ErrInvalidField, e.Key, err)
		}
		typeName, _, err := SplitKey(e.Key)
		if err != nil {
			return err
		}
		if _, err := stmt.Exec(i, e.Key, typeName, string(raw)); err != nil {
			return fmt.Errorf("%w: inserting %q: %w", types.ErrIOFailure, e.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing: %w", types.ErrIOFailure, err)
	}
	return nil
}

// Close releases the database handle. Idempotent.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
