package history

import (
	"database/sql"
	"fmt"
	"sync"
	"time"
)

// SchemaVersion is the current database layout.
const SchemaVersion = "1"

// SQLite is a SQLite-backed store.
type SQLite struct {
	mu sync.Mutex
	db *sql.DB
}

// NewSQLite opens or creates the history database at path.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS entries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			expr TEXT NOT NULL,
			result INTEGER NOT NULL,
			err TEXT NOT NULL,
			ts TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS metadata (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, err
	}

	s := &SQLite{db: db}

	version, err := s.getMetadata("schema_version")
	if err != nil {
		db.Close()
		return nil, err
	}
	switch version {
	case "":
		if err := s.setMetadata("schema_version", SchemaVersion); err != nil {
			db.Close()
			return nil, err
		}
	case SchemaVersion:
	default:
		db.Close()
		return nil, fmt.Errorf("unsupported schema version: %s (expected %s)", version, SchemaVersion)
	}

	return s, nil
}

// Add appends an entry.
func (s *SQLite) Add(e *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.Ts.IsZero() {
		e.Ts = time.Now()
	}
	res, err := s.db.Exec(
		"INSERT INTO entries (expr, result, err, ts) VALUES (?, ?, ?, ?)",
		e.Expr, e.Result, e.Err, e.Ts.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return err
	}
	e.ID, err = res.LastInsertId()
	return err
}

// Last returns up to n of the most recent entries, oldest first.
func (s *SQLite) Last(n int) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n <= 0 {
		return nil, nil
	}
	rows, err := s.db.Query(
		"SELECT id, expr, result, err, ts FROM entries ORDER BY id DESC LIMIT ?", n,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var r []Entry
	for rows.Next() {
		var (
			e  Entry
			ts string
		)
		if err := rows.Scan(&e.ID, &e.Expr, &e.Result, &e.Err, &ts); err != nil {
			return nil, err
		}
		if e.Ts, err = time.Parse(time.RFC3339Nano, ts); err != nil {
			return nil, fmt.Errorf("entry %d: %w", e.ID, err)
		}
		r = append(r, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return r, nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// getMetadata retrieves metadata without locking (caller must hold lock or be
// initialising).
func (s *SQLite) getMetadata(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM metadata WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

func (s *SQLite) setMetadata(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}
