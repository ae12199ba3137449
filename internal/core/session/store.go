// Package session persists the cart identity across runs. The cart id is
// the client's only durable state: it is adopted from the first successful
// cart response and survives restarts until overwritten.
package session

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const cartIDKey = "cart_id"

// Store wraps the SQLite database holding the session key.
type Store struct {
	conn *sql.DB
}

// Open creates the parent directory if needed, opens the database and
// initializes the schema.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	// SQLite only supports one writer
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(time.Hour)

	s := &Store{conn: conn}
	if err := s.initSchema(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to initialize session schema: %w", err)
	}
	return s, nil
}

func (s *Store) initSchema() error {
	_, err := s.conn.Exec(`
		CREATE TABLE IF NOT EXISTS session (
			key TEXT PRIMARY KEY,
			value INTEGER NOT NULL,
			updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.conn.Close()
}

// CartID returns the persisted cart id, or ok=false when no cart has been
// established yet. The store never clears a stored id on its own.
func (s *Store) CartID() (id int64, ok bool, err error) {
	err = s.conn.QueryRow(`SELECT value FROM session WHERE key = ?`, cartIDKey).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to read cart id: %w", err)
	}
	return id, true, nil
}

// SetCartID persists id, overwriting any previous value.
func (s *Store) SetCartID(id int64) error {
	_, err := s.conn.Exec(`
		INSERT INTO session (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, cartIDKey, id)
	if err != nil {
		return fmt.Errorf("failed to persist cart id: %w", err)
	}
	return nil
}
