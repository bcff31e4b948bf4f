// Package store provides SQLite persistence for generated briefs.
//
// The engine itself never persists anything; this is the history layer the
// CLI and TUI use to keep past briefs around.
package store

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Store handles SQLite persistence. NOT an interface - concrete type.
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type Store struct {
	db *sql.DB
	mu sync.RWMutex // Protects all database operations
}

// Brief is one stored rendered brief.
type Brief struct {
	ID          string
	Style       string
	Urgency     string
	Subject     string
	GeneratedAt time.Time
	Document    []byte // rendered JSON document
}

// Open creates a new Store with the given database path.
// Creates tables if they don't exist.
// Uses WAL mode for better concurrent read performance (file-based DBs only).
func Open(dbPath string) (*Store, error) {
	// Build connection string based on database type
	connStr := dbPath
	if dbPath == ":memory:" {
		// For in-memory databases, use shared cache mode so all connections
		// in the pool see the same database
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// For in-memory databases, limit to 1 connection to avoid issues
	// with multiple connections getting different databases
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	// Enable WAL mode for file-based databases (not :memory:)
	if dbPath != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}

	s := &Store{db: db}

	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return s, nil
}

// createTables creates the required tables and indexes if they don't exist.
func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS briefs (
		id TEXT PRIMARY KEY,
		style TEXT NOT NULL,
		urgency TEXT NOT NULL,
		subject TEXT NOT NULL,
		generated_at DATETIME NOT NULL,
		document BLOB NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_briefs_generated ON briefs(generated_at DESC);
	CREATE INDEX IF NOT EXISTS idx_briefs_style ON briefs(style);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
// Thread-safe: acquires write lock to prevent closing during in-flight operations.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// SaveBrief stores one rendered brief. Re-saving the same id replaces it,
// so regenerating a brief for the same timestamp is idempotent.
// Thread-safe: acquires write lock.
func (s *Store) SaveBrief(b Brief) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO briefs (id, style, urgency, subject, generated_at, document)
		VALUES (?, ?, ?, ?, ?, ?)
	`, b.ID, b.Style, b.Urgency, b.Subject, b.GeneratedAt, b.Document)
	if err != nil {
		return fmt.Errorf("save brief %s: %w", b.ID, err)
	}
	return nil
}

// RecentBriefs retrieves the latest briefs, newest first.
// An empty style matches every style.
// Thread-safe: acquires read lock.
func (s *Store) RecentBriefs(style string, limit int) ([]Brief, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, style, urgency, subject, generated_at, document
		FROM briefs
	`
	var args []any
	if style != "" {
		query += " WHERE style = ?"
		args = append(args, style)
	}
	query += " ORDER BY generated_at DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query briefs: %w", err)
	}
	defer rows.Close()

	var out []Brief
	for rows.Next() {
		var b Brief
		if err := rows.Scan(&b.ID, &b.Style, &b.Urgency, &b.Subject, &b.GeneratedAt, &b.Document); err != nil {
			return nil, fmt.Errorf("scan brief: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Prune removes all but the newest keep briefs per style.
// Thread-safe: acquires write lock.
func (s *Store) Prune(keep int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		DELETE FROM briefs WHERE id NOT IN (
			SELECT id FROM (
				SELECT id, ROW_NUMBER() OVER (
					PARTITION BY style ORDER BY generated_at DESC
				) AS rn FROM briefs
			) WHERE rn <= ?
		)
	`, keep)
	if err != nil {
		return fmt.Errorf("prune briefs: %w", err)
	}
	return nil
}
