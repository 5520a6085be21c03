// Package sqlite provides SQLite-based persistent storage for SpiritHub.
// Uses WAL mode for concurrent reads and crash-safe writes.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)

	"github.com/spirithubcafe/spirithub/internal/domain"
)

// DB wraps a SQLite connection with WAL mode and migrations.
type DB struct {
	db *sql.DB
}

// Open creates or opens the SQLite database at dir/state.db.
// Enables WAL mode, foreign keys, and 5-second busy timeout.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dir, "state.db")
	dsn := dbPath + "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	// Connection pool settings for SQLite
	db.SetMaxOpenConns(1) // SQLite is single-writer
	db.SetMaxIdleConns(1)

	d := &DB{db: db}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return d, nil
}

// Close cleanly shuts down the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Ping checks database connectivity.
func (d *DB) Ping() error {
	return d.db.Ping()
}

// migrate runs idempotent schema migrations.
func (d *DB) migrate() error {
	migrations := []string{
		// Key-value store for region preferences
		// (spirithub-region, spirithub-admin-region)
		`CREATE TABLE IF NOT EXISTS preferences (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,

		// Audit trail of explicit region selections
		`CREATE TABLE IF NOT EXISTS region_events (
			id         TEXT PRIMARY KEY,
			scope      TEXT NOT NULL,
			region     TEXT NOT NULL,
			source     TEXT NOT NULL,
			created_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_region_events_created ON region_events(created_at)`,
	}

	for _, m := range migrations {
		if _, err := d.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}

// ─── Preference Repository ──────────────────────────────────────────────────

// SetPreference stores a key-value pair, replacing any previous value.
func (d *DB) SetPreference(key, value string) error {
	_, err := d.db.Exec(
		`INSERT INTO preferences (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value`,
		key, value,
	)
	return err
}

// GetPreference retrieves a stored value. Absence is an empty string,
// not an error.
func (d *DB) GetPreference(key string) (string, error) {
	var value string
	err := d.db.QueryRow(`SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

// RemovePreference deletes a stored value. Deleting an absent key is a no-op.
func (d *DB) RemovePreference(key string) error {
	_, err := d.db.Exec(`DELETE FROM preferences WHERE key = ?`, key)
	return err
}

// ─── Region Event Log ───────────────────────────────────────────────────────

// InsertRegionEvent records an explicit region selection.
func (d *DB) InsertRegionEvent(e domain.RegionEvent) error {
	_, err := d.db.Exec(
		`INSERT INTO region_events (id, scope, region, source, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.Scope, string(e.Region), e.Source, e.CreatedAt.Unix(),
	)
	return err
}

// ListRegionEvents returns the most recent region selections, newest first.
func (d *DB) ListRegionEvents(limit int) ([]domain.RegionEvent, error) {
	rows, err := d.db.Query(
		`SELECT id, scope, region, source, created_at
		 FROM region_events ORDER BY created_at DESC, id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.RegionEvent
	for rows.Next() {
		var e domain.RegionEvent
		var region string
		var createdAt int64
		if err := rows.Scan(&e.ID, &e.Scope, &region, &e.Source, &createdAt); err != nil {
			return nil, err
		}
		e.Region = domain.RegionCode(region)
		e.CreatedAt = time.Unix(createdAt, 0)
		events = append(events, e)
	}
	return events, rows.Err()
}
