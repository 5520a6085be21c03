// Package postgres provides a Postgres-backed preference store for
// deployments that share region state across edge replicas. Connection
// settings come from the environment (DATABASE_URL or DB_* variables),
// matching how the rest of the SpiritHub backend is configured.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/spirithubcafe/spirithub/internal/domain"
)

// DB wraps a pooled Postgres connection with the region schema applied.
type DB struct {
	db *sql.DB
}

// Open connects to Postgres using DATABASE_URL or the DB_* environment
// variables, tunes the pool, and ensures the schema exists.
func Open(ctx context.Context) (*DB, error) {
	dsn := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dsn == "" {
		host := env("DB_HOST", "")
		if host == "" {
			return nil, errors.New("missing DATABASE_URL or DB_HOST")
		}
		port := env("DB_PORT", "5432")
		user := env("DB_USER", "postgres")
		pass := env("DB_PASSWORD", "postgres")
		name := env("DB_NAME", "spirithub")
		ssl := env("DB_SSLMODE", "disable")
		dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", user, pass, host, port, name, ssl)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(intEnv("DB_MAX_OPEN_CONNS", 20))
	db.SetMaxIdleConns(intEnv("DB_MAX_IDLE_CONNS", 5))
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	d := &DB{db: db}
	if err := d.ensureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return d, nil
}

// Close shuts down the connection pool.
func (d *DB) Close() error { return d.db.Close() }

// Ping checks database connectivity.
func (d *DB) Ping() error { return d.db.Ping() }

func (d *DB) ensureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS spirithub_preferences (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS spirithub_region_events (
			id         TEXT PRIMARY KEY,
			scope      TEXT NOT NULL,
			region     TEXT NOT NULL,
			source     TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_spirithub_region_events_created
			ON spirithub_region_events (created_at DESC, id DESC)`,
	}
	for _, stmt := range stmts {
		if _, err := d.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// ─── Preference Repository ──────────────────────────────────────────────────

// SetPreference stores a key-value pair, replacing any previous value.
func (d *DB) SetPreference(key, value string) error {
	_, err := d.db.Exec(
		`INSERT INTO spirithub_preferences (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		key, value,
	)
	return err
}

// GetPreference retrieves a stored value. Absence is an empty string.
func (d *DB) GetPreference(key string) (string, error) {
	var value string
	err := d.db.QueryRow(`SELECT value FROM spirithub_preferences WHERE key = $1`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

// RemovePreference deletes a stored value.
func (d *DB) RemovePreference(key string) error {
	_, err := d.db.Exec(`DELETE FROM spirithub_preferences WHERE key = $1`, key)
	return err
}

// ─── Region Event Log ───────────────────────────────────────────────────────

// InsertRegionEvent records an explicit region selection.
func (d *DB) InsertRegionEvent(e domain.RegionEvent) error {
	_, err := d.db.Exec(
		`INSERT INTO spirithub_region_events (id, scope, region, source, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		e.ID, e.Scope, string(e.Region), e.Source, e.CreatedAt,
	)
	return err
}

// ListRegionEvents returns the most recent region selections, newest first.
func (d *DB) ListRegionEvents(limit int) ([]domain.RegionEvent, error) {
	rows, err := d.db.Query(
		`SELECT id, scope, region, source, created_at
		 FROM spirithub_region_events ORDER BY created_at DESC, id DESC LIMIT $1`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.RegionEvent
	for rows.Next() {
		var e domain.RegionEvent
		var region string
		if err := rows.Scan(&e.ID, &e.Scope, &region, &e.Source, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Region = domain.RegionCode(region)
		events = append(events, e)
	}
	return events, rows.Err()
}

// ─── Env Helpers ────────────────────────────────────────────────────────────

func env(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func intEnv(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
