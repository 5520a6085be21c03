// Package prefstore is the durable key-value store behind region
// preferences. The facade never returns an error to callers: region
// resolution sits on the hot path of every navigation, so a broken backend
// degrades to "no preference stored" instead of breaking routing.
package prefstore

import (
	"log"
	"sync"

	"github.com/spirithubcafe/spirithub/internal/domain"
)

// Backend is the storage contract the facade wraps. Implemented by the
// sqlite store (default), the Postgres store, and the in-memory fallback.
type Backend interface {
	GetPreference(key string) (string, error)
	SetPreference(key, value string) error
	RemovePreference(key string) error
	InsertRegionEvent(e domain.RegionEvent) error
	ListRegionEvents(limit int) ([]domain.RegionEvent, error)
	Ping() error
	Close() error
}

// Store degrades every backend failure to absence. Reads answer "" and
// writes become no-ops rather than surfacing an error.
type Store struct {
	backend Backend
	driver  string
}

// New wraps a backend. driver names the backend for /api/status and metrics.
func New(backend Backend, driver string) *Store {
	return &Store{backend: backend, driver: driver}
}

// Driver returns the active backend name ("sqlite", "postgres", "memory").
func (s *Store) Driver() string { return s.driver }

// Get returns the stored value for key, or "" if absent or the backend
// failed. Callers validate the value before trusting it.
func (s *Store) Get(key string) string {
	v, err := s.backend.GetPreference(key)
	if err != nil {
		log.Printf("[prefstore] get %s failed: %v (treating as absent)", key, err)
		return ""
	}
	return v
}

// Set stores a value. Backend failures are logged and swallowed.
func (s *Store) Set(key, value string) {
	if err := s.backend.SetPreference(key, value); err != nil {
		log.Printf("[prefstore] set %s failed: %v (preference not persisted)", key, err)
	}
}

// Remove deletes a stored value. Backend failures are logged and swallowed.
func (s *Store) Remove(key string) {
	if err := s.backend.RemovePreference(key); err != nil {
		log.Printf("[prefstore] remove %s failed: %v", key, err)
	}
}

// RecordEvent appends to the region selection audit trail, best effort.
func (s *Store) RecordEvent(e domain.RegionEvent) {
	if err := s.backend.InsertRegionEvent(e); err != nil {
		log.Printf("[prefstore] record event failed: %v", err)
	}
}

// Events returns the most recent region selections, newest first. A failed
// backend yields an empty list.
func (s *Store) Events(limit int) []domain.RegionEvent {
	events, err := s.backend.ListRegionEvents(limit)
	if err != nil {
		log.Printf("[prefstore] list events failed: %v", err)
		return nil
	}
	return events
}

// Ping reports backend connectivity for health checks. This is the one
// place a backend error is surfaced, and it is never on the routing path.
func (s *Store) Ping() error { return s.backend.Ping() }

// Close shuts down the backend.
func (s *Store) Close() error { return s.backend.Close() }

// ─── Memory Backend ─────────────────────────────────────────────────────────

// Memory is the degraded backend used when no durable store can be opened.
// Preferences survive within the process only; a restart re-prompts, which
// is the documented behavior for visitors without storage.
type Memory struct {
	mu     sync.RWMutex
	prefs  map[string]string
	events []domain.RegionEvent
}

// NewMemory creates an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{prefs: make(map[string]string)}
}

func (m *Memory) GetPreference(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.prefs[key], nil
}

func (m *Memory) SetPreference(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs[key] = value
	return nil
}

func (m *Memory) RemovePreference(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.prefs, key)
	return nil
}

func (m *Memory) InsertRegionEvent(e domain.RegionEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, e)
	return nil
}

func (m *Memory) ListRegionEvents(limit int) ([]domain.RegionEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.RegionEvent, 0, limit)
	for i := len(m.events) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.events[i])
	}
	return out, nil
}

func (m *Memory) Ping() error { return nil }

func (m *Memory) Close() error { return nil }
