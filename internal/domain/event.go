package domain

import "time"

// ─── Region Event ───────────────────────────────────────────────────────────

// Scopes for region selections. The storefront and admin back office keep
// independent preferences, so their selections are audited separately.
const (
	ScopeStorefront = "storefront"
	ScopeAdmin      = "admin"
)

// RegionEvent is one explicit region selection, recorded for the back
// office audit trail. Geolocation suggestions are never recorded — only
// choices a user actually confirmed.
type RegionEvent struct {
	ID        string     `json:"id"`
	Scope     string     `json:"scope"`  // "storefront" or "admin"
	Region    RegionCode `json:"region"`
	Source    string     `json:"source"` // "banner", "admin-switcher", "cli"
	CreatedAt time.Time  `json:"created_at"`
}
