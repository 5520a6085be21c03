package routing

import (
	"github.com/spirithubcafe/spirithub/internal/domain"
	"github.com/spirithubcafe/spirithub/internal/infra/prefstore"
)

// ─── Region Resolution ──────────────────────────────────────────────────────

// Resolution captures which region applies and why. The reason string feeds
// logs and metrics; precedence questions get answered from data instead of
// guesswork.
type Resolution struct {
	Region domain.RegionCode `json:"region"`
	Reason string            `json:"reason"` // "path-prefix", "admin-preference", "storefront-preference", "default"
}

// Resolver answers "what region applies to this request" for the storefront
// router and the API-base selector. It is pure given the store's contents:
// every read is gated by IsValid, every absence degrades to a defined
// fallback, and nothing here can fail.
type Resolver struct {
	store *prefstore.Store
}

// NewResolver creates a resolver over the preference store.
func NewResolver(store *prefstore.Store) *Resolver {
	return &Resolver{store: store}
}

// StoredStorefrontRegion returns the storefront preference if one is stored
// and valid. Corrupted or foreign values read as absent.
func (r *Resolver) StoredStorefrontRegion() (domain.RegionCode, bool) {
	c := domain.RegionCode(r.store.Get(domain.StorefrontPreferenceKey))
	if c.IsValid() {
		return c, true
	}
	return "", false
}

// PreferredStorefrontRegion returns the visitor-facing region: the stored
// preference, else the default. Geolocation never feeds this resolver; it
// only pre-selects the banner's highlight.
func (r *Resolver) PreferredStorefrontRegion() domain.RegionCode {
	if c, ok := r.StoredStorefrontRegion(); ok {
		return c
	}
	return domain.DefaultRegion
}

// PreferredAdminRegion returns the operator-facing region: the stored admin
// preference, else whatever the storefront resolver says. The fallback is
// one-way — the storefront never reads the admin key.
func (r *Resolver) PreferredAdminRegion() domain.RegionCode {
	c := domain.RegionCode(r.store.Get(domain.AdminPreferenceKey))
	if c.IsValid() {
		return c
	}
	return r.PreferredStorefrontRegion()
}

// ActiveRegionForAPI resolves the region for backend calls issued from a
// given path. Precedence is strict:
//
//  1. A region prefix in the path wins unconditionally — a visitor who
//     navigated to /sa/... must see Saudi data whatever their stored
//     preference says.
//  2. Admin paths use the admin resolver (with its storefront fallback).
//  3. Everything else uses the storefront resolver.
func (r *Resolver) ActiveRegionForAPI(path string) Resolution {
	c := Classify(path)

	if c.HasRegionPrefix {
		return Resolution{Region: c.RegionFromPrefix, Reason: "path-prefix"}
	}

	if c.IsAdminPath {
		return Resolution{Region: r.PreferredAdminRegion(), Reason: "admin-preference"}
	}

	if stored, ok := r.StoredStorefrontRegion(); ok {
		return Resolution{Region: stored, Reason: "storefront-preference"}
	}
	return Resolution{Region: domain.DefaultRegion, Reason: "default"}
}
