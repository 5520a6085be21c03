package routing

import (
	"testing"

	"github.com/spirithubcafe/spirithub/internal/domain"
	"github.com/spirithubcafe/spirithub/internal/infra/prefstore"
)

func newTestStore(t *testing.T) *prefstore.Store {
	t.Helper()
	return prefstore.New(prefstore.NewMemory(), "memory")
}

// ─── Storefront Resolution ──────────────────────────────────────────────────

func TestResolver_StorefrontDefault(t *testing.T) {
	r := NewResolver(newTestStore(t))
	if got := r.PreferredStorefrontRegion(); got != domain.RegionOman {
		t.Errorf("unset preference = %s, want om", got)
	}
}

func TestResolver_StorefrontStored(t *testing.T) {
	store := newTestStore(t)
	store.Set(domain.StorefrontPreferenceKey, "sa")
	r := NewResolver(store)
	if got := r.PreferredStorefrontRegion(); got != domain.RegionSaudi {
		t.Errorf("stored sa resolved to %s", got)
	}
}

func TestResolver_CorruptedValueReadsAsAbsent(t *testing.T) {
	store := newTestStore(t)
	store.Set(domain.StorefrontPreferenceKey, "france")
	r := NewResolver(store)
	if got := r.PreferredStorefrontRegion(); got != domain.DefaultRegion {
		t.Errorf("corrupted preference resolved to %s, want default", got)
	}
	if _, ok := r.StoredStorefrontRegion(); ok {
		t.Error("corrupted value should read as absent")
	}
}

// ─── Admin Resolution ───────────────────────────────────────────────────────

func TestResolver_AdminFallsBackToStorefront(t *testing.T) {
	store := newTestStore(t)
	store.Set(domain.StorefrontPreferenceKey, "sa")
	r := NewResolver(store)
	if got := r.PreferredAdminRegion(); got != domain.RegionSaudi {
		t.Errorf("admin fallback = %s, want sa (storefront value)", got)
	}
}

func TestResolver_AdminIndependentWhenSet(t *testing.T) {
	store := newTestStore(t)
	store.Set(domain.StorefrontPreferenceKey, "sa")
	store.Set(domain.AdminPreferenceKey, "om")
	r := NewResolver(store)
	if got := r.PreferredAdminRegion(); got != domain.RegionOman {
		t.Errorf("admin region = %s, want om", got)
	}
	// The fallback is one-way: storefront never reads the admin key.
	store.Remove(domain.StorefrontPreferenceKey)
	if got := r.PreferredStorefrontRegion(); got != domain.DefaultRegion {
		t.Errorf("storefront region = %s, want default (never the admin key)", got)
	}
}

// ─── API Precedence ─────────────────────────────────────────────────────────

func TestResolver_ActiveRegionForAPI_PrefixWins(t *testing.T) {
	store := newTestStore(t)
	store.Set(domain.StorefrontPreferenceKey, "om")
	store.Set(domain.AdminPreferenceKey, "om")
	r := NewResolver(store)

	// A visitor who navigated to /sa/... must see Saudi data even though
	// every stored preference says Oman.
	for _, path := range []string{"/sa", "/sa/products", "/sa/admin/orders"} {
		res := r.ActiveRegionForAPI(path)
		if res.Region != domain.RegionSaudi {
			t.Errorf("ActiveRegionForAPI(%q) = %s, want sa", path, res.Region)
		}
		if res.Reason != "path-prefix" {
			t.Errorf("ActiveRegionForAPI(%q) reason = %q, want path-prefix", path, res.Reason)
		}
	}
}

func TestResolver_ActiveRegionForAPI_AdminPath(t *testing.T) {
	store := newTestStore(t)
	store.Set(domain.StorefrontPreferenceKey, "om")
	r := NewResolver(store)

	// Legacy unprefixed admin path, no admin preference: the admin
	// resolver's storefront fallback applies.
	res := r.ActiveRegionForAPI("/admin/orders")
	if res.Region != domain.RegionOman {
		t.Errorf("admin path region = %s, want om", res.Region)
	}
	if res.Reason != "admin-preference" {
		t.Errorf("admin path reason = %q, want admin-preference", res.Reason)
	}

	store.Set(domain.AdminPreferenceKey, "sa")
	res = r.ActiveRegionForAPI("/admin/orders")
	if res.Region != domain.RegionSaudi {
		t.Errorf("admin path with admin pref = %s, want sa", res.Region)
	}
}

func TestResolver_ActiveRegionForAPI_StorefrontFallback(t *testing.T) {
	store := newTestStore(t)
	r := NewResolver(store)

	res := r.ActiveRegionForAPI("/products")
	if res.Region != domain.DefaultRegion || res.Reason != "default" {
		t.Errorf("fresh visitor resolution = %+v, want om/default", res)
	}

	store.Set(domain.StorefrontPreferenceKey, "sa")
	res = r.ActiveRegionForAPI("/products")
	if res.Region != domain.RegionSaudi || res.Reason != "storefront-preference" {
		t.Errorf("stored visitor resolution = %+v, want sa/storefront-preference", res)
	}
}
