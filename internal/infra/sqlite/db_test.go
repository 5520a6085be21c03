package sqlite

import (
	"testing"
	"time"

	"github.com/spirithubcafe/spirithub/internal/domain"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	d, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func TestDB_PreferenceRoundTrip(t *testing.T) {
	d := openTestDB(t)

	v, err := d.GetPreference(domain.StorefrontPreferenceKey)
	if err != nil {
		t.Fatalf("GetPreference() error: %v", err)
	}
	if v != "" {
		t.Errorf("fresh db value = %q, want empty", v)
	}

	if err := d.SetPreference(domain.StorefrontPreferenceKey, "om"); err != nil {
		t.Fatalf("SetPreference() error: %v", err)
	}
	// Overwrite on every subsequent selection.
	if err := d.SetPreference(domain.StorefrontPreferenceKey, "sa"); err != nil {
		t.Fatalf("SetPreference() overwrite error: %v", err)
	}

	v, err = d.GetPreference(domain.StorefrontPreferenceKey)
	if err != nil {
		t.Fatalf("GetPreference() error: %v", err)
	}
	if v != "sa" {
		t.Errorf("value = %q, want sa", v)
	}

	if err := d.RemovePreference(domain.StorefrontPreferenceKey); err != nil {
		t.Fatalf("RemovePreference() error: %v", err)
	}
	v, _ = d.GetPreference(domain.StorefrontPreferenceKey)
	if v != "" {
		t.Errorf("value after remove = %q, want empty", v)
	}
}

func TestDB_RegionEvents(t *testing.T) {
	d := openTestDB(t)

	base := time.Now().Add(-time.Minute)
	events := []domain.RegionEvent{
		{ID: "ev-1", Scope: domain.ScopeStorefront, Region: domain.RegionOman, Source: "banner", CreatedAt: base},
		{ID: "ev-2", Scope: domain.ScopeAdmin, Region: domain.RegionSaudi, Source: "admin-switcher", CreatedAt: base.Add(30 * time.Second)},
	}
	for _, e := range events {
		if err := d.InsertRegionEvent(e); err != nil {
			t.Fatalf("InsertRegionEvent(%s) error: %v", e.ID, err)
		}
	}

	got, err := d.ListRegionEvents(10)
	if err != nil {
		t.Fatalf("ListRegionEvents() error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListRegionEvents() = %d entries, want 2", len(got))
	}
	if got[0].ID != "ev-2" {
		t.Errorf("newest event = %s, want ev-2", got[0].ID)
	}
	if got[0].Region != domain.RegionSaudi {
		t.Errorf("newest event region = %s, want sa", got[0].Region)
	}

	limited, err := d.ListRegionEvents(1)
	if err != nil {
		t.Fatalf("ListRegionEvents(1) error: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("ListRegionEvents(1) = %d entries, want 1", len(limited))
	}
}
