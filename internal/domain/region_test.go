package domain

import "testing"

// ─── Region Codes ───────────────────────────────────────────────────────────

func TestRegionCode_IsValid(t *testing.T) {
	if !RegionOman.IsValid() {
		t.Error("om should be valid")
	}
	if !RegionSaudi.IsValid() {
		t.Error("sa should be valid")
	}
	for _, bad := range []string{"", "OM", "uae", "omelette", "sa "} {
		if IsRegionCode(bad) {
			t.Errorf("IsRegionCode(%q) = true, want false", bad)
		}
	}
}

func TestAllRegions_FixedAtTwo(t *testing.T) {
	all := AllRegions()
	if len(all) != 2 {
		t.Fatalf("AllRegions() = %d entries, want 2", len(all))
	}
	for _, c := range all {
		if _, ok := RegionFor(c); !ok {
			t.Errorf("RegionFor(%s) missing registry entry", c)
		}
	}
}

// ─── Registry Data ──────────────────────────────────────────────────────────

func TestRegionFor_CurrencyData(t *testing.T) {
	om, ok := RegionFor(RegionOman)
	if !ok {
		t.Fatal("RegionFor(om) not found")
	}
	if om.CurrencyCode != "OMR" {
		t.Errorf("om currency = %q, want OMR", om.CurrencyCode)
	}

	sa, ok := RegionFor(RegionSaudi)
	if !ok {
		t.Fatal("RegionFor(sa) not found")
	}
	if sa.CurrencyCode != "SAR" {
		t.Errorf("sa currency = %q, want SAR", sa.CurrencyCode)
	}
}

func TestMustRegion_FallsBackToDefault(t *testing.T) {
	r := MustRegion(RegionCode("nope"))
	if r.Code != DefaultRegion {
		t.Errorf("MustRegion(invalid).Code = %s, want %s", r.Code, DefaultRegion)
	}
}
