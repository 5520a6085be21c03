package routing

import (
	"testing"

	"github.com/spirithubcafe/spirithub/internal/domain"
)

// ─── Admin Rewrites ─────────────────────────────────────────────────────────

func TestBuildAdminPathForRegion_PreservesSubRoute(t *testing.T) {
	cases := []struct {
		path   string
		target domain.RegionCode
		want   string
	}{
		{"/om/admin/products/edit/1", domain.RegionSaudi, "/sa/admin/products/edit/1"},
		{"/admin", domain.RegionSaudi, "/sa/admin"},
		{"/admin/orders", domain.RegionOman, "/om/admin/orders"},
		{"/sa/admin", domain.RegionOman, "/om/admin"},
		// No admin segment at all: bare admin root for the target.
		{"/products", domain.RegionSaudi, "/sa/admin"},
		{"", domain.RegionOman, "/om/admin"},
	}
	for _, tc := range cases {
		if got := BuildAdminPathForRegion(tc.path, tc.target); got != tc.want {
			t.Errorf("BuildAdminPathForRegion(%q, %s) = %q, want %q",
				tc.path, tc.target, got, tc.want)
		}
	}
}

func TestBuildAdminPathForRegion_RoundTrip(t *testing.T) {
	for _, r := range domain.AllRegions() {
		for _, path := range []string{"/admin/orders", "/om/admin", "/anything"} {
			rebuilt := BuildAdminPathForRegion(path, r)
			got, ok := RegionFromPath(rebuilt)
			if !ok || got != r {
				t.Errorf("RegionFromPath(BuildAdminPathForRegion(%q, %s)) = (%q, %v), want %s",
					path, r, got, ok, r)
			}
		}
	}
}

func TestNormalizeAdminPath(t *testing.T) {
	cases := []struct{ path, want string }{
		{"/om/admin/orders", "/admin/orders"},
		{"/sa/admin", "/admin"},
		{"/admin/orders", "/admin/orders"}, // already unprefixed
		{"/om", "/"},
	}
	for _, tc := range cases {
		if got := NormalizeAdminPath(tc.path); got != tc.want {
			t.Errorf("NormalizeAdminPath(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

// ─── Storefront Rewrites ────────────────────────────────────────────────────

func TestBuildStorefrontPath(t *testing.T) {
	cases := []struct {
		region      domain.RegionCode
		path, query string
		want        string
	}{
		{domain.RegionSaudi, "/products", "", "/sa/products"},
		{domain.RegionSaudi, "/products", "sort=price", "/sa/products?sort=price"},
		{domain.RegionOman, "/", "", "/om"},
		{domain.RegionOman, "/", "utm=mail", "/om?utm=mail"},
	}
	for _, tc := range cases {
		if got := BuildStorefrontPath(tc.region, tc.path, tc.query); got != tc.want {
			t.Errorf("BuildStorefrontPath(%s, %q, %q) = %q, want %q",
				tc.region, tc.path, tc.query, got, tc.want)
		}
	}
}
