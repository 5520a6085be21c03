// Package domain defines the region model for the SpiritHub storefront.
// Two markets are supported — Oman and Saudi Arabia — each with its own
// currency and its own admin preference. Regions are fixed at process start;
// nothing creates or destroys them at runtime.
package domain

// ─── Region Codes ───────────────────────────────────────────────────────────

// RegionCode uniquely identifies a storefront region.
type RegionCode string

const (
	RegionOman  RegionCode = "om"
	RegionSaudi RegionCode = "sa"
)

// DefaultRegion is where unprefixed storefront paths land when no
// preference has ever been stored.
const DefaultRegion = RegionOman

// AllRegions returns all supported storefront regions.
func AllRegions() []RegionCode {
	return []RegionCode{RegionOman, RegionSaudi}
}

// IsValid reports whether c is a recognized region code. It gates every
// untrusted input — storage contents, URL path segments, request bodies —
// before the value is treated as a region.
func (c RegionCode) IsValid() bool {
	switch c {
	case RegionOman, RegionSaudi:
		return true
	}
	return false
}

// IsRegionCode reports whether a raw string is a valid region code.
func IsRegionCode(s string) bool {
	return RegionCode(s).IsValid()
}

// String returns the region code as a plain string.
func (c RegionCode) String() string { return string(c) }

// ─── Region Value Objects ───────────────────────────────────────────────────

// Region describes one regional storefront: display names for the bilingual
// UI and the currency used for all prices in that market.
type Region struct {
	Code           RegionCode `json:"code"`
	DisplayName    string     `json:"display_name"`
	DisplayNameAr  string     `json:"display_name_ar"`
	CurrencyCode   string     `json:"currency_code"`
	CurrencySymbol string     `json:"currency_symbol"`
}

var regions = map[RegionCode]Region{
	RegionOman: {
		Code:           RegionOman,
		DisplayName:    "Oman",
		DisplayNameAr:  "عُمان",
		CurrencyCode:   "OMR",
		CurrencySymbol: "ر.ع.",
	},
	RegionSaudi: {
		Code:           RegionSaudi,
		DisplayName:    "Saudi Arabia",
		DisplayNameAr:  "السعودية",
		CurrencyCode:   "SAR",
		CurrencySymbol: "ر.س",
	},
}

// RegionFor returns the Region for a code. The second result is false for
// anything that fails IsValid.
func RegionFor(c RegionCode) (Region, bool) {
	r, ok := regions[c]
	return r, ok
}

// MustRegion returns the Region for a known-valid code, falling back to the
// default region's entry for anything else. Callers that already validated
// the code use this to avoid a second ok-check.
func MustRegion(c RegionCode) Region {
	if r, ok := regions[c]; ok {
		return r
	}
	return regions[DefaultRegion]
}

// ─── Preference Keys ────────────────────────────────────────────────────────

// Storage keys for the two independent region preferences. The storefront
// and admin back office remember their regions separately; only the admin
// read path falls back to the storefront key, never the reverse.
const (
	StorefrontPreferenceKey = "spirithub-region"
	AdminPreferenceKey      = "spirithub-admin-region"
)
