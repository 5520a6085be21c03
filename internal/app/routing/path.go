// Package routing decides which regional storefront every request belongs
// to. It classifies paths, rewrites them to carry an explicit region prefix,
// resolves the active region for API calls, and drives the redirect /
// confirmation-banner flow for first-time visitors.
package routing

import (
	"strings"

	"github.com/spirithubcafe/spirithub/internal/domain"
)

// ─── Path Classification ────────────────────────────────────────────────────

// Classification is derived fresh from the path on every navigation; it is
// never stored.
type Classification struct {
	HasRegionPrefix  bool
	RegionFromPrefix domain.RegionCode // zero value when HasRegionPrefix is false
	IsAdminPath      bool
}

// RegionFromPath returns the region encoded by a leading /om or /sa path
// segment. The match is segment-aware: "/om" and "/om/products" carry the
// Oman prefix, "/omelette-shop" does not. Naive prefix matching is a known
// failure mode here, so only an exact first segment counts.
func RegionFromPath(path string) (domain.RegionCode, bool) {
	seg := firstSegment(path)
	if seg == "" {
		return "", false
	}
	if c := domain.RegionCode(seg); c.IsValid() {
		return c, true
	}
	return "", false
}

// IsAdminPath reports whether any segment of the path equals "admin". Both
// the prefixed form /om/admin/... and the legacy unprefixed /admin/... are
// admin paths.
func IsAdminPath(path string) bool {
	return adminSegmentIndex(segments(path)) >= 0
}

// Classify inspects a path once and returns everything the redirect
// controller and the resolver need to know about it.
func Classify(path string) Classification {
	c := Classification{IsAdminPath: IsAdminPath(path)}
	if region, ok := RegionFromPath(path); ok {
		c.HasRegionPrefix = true
		c.RegionFromPrefix = region
	}
	return c
}

// ─── Segment Helpers ────────────────────────────────────────────────────────

// segments splits a path into its non-empty segments.
func segments(path string) []string {
	var segs []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

// firstSegment returns the first non-empty path segment, or "".
func firstSegment(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		return path[:i]
	}
	return path
}

// adminSegmentIndex returns the index of the first "admin" segment, or -1.
func adminSegmentIndex(segs []string) int {
	for i, s := range segs {
		if s == "admin" {
			return i
		}
	}
	return -1
}
