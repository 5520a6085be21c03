package routing

import (
	"strings"

	"github.com/spirithubcafe/spirithub/internal/domain"
)

// ─── Path Rewriting ─────────────────────────────────────────────────────────

// BuildAdminPathForRegion rebuilds an admin path under the target region,
// keeping everything after the first "admin" segment. Switching an
// operator's region must preserve their exact sub-route (list filters,
// edit-by-id) instead of bouncing them to the dashboard root.
//
//	BuildAdminPathForRegion("/om/admin/products/edit/1", "sa") = "/sa/admin/products/edit/1"
//	BuildAdminPathForRegion("/admin", "sa")                    = "/sa/admin"
func BuildAdminPathForRegion(currentPath string, target domain.RegionCode) string {
	segs := segments(currentPath)
	suffix := ""
	if i := adminSegmentIndex(segs); i >= 0 && i+1 < len(segs) {
		suffix = "/" + strings.Join(segs[i+1:], "/")
	}
	return "/" + target.String() + "/admin" + suffix
}

// NormalizeAdminPath strips a leading /om or /sa segment so downstream
// comparisons ("is this the dashboard root?") can be written once,
// region-agnostically.
func NormalizeAdminPath(path string) string {
	if region, ok := RegionFromPath(path); ok {
		rest := strings.TrimPrefix(path, "/"+region.String())
		if rest == "" {
			return "/"
		}
		return rest
	}
	return path
}

// BuildStorefrontPath prefixes an unprefixed storefront path with the target
// region, preserving the query string. Used for both the silent redirect and
// the banner's full navigation.
func BuildStorefrontPath(target domain.RegionCode, path, rawQuery string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if path == "/" {
		path = ""
	}
	out := "/" + target.String() + path
	if rawQuery != "" {
		out += "?" + rawQuery
	}
	return out
}
