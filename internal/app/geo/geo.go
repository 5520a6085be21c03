// Package geo maps coordinates to a suggested storefront region using
// static bounding boxes. It performs no network I/O itself; a caller-supplied
// Locator produces coordinates, and every failure on that path collapses to
// "no suggestion".
package geo

import (
	"context"
	"time"

	"github.com/spirithubcafe/spirithub/internal/domain"
)

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Locator supplies a coarse, best-effort current position. Implementations
// may be unavailable or denied; the suggester treats any error as absence.
type Locator interface {
	CurrentPosition(ctx context.Context) (Coordinates, error)
}

// ─── Bounding Boxes ─────────────────────────────────────────────────────────

// boundingBox is an inclusive lat/lng rectangle.
type boundingBox struct {
	minLat, maxLat float64
	minLng, maxLng float64
}

func (b boundingBox) contains(lat, lng float64) bool {
	return lat >= b.minLat && lat <= b.maxLat && lng >= b.minLng && lng <= b.maxLng
}

// The two boxes are not disjoint: they overlap along the Oman/Saudi border.
// Oman is evaluated first and wins the overlap. The ordering is the
// contract; do not reorder the checks.
var (
	omanBox  = boundingBox{minLat: 16.6, maxLat: 26.4, minLng: 52.0, maxLng: 59.9}
	saudiBox = boundingBox{minLat: 16.3, maxLat: 32.2, minLng: 34.5, maxLng: 55.7}
)

// RegionFromCoordinates returns the region whose bounding box contains the
// point, or false if it falls in neither.
func RegionFromCoordinates(lat, lng float64) (domain.RegionCode, bool) {
	if omanBox.contains(lat, lng) {
		return domain.RegionOman, true
	}
	if saudiBox.contains(lat, lng) {
		return domain.RegionSaudi, true
	}
	return "", false
}

// ─── Suggester ──────────────────────────────────────────────────────────────

// DefaultTimeout bounds the position lookup. The suggestion is fire-and-
// forget; it can only update a banner already on screen, so a slow lookup
// is worth less than a fast failure.
const DefaultTimeout = 3 * time.Second

// Suggester turns a Locator into region suggestions.
type Suggester struct {
	locator Locator
	timeout time.Duration
}

// NewSuggester wraps a locator. A nil locator yields a suggester that never
// suggests. timeout <= 0 uses DefaultTimeout.
func NewSuggester(locator Locator, timeout time.Duration) *Suggester {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Suggester{locator: locator, timeout: timeout}
}

// Suggest returns a region suggestion from the current position, or false
// when the locator is absent, denied, times out, or the position falls
// outside both markets. None of these are errors for the caller.
func (s *Suggester) Suggest(ctx context.Context) (domain.RegionCode, bool) {
	if s == nil || s.locator == nil {
		return "", false
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	pos, err := s.locator.CurrentPosition(ctx)
	if err != nil {
		return "", false
	}
	return RegionFromCoordinates(pos.Lat, pos.Lng)
}
