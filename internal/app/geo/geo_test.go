package geo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spirithubcafe/spirithub/internal/domain"
)

// ─── Bounding Boxes ─────────────────────────────────────────────────────────

func TestRegionFromCoordinates(t *testing.T) {
	cases := []struct {
		name     string
		lat, lng float64
		region   domain.RegionCode
		ok       bool
	}{
		{"muscat", 23.59, 58.38, domain.RegionOman, true},
		{"salalah", 17.02, 54.09, domain.RegionOman, true},
		{"riyadh", 24.71, 46.68, domain.RegionSaudi, true},
		{"jeddah", 21.49, 39.19, domain.RegionSaudi, true},
		{"cairo", 30.04, 31.24, "", false},
		{"mumbai", 19.08, 72.88, "", false},
		{"south atlantic", -30.0, -20.0, "", false},
	}
	for _, tc := range cases {
		region, ok := RegionFromCoordinates(tc.lat, tc.lng)
		if ok != tc.ok || region != tc.region {
			t.Errorf("%s: RegionFromCoordinates(%v, %v) = (%q, %v), want (%q, %v)",
				tc.name, tc.lat, tc.lng, region, ok, tc.region, tc.ok)
		}
	}
}

func TestRegionFromCoordinates_OverlapGoesToOman(t *testing.T) {
	// The empty quarter around the Oman/Saudi border falls inside both
	// boxes; Oman is checked first and wins.
	region, ok := RegionFromCoordinates(19.0, 53.0)
	if !ok || region != domain.RegionOman {
		t.Errorf("overlap point = (%q, %v), want om (first-box tie-break)", region, ok)
	}
}

// ─── Suggester ──────────────────────────────────────────────────────────────

type fixedLocator struct {
	pos Coordinates
	err error
}

func (l fixedLocator) CurrentPosition(context.Context) (Coordinates, error) {
	return l.pos, l.err
}

func TestSuggester_Suggest(t *testing.T) {
	s := NewSuggester(fixedLocator{pos: Coordinates{Lat: 24.71, Lng: 46.68}}, 0)
	region, ok := s.Suggest(context.Background())
	if !ok || region != domain.RegionSaudi {
		t.Errorf("Suggest() = (%q, %v), want sa", region, ok)
	}
}

func TestSuggester_FailuresAreNoSuggestion(t *testing.T) {
	// Locator error (permission denied, no provider).
	s := NewSuggester(fixedLocator{err: errors.New("denied")}, 0)
	if _, ok := s.Suggest(context.Background()); ok {
		t.Error("locator error should yield no suggestion")
	}

	// Position outside both markets.
	s = NewSuggester(fixedLocator{pos: Coordinates{Lat: 48.85, Lng: 2.35}}, 0)
	if _, ok := s.Suggest(context.Background()); ok {
		t.Error("out-of-box position should yield no suggestion")
	}

	// No locator at all.
	s = NewSuggester(nil, 0)
	if _, ok := s.Suggest(context.Background()); ok {
		t.Error("nil locator should yield no suggestion")
	}
}

// slowLocator never answers before the context deadline.
type slowLocator struct{}

func (slowLocator) CurrentPosition(ctx context.Context) (Coordinates, error) {
	select {
	case <-ctx.Done():
		return Coordinates{}, ctx.Err()
	case <-time.After(10 * time.Second):
		return Coordinates{Lat: 23.59, Lng: 58.38}, nil
	}
}

func TestSuggester_TimeoutIsNoSuggestion(t *testing.T) {
	s := NewSuggester(slowLocator{}, 10*time.Millisecond)
	start := time.Now()
	if _, ok := s.Suggest(context.Background()); ok {
		t.Error("timed-out lookup should yield no suggestion")
	}
	if time.Since(start) > time.Second {
		t.Error("Suggest() did not honor its timeout")
	}
}
