// Package metrics provides Prometheus metrics for the SpiritHub region
// edge: resolution outcomes, redirect/banner activity, geolocation
// suggestions, and store health.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Resolution ─────────────────────────────────────────────────────────────

// Resolutions tracks region resolutions by region and precedence reason.
var Resolutions = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "spirithub",
	Name:      "region_resolutions_total",
	Help:      "Region resolutions by region and reason.",
}, []string{"region", "reason"})

// ─── Redirects & Banner ─────────────────────────────────────────────────────

// SilentRedirects tracks redirects issued from a stored preference.
var SilentRedirects = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "spirithub",
	Name:      "silent_redirects_total",
	Help:      "Silent redirects to a remembered region.",
}, []string{"region"})

// BannerShown tracks confirmation banners opened for new visitors.
var BannerShown = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "spirithub",
	Name:      "banner_shown_total",
	Help:      "Confirmation banners opened.",
})

// BannerConfirmed tracks explicit region confirmations by region.
var BannerConfirmed = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "spirithub",
	Name:      "banner_confirmed_total",
	Help:      "Banner confirmations by chosen region.",
}, []string{"region"})

// BannerDismissed tracks dismissals (non-sticky; nothing is persisted).
var BannerDismissed = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "spirithub",
	Name:      "banner_dismissed_total",
	Help:      "Banner dismissals without a region choice.",
})

// ─── Geolocation ────────────────────────────────────────────────────────────

// GeoSuggestions tracks geolocation suggestion outcomes
// ("om", "sa", "none", "stale").
var GeoSuggestions = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "spirithub",
	Name:      "geo_suggestions_total",
	Help:      "Geolocation suggestion outcomes.",
}, []string{"outcome"})

// ─── Store ──────────────────────────────────────────────────────────────────

// StoreHealthy tracks preference store connectivity (1=healthy, 0=down).
var StoreHealthy = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "spirithub",
	Name:      "prefstore_healthy",
	Help:      "Preference store connectivity (1=healthy, 0=down).",
})
