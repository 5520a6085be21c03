// Package api provides the HTTP edge for the SpiritHub storefront. It is
// the single source of truth for "what region is this request in": every
// collaborating screen and the API client read the region from here instead
// of re-deriving it ad hoc.
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/spirithubcafe/spirithub/internal/app/routing"
	"github.com/spirithubcafe/spirithub/internal/health"
	"github.com/spirithubcafe/spirithub/internal/infra/metrics"
	"github.com/spirithubcafe/spirithub/internal/infra/prefstore"
)

// Version is reported by /api/version.
const Version = "1.0.0"

// Server is the SpiritHub region edge HTTP server.
type Server struct {
	resolver       *routing.Resolver
	controller     *routing.Controller
	store          *prefstore.Store
	health         *health.Checker // nil when the checker is not running
	metricsEnabled bool
	geoEnabled     bool
}

// NewServer creates a new API server.
func NewServer(resolver *routing.Resolver, controller *routing.Controller, store *prefstore.Store) *Server {
	return &Server{resolver: resolver, controller: controller, store: store}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// EnableGeo enables the coordinate-suggestion endpoint.
func (s *Server) EnableGeo() { s.geoEnabled = true }

// SetHealth sets the health checker surfaced by /health.
func (s *Server) SetHealth(h *health.Checker) { s.health = h }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(corsMiddleware)

	r.Get("/health", s.handleHealth)

	r.Get("/api/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
			"store":  s.store.Driver(),
		})
	})

	r.Get("/api/version", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"version": Version})
	})

	// Region API consumed by the storefront shell and the back office
	r.Route("/api/region", func(r chi.Router) {
		r.Get("/resolve", s.handleResolve)
		r.Get("/banner", s.handleBanner)
		r.Post("/navigate", s.handleNavigate)
		r.Post("/confirm", s.handleConfirm)
		r.Post("/dismiss", s.handleDismiss)
		r.Post("/admin", s.handleAdminSwitch)
		r.Get("/events", s.handleEvents)
		r.Get("/price", s.handlePrice)
		if s.geoEnabled {
			r.Post("/suggest", s.handleSuggest)
		}
	})

	// Prometheus metrics endpoint
	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	// Storefront passthrough: everything else is a page navigation.
	r.With(s.regionContext).Get("/*", s.handleStorefront)

	return r
}

// ─── Region Context ─────────────────────────────────────────────────────────

type contextKey string

const regionKey contextKey = "spirithub-region"

// regionContext resolves the active region once per request and stores it in
// the request context, so handlers and the API client read one consistent
// value instead of each re-deriving it.
func (s *Server) regionContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res := s.resolver.ActiveRegionForAPI(r.URL.Path)
		metrics.Resolutions.WithLabelValues(res.Region.String(), res.Reason).Inc()
		ctx := context.WithValue(r.Context(), regionKey, res)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ResolutionFromContext returns the resolution stored by the region
// middleware. The second result is false outside of it.
func ResolutionFromContext(ctx context.Context) (routing.Resolution, bool) {
	res, ok := ctx.Value(regionKey).(routing.Resolution)
	return res, ok
}

// ─── HTTP Helpers ───────────────────────────────────────────────────────────

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}

// decodeJSON decodes a request body into v.
func decodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(v)
}

// corsMiddleware adds CORS headers for the storefront and back office SPAs.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// handleHealth reports overall health from the checker.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.health == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		return
	}
	status, label := http.StatusOK, "ok"
	if !s.health.IsHealthy() {
		status, label = http.StatusServiceUnavailable, "degraded"
	}
	writeJSON(w, status, map[string]interface{}{
		"status": label,
		"checks": s.health.Statuses(),
	})
}
