package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/spirithubcafe/spirithub/internal/app/currency"
	"github.com/spirithubcafe/spirithub/internal/app/geo"
	"github.com/spirithubcafe/spirithub/internal/app/routing"
	"github.com/spirithubcafe/spirithub/internal/domain"
)

// ─── Resolution & Banner ────────────────────────────────────────────────────

// handleResolve answers "what region applies to this path" for the API
// client and currency formatter. GET /api/region/resolve?path=/sa/products
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		path = "/"
	}
	res := s.resolver.ActiveRegionForAPI(path)
	region := domain.MustRegion(res.Region)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"region": region,
		"reason": res.Reason,
	})
}

// handleBanner returns the confirmation banner's current state.
func (s *Server) handleBanner(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.controller.Banner())
}

// ─── Navigation Flow ────────────────────────────────────────────────────────

type navigateRequest struct {
	Path  string `json:"path"`
	Query string `json:"query"`
}

// handleNavigate reports what the storefront should do for a navigation:
// nothing, a silent replace-redirect, or show the banner and wait.
func (s *Server) handleNavigate(w http.ResponseWriter, r *http.Request) {
	var req navigateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if req.Path == "" {
		req.Path = "/"
	}

	decision := s.controller.Navigate(req.Path, req.Query)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"decision": decision,
		"banner":   s.controller.Banner(),
	})
}

type confirmRequest struct {
	Region string `json:"region"`
}

// handleConfirm persists the visitor's region choice and returns the target
// for the full page navigation. The storefront must hard-load the target so
// every region-scoped cache and client reinitializes.
func (s *Server) handleConfirm(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	target, err := s.controller.Confirm(domain.RegionCode(req.Region))
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown region "+strconv.Quote(req.Region))
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"target":     target,
		"navigation": "full", // hard load, not a client-side transition
	})
}

// handleDismiss hides the banner without persisting anything.
func (s *Server) handleDismiss(w http.ResponseWriter, r *http.Request) {
	s.controller.Dismiss()
	writeJSON(w, http.StatusOK, s.controller.Banner())
}

type suggestRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// handleSuggest takes coordinates the storefront obtained from the browser
// geolocation API and pre-selects the matching region on the banner. The
// edge never looks up positions itself; a point outside both markets leaves
// the selection alone.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req suggestRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	region, ok := geo.RegionFromCoordinates(req.Lat, req.Lng)
	s.controller.ApplySuggestion(region, ok)
	writeJSON(w, http.StatusOK, s.controller.Banner())
}

// ─── Admin Switch ───────────────────────────────────────────────────────────

type adminSwitchRequest struct {
	Region string `json:"region"`
	Path   string `json:"path"`
}

// handleAdminSwitch persists the operator's region and returns their current
// admin sub-route rebuilt under the new region.
func (s *Server) handleAdminSwitch(w http.ResponseWriter, r *http.Request) {
	var req adminSwitchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	target, err := routing.SwitchAdminRegion(s.store, domain.RegionCode(req.Region), req.Path)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown region "+strconv.Quote(req.Region))
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"target": target})
}

// ─── Audit & Pricing ────────────────────────────────────────────────────────

// handleEvents lists recent explicit region selections for the back office.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 500 {
			writeError(w, http.StatusBadRequest, "limit must be 1-500")
			return
		}
		limit = n
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"events": s.store.Events(limit),
	})
}

// handlePrice formats an amount in the active region's currency.
// GET /api/region/price?amount=1.5&lang=ar&path=/om/products
func (s *Server) handlePrice(w http.ResponseWriter, r *http.Request) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(r.URL.Query().Get("amount")), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid amount")
		return
	}

	lang := currency.Lang(r.URL.Query().Get("lang"))
	if lang == "" {
		lang = currency.LangEnglish
	}
	if !currency.IsLang(string(lang)) {
		writeError(w, http.StatusBadRequest, "lang must be en or ar")
		return
	}

	path := r.URL.Query().Get("path")
	if path == "" {
		path = "/"
	}
	res := s.resolver.ActiveRegionForAPI(path)
	region := domain.MustRegion(res.Region)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"region":    region.Code,
		"currency":  region.CurrencyCode,
		"formatted": currency.Format(amount, region, lang),
	})
}

// ─── Storefront Passthrough ─────────────────────────────────────────────────

// handleStorefront serves page navigations. Unprefixed non-admin paths are
// either silently redirected to the remembered region (307, replace
// semantics) or answered with the banner prompt; prefixed paths render under
// the region the middleware resolved.
func (s *Server) handleStorefront(w http.ResponseWriter, r *http.Request) {
	decision := s.controller.Navigate(r.URL.Path, r.URL.RawQuery)

	switch decision.Action {
	case routing.ActionRedirect:
		http.Redirect(w, r, decision.Target, http.StatusTemporaryRedirect)
	case routing.ActionPrompt:
		res, _ := ResolutionFromContext(r.Context())
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"region": domain.MustRegion(res.Region),
			"reason": res.Reason,
			"banner": s.controller.Banner(),
		})
	default:
		res, _ := ResolutionFromContext(r.Context())
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"region": domain.MustRegion(res.Region),
			"reason": res.Reason,
		})
	}
}
