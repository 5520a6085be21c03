package routing

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spirithubcafe/spirithub/internal/domain"
	"github.com/spirithubcafe/spirithub/internal/infra/metrics"
	"github.com/spirithubcafe/spirithub/internal/infra/prefstore"
)

// ─── Decisions ──────────────────────────────────────────────────────────────

// Action is what the storefront should do after a navigation.
type Action string

const (
	// ActionNone: path already carries a prefix, or it is an admin path.
	ActionNone Action = "none"
	// ActionRedirect: replace-navigate to Target without user interaction.
	ActionRedirect Action = "redirect"
	// ActionPrompt: show the confirmation banner and wait for the user.
	ActionPrompt Action = "prompt"
)

// Decision is the controller's answer for one navigation.
type Decision struct {
	Action Action `json:"action"`
	Target string `json:"target,omitempty"`
}

// BannerState is the transient UI state of the confirmation banner.
type BannerState struct {
	Visible  bool              `json:"visible"`
	Selected domain.RegionCode `json:"selected"`
}

// Suggester produces an optional region suggestion for the banner's initial
// highlight. Satisfied by geo.Suggester.
type Suggester interface {
	Suggest(ctx context.Context) (domain.RegionCode, bool)
}

// ─── Controller ─────────────────────────────────────────────────────────────

// Controller decides, on each storefront navigation, whether to silently
// redirect to a remembered region or to open the confirmation banner and
// wait for an explicit choice. It owns the banner state and the pending
// geolocation suggestion.
//
// States: Resolving → (SilentRedirect | AwaitingConfirmation) → Idle.
// Admin paths are excluded entirely; the back office switches regions
// through the admin resolver.
type Controller struct {
	mu       sync.Mutex
	resolver *Resolver
	store    *prefstore.Store
	suggest  Suggester // nil when geolocation is disabled

	banner BannerState

	// Pending unprefixed navigation, used to build the confirm target.
	pendingPath  string
	pendingQuery string

	// generation discards geolocation results that arrive after the
	// navigation that requested them is no longer current.
	generation uint64
}

// NewController creates the redirect controller. suggest may be nil.
func NewController(resolver *Resolver, store *prefstore.Store, suggest Suggester) *Controller {
	return &Controller{
		resolver: resolver,
		store:    store,
		suggest:  suggest,
		banner:   BannerState{Selected: domain.DefaultRegion},
	}
}

// Navigate processes one path change and returns the decision. For prompts
// it opens the banner with the default selection and kicks off the
// asynchronous geolocation suggestion; the suggestion can only update the
// highlight, never confirm.
func (c *Controller) Navigate(path, rawQuery string) Decision {
	c.mu.Lock()
	defer c.mu.Unlock()

	cls := Classify(path)

	// A prefix from any source closes the banner immediately and
	// invalidates any in-flight suggestion.
	if cls.HasRegionPrefix {
		c.closeBannerLocked()
		return Decision{Action: ActionNone}
	}

	// Admin routes manage their own region switch; the banner flow never
	// touches them.
	if cls.IsAdminPath {
		return Decision{Action: ActionNone}
	}

	if stored, ok := c.resolver.StoredStorefrontRegion(); ok {
		c.closeBannerLocked()
		metrics.SilentRedirects.WithLabelValues(stored.String()).Inc()
		return Decision{
			Action: ActionRedirect,
			Target: BuildStorefrontPath(stored, path, rawQuery),
		}
	}

	// No preference: await confirmation. Storage failures land here too —
	// the steady state for new visitors, not an error.
	c.pendingPath = path
	c.pendingQuery = rawQuery
	c.generation++
	if !c.banner.Visible {
		c.banner = BannerState{Visible: true, Selected: domain.DefaultRegion}
		metrics.BannerShown.Inc()
	}

	if c.suggest != nil {
		// Fire-and-forget: the suggester bounds its own lookup, and the
		// request that triggered this navigation must not wait for it.
		go c.requestSuggestion(context.Background(), c.generation)
	}
	return Decision{Action: ActionPrompt}
}

// requestSuggestion asks for a geolocation-based highlight in the
// background. Results for a superseded navigation are discarded rather than
// reopening or mutating the banner.
func (c *Controller) requestSuggestion(ctx context.Context, gen uint64) {
	region, ok := c.suggest.Suggest(ctx)
	if !ok {
		metrics.GeoSuggestions.WithLabelValues("none").Inc()
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation || !c.banner.Visible {
		metrics.GeoSuggestions.WithLabelValues("stale").Inc()
		return
	}
	c.banner.Selected = region
	metrics.GeoSuggestions.WithLabelValues(region.String()).Inc()
}

// ApplySuggestion offers a region inferred from coordinates the storefront
// obtained on its side (the browser geolocation flow). Like the async path,
// it only moves the banner's highlight, and only while the banner is still
// waiting for a choice; anything arriving later is discarded.
func (c *Controller) ApplySuggestion(region domain.RegionCode, ok bool) {
	if !ok {
		metrics.GeoSuggestions.WithLabelValues("none").Inc()
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.banner.Visible {
		metrics.GeoSuggestions.WithLabelValues("stale").Inc()
		return
	}
	c.banner.Selected = region
	metrics.GeoSuggestions.WithLabelValues(region.String()).Inc()
}

// Confirm persists the chosen region and returns the full-navigation target
// for the pending path plus its original query string. The storefront must
// perform a hard load of the target so every region-dependent subsystem
// (API client, currency formatter, caches) reinitializes; a soft transition
// would leave stale region state behind.
func (c *Controller) Confirm(region domain.RegionCode) (string, error) {
	if !region.IsValid() {
		return "", domain.ErrUnknownRegion
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store.Set(domain.StorefrontPreferenceKey, region.String())
	c.store.RecordEvent(domain.RegionEvent{
		ID:        uuid.NewString(),
		Scope:     domain.ScopeStorefront,
		Region:    region,
		Source:    "banner",
		CreatedAt: time.Now().UTC(),
	})
	metrics.BannerConfirmed.WithLabelValues(region.String()).Inc()

	target := BuildStorefrontPath(region, c.pendingPath, c.pendingQuery)
	c.closeBannerLocked()
	return target, nil
}

// Dismiss hides the banner without persisting anything. Dismissal is
// non-sticky by policy: the same unprefixed path prompts again on the next
// load, until an explicit choice is made.
func (c *Controller) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.banner.Visible {
		metrics.BannerDismissed.Inc()
	}
	c.closeBannerLocked()
}

// Banner returns a snapshot of the banner state.
func (c *Controller) Banner() BannerState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.banner
}

// closeBannerLocked hides the banner and invalidates pending suggestions.
// Callers hold c.mu.
func (c *Controller) closeBannerLocked() {
	c.banner = BannerState{Selected: domain.DefaultRegion}
	c.pendingPath = ""
	c.pendingQuery = ""
	c.generation++
}
