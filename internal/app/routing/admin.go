package routing

import (
	"time"

	"github.com/google/uuid"

	"github.com/spirithubcafe/spirithub/internal/domain"
	"github.com/spirithubcafe/spirithub/internal/infra/prefstore"
)

// ─── Admin Region Switch ────────────────────────────────────────────────────

// SwitchAdminRegion persists the operator's region preference and returns
// the current admin path rebuilt under the new region, so the operator
// keeps their exact sub-route across the switch. The admin preference is
// independent of the storefront one; switching here never touches the
// visitor-facing key.
func SwitchAdminRegion(store *prefstore.Store, region domain.RegionCode, currentPath string) (string, error) {
	if !region.IsValid() {
		return "", domain.ErrUnknownRegion
	}

	store.Set(domain.AdminPreferenceKey, region.String())
	store.RecordEvent(domain.RegionEvent{
		ID:        uuid.NewString(),
		Scope:     domain.ScopeAdmin,
		Region:    region,
		Source:    "admin-switcher",
		CreatedAt: time.Now().UTC(),
	})

	return BuildAdminPathForRegion(currentPath, region), nil
}
