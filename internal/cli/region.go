package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/spirithubcafe/spirithub/internal/daemon"
	"github.com/spirithubcafe/spirithub/internal/domain"
	"github.com/spirithubcafe/spirithub/internal/infra/prefstore"
	"github.com/spirithubcafe/spirithub/internal/infra/sqlite"
)

var regionAdmin bool

var regionCmd = &cobra.Command{
	Use:   "region",
	Short: "Inspect or change the stored region preference",
}

var regionShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored region preference",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openLocalStore()
		if err != nil {
			return err
		}
		defer store.Close()

		key, scope := preferenceKey()
		value := store.Get(key)
		if value == "" {
			fmt.Printf("%s: no preference stored (default %s)\n", scope, domain.DefaultRegion)
			return nil
		}
		if !domain.IsRegionCode(value) {
			fmt.Printf("%s: stored value %q is not a known region, ignored\n", scope, value)
			return nil
		}
		region := domain.MustRegion(domain.RegionCode(value))
		fmt.Printf("%s: %s (%s, %s)\n", scope, region.Code, region.DisplayName, region.CurrencyCode)
		return nil
	},
}

var regionSetCmd = &cobra.Command{
	Use:   "set <om|sa>",
	Short: "Store a region preference",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code := domain.RegionCode(args[0])
		if !code.IsValid() {
			return fmt.Errorf("unknown region %q (want om or sa)", args[0])
		}

		store, err := openLocalStore()
		if err != nil {
			return err
		}
		defer store.Close()

		key, scope := preferenceKey()
		store.Set(key, string(code))
		store.RecordEvent(domain.RegionEvent{
			ID:        uuid.NewString(),
			Scope:     scope,
			Region:    code,
			Source:    "cli",
			CreatedAt: time.Now().UTC(),
		})
		fmt.Printf("%s region set to %s\n", scope, code)
		return nil
	},
}

var regionUnsetCmd = &cobra.Command{
	Use:   "unset",
	Short: "Clear the stored region preference",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openLocalStore()
		if err != nil {
			return err
		}
		defer store.Close()

		key, scope := preferenceKey()
		store.Remove(key)
		fmt.Printf("%s region preference cleared\n", scope)
		return nil
	},
}

func init() {
	regionCmd.PersistentFlags().BoolVar(&regionAdmin, "admin", false, "operate on the admin preference instead of the storefront one")
	regionCmd.AddCommand(regionShowCmd)
	regionCmd.AddCommand(regionSetCmd)
	regionCmd.AddCommand(regionUnsetCmd)
	rootCmd.AddCommand(regionCmd)
}

// preferenceKey maps the --admin flag to the right storage key.
func preferenceKey() (key, scope string) {
	if regionAdmin {
		return domain.AdminPreferenceKey, domain.ScopeAdmin
	}
	return domain.StorefrontPreferenceKey, domain.ScopeStorefront
}

// openLocalStore opens the same sqlite store the daemon uses, so the CLI
// sees and edits the preferences the edge serves.
func openLocalStore() (*prefstore.Store, error) {
	cfg, err := daemon.LoadConfig()
	if err != nil {
		return nil, err
	}
	db, err := sqlite.Open(cfg.Store.Dir)
	if err != nil {
		return nil, fmt.Errorf("open preference store: %w", err)
	}
	return prefstore.New(db, "sqlite"), nil
}
