// Package cli implements the spirithub command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "spirithub",
	Short: "SpiritHub region edge",
	Long: `SpiritHub region edge for the Oman and Saudi Arabia storefronts.

Resolves the active region for every navigation, remembers explicit
choices, and serves the region API the storefront shell and the back
office depend on.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI with the build version injected from main.
func Execute(v string) {
	if v != "" {
		version = v
	}
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
