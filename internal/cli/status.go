package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/spirithubcafe/spirithub/internal/daemon"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check whether the region edge is running",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := daemon.LoadConfig()
		if err != nil {
			return err
		}
		base := fmt.Sprintf("http://%s:%d", cfg.API.Host, cfg.API.Port)

		client := &http.Client{Timeout: 3 * time.Second}
		resp, err := client.Get(base + "/api/status")
		if err != nil {
			fmt.Printf("region edge: not running (%s)\n", base)
			return nil
		}
		defer resp.Body.Close()

		var body struct {
			Status string `json:"status"`
			Store  string `json:"store"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return fmt.Errorf("decode status: %w", err)
		}
		fmt.Printf("region edge: %s (%s, store: %s)\n", body.Status, base, body.Store)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
