package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the classification backend's health",
	RunE:  runHealth,
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

func runHealth(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	client := newAPIClient(cfg)

	h, err := client.Health()
	if err != nil {
		return fmt.Errorf("backend unreachable: %w", err)
	}

	if jsonOut {
		fmt.Printf("{\"status\":%q,\"model_loaded\":%t}\n", h.Status, h.ModelLoaded)
		return nil
	}

	fmt.Printf("Status:       %s\n", h.Status)
	fmt.Printf("Model loaded: %t\n", h.ModelLoaded)

	return nil
}
