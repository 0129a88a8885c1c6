package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haskel/cytoscan/internal/api"
	"github.com/haskel/cytoscan/internal/session"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics [model]",
	Short: "Show a model's evaluation metrics",
	Long: `Fetch the historical evaluation metrics recorded for a model.
Without an argument, metrics for every served model are shown.

Examples:
  cytoscan metrics
  cytoscan metrics resnet50`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMetrics,
}

func init() {
	rootCmd.AddCommand(metricsCmd)
}

func runMetrics(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	client := newAPIClient(cfg)

	models := api.Models()
	if len(args) == 1 {
		model, err := api.ParseModelID(args[0])
		if err != nil {
			return err
		}
		models = []api.ModelID{model}
	}

	results := make(map[api.ModelID]api.Metrics, len(models))
	for _, model := range models {
		m, err := client.ModelMetrics(model)
		if err != nil {
			return fmt.Errorf("failed to get metrics for %s: %w", model, err)
		}
		results[model] = m
	}

	if jsonOut {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	for _, model := range models {
		m := results[model]
		fmt.Printf("=== %s ===\n", model)
		fmt.Printf("  Accuracy:  %s\n", session.FormatPercent(m.Accuracy, 1))
		fmt.Printf("  Precision: %s\n", session.FormatPercent(m.Precision, 1))
		fmt.Printf("  Recall:    %s\n", session.FormatPercent(m.Recall, 1))
		fmt.Printf("  F1 score:  %s\n", session.FormatPercent(m.F1Score, 1))
	}

	return nil
}
