package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haskel/cytoscan/internal/api"
	"github.com/haskel/cytoscan/internal/session"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <image>",
	Short: "Classify a cytology image",
	Long: `Submit one image to the inference backend and print the prediction.

Examples:
  cytoscan classify slide.png
  cytoscan classify slide.png --model resnet50
  cytoscan classify slide.png --json`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

var classifyModel string

func init() {
	classifyCmd.Flags().StringVarP(&classifyModel, "model", "m", "", "model to use (vgg16, resnet50)")
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	modelID := cfg.Model.Default
	if classifyModel != "" {
		modelID = classifyModel
	}
	model, err := api.ParseModelID(modelID)
	if err != nil {
		return err
	}

	client := newAPIClient(cfg)

	pred, err := client.Classify(args[0], model)
	if err != nil {
		return fmt.Errorf("classification failed: %w", err)
	}

	if jsonOut {
		data, err := json.MarshalIndent(pred, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	tier := session.ConfidenceTier(pred.Confidence)
	fmt.Printf("Prediction: %s\n", pred.Label)
	fmt.Printf("Confidence: %s (%s)\n", session.FormatPercent(pred.Confidence, 2), tier)
	fmt.Printf("Model:      %s\n", pred.ModelType)

	fmt.Println("\nClass probabilities:")
	for _, cp := range session.OrderedProbabilities(pred) {
		fmt.Printf("  %-45s %7s\n", cp.Label, session.FormatPercent(cp.Probability, 1))
	}

	return nil
}
