package cli

import (
	"github.com/spf13/cobra"

	"github.com/haskel/cytoscan/internal/api"
	"github.com/haskel/cytoscan/internal/cli/tui"
	"github.com/haskel/cytoscan/internal/logger"
)

var pickerDir string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive classification client",
	Long: `Launch the interactive terminal client: pick an image, switch models,
submit, and review the prediction next to the model's evaluation metrics.

Examples:
  cytoscan tui                       # Pick images from the current directory
  cytoscan tui --dir ./slides        # Pick images from another directory
  cytoscan tui --host 10.0.0.1       # Use a remote backend`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&pickerDir, "dir", "", "directory to pick images from (overrides config)")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	if pickerDir != "" {
		cfg.Picker.Dir = pickerDir
	}

	defaultModel, err := api.ParseModelID(cfg.Model.Default)
	if err != nil {
		return err
	}

	// Stdout belongs to the TUI while it runs; log to the configured file
	// or nowhere.
	log := logger.Discard()
	if cfg.Logging.File != "" {
		fileLog, closeLog, err := logger.NewFile(cfg.Logging.File, cfg.Logging.Level, cfg.Logging.Format)
		if err != nil {
			return err
		}
		defer closeLog()
		log = fileLog
	}

	return tui.Run(tui.Config{
		ServerURL:    cfg.BaseURL(),
		Timeout:      cfg.RequestTimeout(),
		DefaultModel: defaultModel,
		Dir:          cfg.Picker.Dir,
		Extensions:   cfg.Picker.Extensions,
		Logger:       log,
	})
}
