package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/haskel/cytoscan/internal/api"
	"github.com/haskel/cytoscan/internal/config"
	"github.com/haskel/cytoscan/internal/logger"
)

var (
	// Global flags
	cfgFile string
	host    string
	port    int
	jsonOut bool
	verbose bool

	// Version info (set from main)
	Version = "0.1.0"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cytoscan",
	Short: "Client for the cervical cytology classification service",
	Long: `Cytoscan is a client for a cytology image classification service.
It submits Pap smear images to the inference backend, switches between the
trained models (vgg16, resnet50), and shows predictions alongside each
model's historical evaluation metrics.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&host, "host", "localhost", "backend host")
	rootCmd.PersistentFlags().IntVarP(&port, "port", "p", 5000, "backend port")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// SetVersion sets the version for the CLI
func SetVersion(v string) {
	Version = v
	rootCmd.Version = v
}

// loadConfig merges the config file (when given) with flag overrides.
// Explicitly set flags win over config file values.
func loadConfig() *config.Config {
	cfg := config.LoadOrDefault(cfgFile)

	flags := rootCmd.PersistentFlags()
	if flags.Changed("host") {
		cfg.Server.Host = host
	}
	if flags.Changed("port") {
		cfg.Server.Port = port
	}

	return cfg
}

// GetServerURL returns the backend URL based on flags
func GetServerURL() string {
	return fmt.Sprintf("http://%s:%d", host, port)
}

// IsJSON returns whether JSON output is enabled
func IsJSON() bool {
	return jsonOut
}

// IsVerbose returns whether verbose output is enabled
func IsVerbose() bool {
	return verbose
}

func newAPIClient(cfg *config.Config) *api.Client {
	return api.NewClient(cfg.BaseURL(), cfg.RequestTimeout(), newLogger(cfg))
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	return logger.New(level, cfg.Logging.Format)
}
