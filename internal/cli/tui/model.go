package tui

import (
	"log/slog"
	"time"

	"github.com/haskel/cytoscan/internal/api"
	"github.com/haskel/cytoscan/internal/session"
)

// Config holds TUI configuration
type Config struct {
	ServerURL    string
	Timeout      time.Duration
	DefaultModel api.ModelID
	Dir          string
	Extensions   []string
	Logger       *slog.Logger
}

// Model represents the TUI state. All classification state lives in the
// session; the Model adds only what the terminal needs: the file listing,
// cursor position, and window dimensions.
type Model struct {
	config Config
	client *api.Client
	sess   *session.Session

	// File picker
	files   []string
	cursor  int
	fileErr string

	// UI state
	width  int
	height int
}

// NewModel creates a new TUI model
func NewModel(cfg Config) Model {
	return Model{
		config: cfg,
		client: api.NewClient(cfg.ServerURL, cfg.Timeout, cfg.Logger),
		sess:   session.New(cfg.DefaultModel, cfg.Logger),
	}
}
