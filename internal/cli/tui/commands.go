package tui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/haskel/cytoscan/internal/api"
	"github.com/haskel/cytoscan/internal/session"
)

// Messages for tea.Cmd
type filesMsg struct {
	paths []string
	err   error
}

type predictionMsg struct {
	pred *api.Prediction
	err  error
}

type metricsMsg struct {
	seq  uint64
	data api.Metrics
	err  error
}

// scanFiles lists candidate images in dir as tea.Cmd. The extension filter
// is advisory; the backend decides what it actually accepts.
func scanFiles(dir string, extensions []string) tea.Cmd {
	return func() tea.Msg {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return filesMsg{err: err}
		}

		allowed := make(map[string]bool, len(extensions))
		for _, ext := range extensions {
			allowed[strings.ToLower(ext)] = true
		}

		var paths []string
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(entry.Name()), "."))
			if allowed[ext] {
				paths = append(paths, filepath.Join(dir, entry.Name()))
			}
		}
		sort.Strings(paths)

		return filesMsg{paths: paths}
	}
}

// fetchMetrics runs one metrics fetch as tea.Cmd, echoing the request's
// sequence number so the session can drop stale resolutions.
func fetchMetrics(client *api.Client, req session.MetricsRequest) tea.Cmd {
	return func() tea.Msg {
		data, err := client.ModelMetrics(req.Model)
		return metricsMsg{seq: req.Seq, data: data, err: err}
	}
}

// classify runs one inference round trip as tea.Cmd.
func classify(client *api.Client, req session.ClassifyRequest) tea.Cmd {
	return func() tea.Msg {
		pred, err := client.Classify(req.Path, req.Model)
		return predictionMsg{pred: pred, err: err}
	}
}
