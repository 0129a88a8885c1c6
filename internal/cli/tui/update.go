package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/haskel/cytoscan/internal/api"
)

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		scanFiles(m.config.Dir, m.config.Extensions),
		fetchMetrics(m.client, m.sess.Start()),
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case filesMsg:
		if msg.err != nil {
			m.fileErr = msg.err.Error()
		} else {
			m.fileErr = ""
			m.files = msg.paths
			if m.cursor >= len(m.files) {
				m.cursor = 0
			}
		}
		return m, nil

	case metricsMsg:
		m.sess.ApplyMetrics(msg.seq, msg.data, msg.err)
		return m, nil

	case predictionMsg:
		m.sess.ApplyPrediction(msg.pred, msg.err)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.files)-1 {
			m.cursor++
		}
		return m, nil

	case "enter":
		if m.cursor < len(m.files) {
			m.sess.SelectFile(m.files[m.cursor])
		}
		return m, nil

	case "m", "tab":
		req, err := m.sess.SelectModel(string(otherModel(m.sess.Model)))
		if err != nil {
			return m, nil
		}
		return m, fetchMetrics(m.client, req)

	case "s":
		// The session records the user-facing error when nothing can be
		// submitted; a nil request just means no call goes out.
		req, _ := m.sess.Submit()
		if req == nil {
			return m, nil
		}
		return m, classify(m.client, *req)

	case "r":
		return m, scanFiles(m.config.Dir, m.config.Extensions)
	}

	return m, nil
}

func otherModel(current api.ModelID) api.ModelID {
	if current == api.ModelVGG16 {
		return api.ModelResNet50
	}
	return api.ModelVGG16
}
