package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/haskel/cytoscan/internal/api"
	"github.com/haskel/cytoscan/internal/session"
)

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string

	sections = append(sections, m.renderTitleBar())

	// Error banner: inference failures and picker problems only. Metrics
	// failures never show up here.
	if banner := m.bannerText(); banner != "" {
		sections = append(sections, errorStyle.Render("  Error: "+banner))
	}

	sections = append(sections, m.renderModels())
	sections = append(sections, m.renderFiles())
	sections = append(sections, m.renderResult())
	sections = append(sections, m.renderMetrics())
	sections = append(sections, m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) bannerText() string {
	if m.sess.ErrMessage != "" {
		return m.sess.ErrMessage
	}
	return m.fileErr
}

func (m Model) renderTitleBar() string {
	title := titleStyle.Render("CYTOSCAN")
	help := helpStyle.Render("enter:select m:model s:submit r:rescan q:quit")

	spacing := m.width - lipgloss.Width(title) - lipgloss.Width(help) - 2
	if spacing < 1 {
		spacing = 1
	}

	return fmt.Sprintf("%s%s%s", title, strings.Repeat(" ", spacing), help)
}

func (m Model) renderModels() string {
	var parts []string
	for _, model := range api.Models() {
		if model == m.sess.Model {
			parts = append(parts, activeModelStyle.Render("["+string(model)+"]"))
		} else {
			parts = append(parts, inactiveModelStyle.Render(" "+string(model)+" "))
		}
	}

	return fmt.Sprintf("  %s %s",
		labelStyle.Render("Model:"),
		strings.Join(parts, " "))
}

func (m Model) renderFiles() string {
	var lines []string
	lines = append(lines, sectionHeaderStyle.Render("  Images"))

	if len(m.files) == 0 {
		lines = append(lines, helpStyle.Render("  (no images found, press r to rescan)"))
		return strings.Join(lines, "\n")
	}

	// Window the list around the cursor
	maxVisible := 6
	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}
	end := start + maxVisible
	if end > len(m.files) {
		end = len(m.files)
	}

	for i := start; i < end; i++ {
		path := m.files[i]
		name := filepath.Base(path)

		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
		}

		line := fileStyle.Render(name)
		if path == m.sess.FilePath {
			line = selectedFileStyle.Render(name + " •")
		}

		lines = append(lines, fmt.Sprintf("  %s%s", marker, line))
	}

	if len(m.files) > maxVisible {
		lines = append(lines, helpStyle.Render(fmt.Sprintf("  [%d-%d of %d]", start+1, end, len(m.files))))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderResult() string {
	var lines []string
	lines = append(lines, sectionHeaderStyle.Render("  Result"))

	switch m.sess.Phase {
	case session.PhaseLoading:
		lines = append(lines, loadingStyle.Render(
			fmt.Sprintf("  Classifying %s with %s...", m.sess.PreviewName, m.sess.Model)))

	case session.PhaseSuccess:
		pred := m.sess.Prediction
		tier := session.ConfidenceTier(pred.Confidence)

		confidence := lipgloss.NewStyle().
			Bold(true).
			Foreground(tierColor(tier)).
			Render(fmt.Sprintf("%s (%s)", session.FormatPercent(pred.Confidence, 2), tier))

		lines = append(lines, fmt.Sprintf("  %s %s",
			labelStyle.Render("Prediction:"),
			valueStyle.Render(pred.Label)))
		lines = append(lines, fmt.Sprintf("  %s %s",
			labelStyle.Render("Confidence:"), confidence))

		for _, cp := range session.OrderedProbabilities(pred) {
			lines = append(lines, "  "+m.renderProbabilityBar(cp))
		}

	case session.PhaseFailure:
		lines = append(lines, helpStyle.Render("  Classification failed, adjust and press s to retry"))

	default:
		hint := "  Select an image and press s to classify"
		if m.sess.FilePath != "" {
			hint = fmt.Sprintf("  %s selected, press s to classify", m.sess.PreviewName)
		}
		lines = append(lines, helpStyle.Render(hint))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderProbabilityBar(cp session.ClassProbability) string {
	label := cp.Label
	if len(label) > 40 {
		label = label[:37] + "..."
	}

	width := 16
	filled := int(cp.Probability * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	color := tierColor(session.ConfidenceTier(cp.Probability))
	filledBar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyBar := progressBarEmptyStyle.Render(strings.Repeat("░", width-filled))

	return fmt.Sprintf("%-40s [%s%s] %6s",
		labelStyle.Render(label),
		filledBar, emptyBar,
		valueStyle.Render(session.FormatPercent(cp.Probability, 1)))
}

func (m Model) renderMetrics() string {
	metrics := m.sess.Metrics

	var lines []string
	lines = append(lines, sectionHeaderStyle.Render(fmt.Sprintf("  Metrics (%s)", m.sess.Model)))
	lines = append(lines, fmt.Sprintf("  %s %6s    %s %6s",
		labelStyle.Render("Accuracy: "), valueStyle.Render(session.FormatPercent(metrics.Accuracy, 1)),
		labelStyle.Render("Precision:"), valueStyle.Render(session.FormatPercent(metrics.Precision, 1))))
	lines = append(lines, fmt.Sprintf("  %s %6s    %s %6s",
		labelStyle.Render("Recall:   "), valueStyle.Render(session.FormatPercent(metrics.Recall, 1)),
		labelStyle.Render("F1 score: "), valueStyle.Render(session.FormatPercent(metrics.F1Score, 1))))

	return strings.Join(lines, "\n")
}

func (m Model) renderFooter() string {
	return helpStyle.Render(fmt.Sprintf("  Backend: %s │ State: %s", m.config.ServerURL, m.sess.Phase))
}
