package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/haskel/cytoscan/internal/session"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("86")  // Cyan
	colorSecondary = lipgloss.Color("240") // Gray
	colorSuccess   = lipgloss.Color("82")  // Green
	colorWarning   = lipgloss.Color("214") // Orange
	colorDanger    = lipgloss.Color("196") // Red
	colorMuted     = lipgloss.Color("245") // Light gray
)

// Styles
var (
	// Title bar
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// Help text
	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Section headers
	sectionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary)

	// Model selector
	activeModelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary)

	inactiveModelStyle = lipgloss.NewStyle().
				Foreground(colorMuted)

	// File picker
	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	selectedFileStyle = lipgloss.NewStyle().
				Foreground(colorSuccess)

	fileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	// Progress bar
	progressBarEmptyStyle = lipgloss.NewStyle().
				Foreground(colorSecondary)

	// Values
	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Error banner
	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	loadingStyle = lipgloss.NewStyle().
			Foreground(colorWarning)
)

// tierColor maps a confidence tier to its display color
func tierColor(tier session.Tier) lipgloss.Color {
	switch tier {
	case session.TierHigh:
		return colorSuccess
	case session.TierMedium:
		return colorWarning
	default:
		return colorDanger
	}
}
