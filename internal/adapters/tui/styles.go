package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/atlas/internal/ui/style"
)

var (
	// Pane Styles.
	layerStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(style.Slate).
			MarginRight(1).
			PaddingRight(1)

	summaryStyle = lipgloss.NewStyle().
			PaddingLeft(1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(style.Gold).
			Padding(0, 1)

	// Layer Styles.
	layerOnStyle = lipgloss.NewStyle().
			Foreground(style.Gold).
			Bold(true)

	layerOffStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	// Status Styles.
	okStyle = lipgloss.NewStyle().
		Foreground(style.Green)

	errorStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	faintStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)

	// Header Styles.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Ink).
			Foreground(style.Parchment)

	yearStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(style.Gold)
)
