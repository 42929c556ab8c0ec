package tui

import (
	"github.com/charmbracelet/lipgloss"

	"mapdraw/internal/settings"
)

type styles struct {
	app    lipgloss.Style
	box    lipgloss.Style
	title  lipgloss.Style
	dim    lipgloss.Style
	tool   lipgloss.Style
	active lipgloss.Style
	err    lipgloss.Style
	label  lipgloss.Style
}

var (
	borderCol = lipgloss.Color("#243141")
	errFg     = lipgloss.Color("#F2B8B5")
)

func newStyles(theme settings.Theme) styles {
	baseFg := lipgloss.Color("#1C1B1F")
	dimFg := lipgloss.Color("#6B7280")
	accentFg := lipgloss.Color("#6750A4")
	activeBg := lipgloss.Color("#EADDFF")
	if theme == settings.Dark {
		baseFg = lipgloss.Color("#E6E6E6")
		accentFg = lipgloss.Color("#7C3AED")
		activeBg = lipgloss.Color("#4F378B")
	}
	return styles{
		app:    lipgloss.NewStyle().Foreground(baseFg),
		box:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1),
		title:  lipgloss.NewStyle().Foreground(accentFg).Bold(true),
		dim:    lipgloss.NewStyle().Foreground(dimFg),
		tool:   lipgloss.NewStyle().Padding(0, 1),
		active: lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(accentFg).Background(activeBg),
		err:    lipgloss.NewStyle().Foreground(errFg),
		label:  lipgloss.NewStyle().Foreground(dimFg).Width(12),
	}
}
