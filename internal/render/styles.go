// Package render formats reports for the terminal.
//
// Colours are chosen by lipgloss from the output's colour profile, so the same
// output is plain text when piped or under test.
package render

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.Color("#4db6ac")
	colorMuted   = lipgloss.Color("#8a94a6")
	colorWarning = lipgloss.Color("#FFC107")
	colorError   = lipgloss.Color("#e53935")
)

// Styles holds the styles used by the renderers.
type Styles struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Muted   lipgloss.Style
	Bar     lipgloss.Style
	Info    lipgloss.Style
	Failure lipgloss.Style
}

// DefaultStyles returns the styles used by the CLI.
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Header:  lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Cell:    lipgloss.NewStyle().Padding(0, 1),
		Muted:   lipgloss.NewStyle().Foreground(colorMuted),
		Bar:     lipgloss.NewStyle().Foreground(colorAccent),
		Info:    lipgloss.NewStyle().Foreground(colorWarning),
		Failure: lipgloss.NewStyle().Bold(true).Foreground(colorError),
	}
}
