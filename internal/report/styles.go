package report

import (
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	titleCaser = cases.Title(language.English)
	upperCaser = cases.Upper(language.English)
)

// Styles holds the lipgloss styles used by the text renderer.
type Styles struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Amount  lipgloss.Style
	Bar     lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Summary lipgloss.Style
}

// DefaultStyles returns the default color scheme.
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89b4fa")),
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#bbbbbb")),
		Cell:    lipgloss.NewStyle(),
		Amount:  lipgloss.NewStyle().Foreground(lipgloss.Color("#d29b1d")),
		Bar:     lipgloss.NewStyle().Foreground(lipgloss.Color("#00afaf")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff00")),
		Warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff8700")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")),
		Summary: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}
