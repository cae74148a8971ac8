package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title      lipgloss.Style
	Header     lipgloss.Style
	Item       lipgloss.Style
	Dim        lipgloss.Style
	Status     lipgloss.Style
	Cursor     lipgloss.Style
	Help       lipgloss.Style
	EmptyState lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		Item: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Dim:    lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Cursor: lipgloss.NewStyle().
			Background(lipgloss.Color("238")),
		Help:       lipgloss.NewStyle().Faint(true),
		EmptyState: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")),
	}
}
