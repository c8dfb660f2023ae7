package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	TitleEmpty  lipgloss.Style
	Input       lipgloss.Style
	InputFocus  lipgloss.Style
	Item        lipgloss.Style
	ItemActive  lipgloss.Style
	Lifespan    lipgloss.Style
	More        lipgloss.Style
	NoMatches   lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		TitleEmpty: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("241")),
		Input:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		InputFocus: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Item:       lipgloss.NewStyle().Foreground(lipgloss.Color("33")), // link blue
		ItemActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Background(lipgloss.Color("238")).
			Bold(true),
		Lifespan: lipgloss.NewStyle().Faint(true),
		More:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		NoMatches: lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")). // red
			Background(lipgloss.Color("52")).
			Padding(0, 1),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Help:        lipgloss.NewStyle().Faint(true),
	}
}
