package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Screen rows of the fixed layout, used for mouse hit testing
const (
	TitleRow   = 0
	InputRow   = 2
	ListTopRow = 3
)

// NoMatchesText is the notice shown when the filter comes back empty
const NoMatchesText = "No matching suggestions"

// Row is one dropdown entry
type Row struct {
	Name        string
	Lifespan    string
	Highlighted bool
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width        int
	Height       int
	Title        string
	HasSelection bool
	Input        string
	InputFocused bool
	DropdownOpen bool
	Rows         []Row
	Hidden       int // candidates outside the visible window
	NoMatches    bool
	Status       string
	StatusError  bool
	Help         string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view. Line positions follow the *Row constants.
func (r *Renderer) Render(state ViewState) string {
	var b strings.Builder

	if state.HasSelection {
		b.WriteString(r.styles.Title.Render(state.Title))
	} else {
		b.WriteString(r.styles.TitleEmpty.Render(state.Title))
	}
	b.WriteString("\n\n")

	inputStyle := r.styles.Input
	if state.InputFocused {
		inputStyle = r.styles.InputFocus
	}
	b.WriteString(inputStyle.Render(state.Input))
	b.WriteString("\n")

	if state.DropdownOpen {
		for _, row := range state.Rows {
			b.WriteString(r.renderRow(row, state.Width))
			b.WriteString("\n")
		}
		if state.Hidden > 0 {
			b.WriteString(r.styles.More.Render(fmt.Sprintf("  … %d more", state.Hidden)))
			b.WriteString("\n")
		}
	}

	if state.NoMatches {
		b.WriteString("\n")
		b.WriteString(r.styles.NoMatches.Render(NoMatchesText))
		b.WriteString("\n")
	}

	if state.Status != "" {
		b.WriteString("\n")
		if state.StatusError {
			b.WriteString(r.styles.StatusError.Render(state.Status))
		} else {
			b.WriteString(r.styles.Status.Render(state.Status))
		}
		b.WriteString("\n")
	}

	if state.Help != "" {
		b.WriteString("\n")
		b.WriteString(r.styles.Help.Render(state.Help))
	}

	return b.String()
}

func (r *Renderer) renderRow(row Row, width int) string {
	marker := "  "
	nameStyle := r.styles.Item
	if row.Highlighted {
		marker = "> "
		nameStyle = r.styles.ItemActive
	}

	line := marker + nameStyle.Render(row.Name) + " " + r.styles.Lifespan.Render(row.Lifespan)
	if width > 0 && lipgloss.Width(line) > width {
		// Drop the lifespan before truncating names
		line = marker + nameStyle.Render(row.Name)
	}
	return line
}
