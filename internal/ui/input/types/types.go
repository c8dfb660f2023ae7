package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	// ModeBrowse is active while the text input is blurred
	ModeBrowse Mode = iota
	// ModeTyping is active while the text input has focus
	ModeTyping
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case ModeBrowse:
		return "browse"
	case ModeTyping:
		return "typing"
	default:
		return "unknown"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	Highlight() int
	CandidateCount() int
	DropdownOpen() bool
	HasSelection() bool
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
