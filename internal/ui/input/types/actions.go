package types

// Focus actions
type FocusAction struct{}

func (a FocusAction) Type() string { return "focus" }

type BlurAction struct{}

func (a BlurAction) Type() string { return "blur" }

// Dropdown actions
type MoveHighlightAction struct {
	Delta int
}

func (a MoveHighlightAction) Type() string { return "move_highlight" }

type PickAction struct {
	Index int // -1 for the highlighted candidate
}

func (a PickAction) Type() string { return "pick" }

// Text input actions
type EditTextAction struct {
	Text string
}

func (a EditTextAction) Type() string { return "edit_text" }

// Command actions
type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

type CopySelectionAction struct{}

func (a CopySelectionAction) Type() string { return "copy_selection" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }
