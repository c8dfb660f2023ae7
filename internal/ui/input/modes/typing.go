package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"peoplepicker/internal/ui/input/types"
)

// TypingMode handles keys while the text input has focus. Keys it does not
// consume go to the text input.
type TypingMode struct {
	keys *types.KeyMap
}

// NewTypingMode creates the focused-input mode
func NewTypingMode(keys *types.KeyMap) *TypingMode {
	return &TypingMode{keys: keys}
}

func (m *TypingMode) Name() string {
	return "typing"
}

func (m *TypingMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *TypingMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *TypingMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Force):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, k.Blur):
		return []types.Action{types.BlurAction{}}, true
	case key.Matches(msg, k.Up):
		if !ctx.DropdownOpen() {
			return []types.Action{types.FocusAction{}}, true
		}
		return []types.Action{types.MoveHighlightAction{Delta: -1}}, true
	case key.Matches(msg, k.Down):
		if !ctx.DropdownOpen() {
			return []types.Action{types.FocusAction{}}, true
		}
		return []types.Action{types.MoveHighlightAction{Delta: 1}}, true
	case key.Matches(msg, k.Pick):
		if !ctx.DropdownOpen() || ctx.CandidateCount() == 0 {
			return nil, true
		}
		return []types.Action{types.PickAction{Index: -1}}, true
	case key.Matches(msg, k.Pager):
		return []types.Action{types.OpenPagerAction{}}, true
	case key.Matches(msg, k.Copy):
		return []types.Action{types.CopySelectionAction{}}, true
	}
	return nil, false
}
