package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"peoplepicker/internal/ui/input/types"
)

// BrowseMode handles keys while the text input is blurred
type BrowseMode struct {
	keys *types.KeyMap
}

// NewBrowseMode creates the blurred-input mode
func NewBrowseMode(keys *types.KeyMap) *BrowseMode {
	return &BrowseMode{keys: keys}
}

func (m *BrowseMode) Name() string {
	return "browse"
}

func (m *BrowseMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *BrowseMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *BrowseMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Force):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, k.Focus), key.Matches(msg, k.Pick),
		key.Matches(msg, k.Up), key.Matches(msg, k.Down):
		return []types.Action{types.FocusAction{}}, true
	case key.Matches(msg, k.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	case key.Matches(msg, k.Pager):
		return []types.Action{types.OpenPagerAction{}}, true
	case key.Matches(msg, k.Copy):
		return []types.Action{types.CopySelectionAction{}}, true
	}
	return nil, false
}
