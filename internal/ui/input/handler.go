package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"peoplepicker/internal/ui/input/modes"
	"peoplepicker/internal/ui/input/types"
)

// Handler routes keys to the active mode and owns the text input
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model
	keys        *types.KeyMap
}

// New creates a handler in browse mode with a blurred text input
func New(placeholder string) *Handler {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = placeholder

	keys := types.DefaultKeyMap()
	keys.SetMode(false)

	h := &Handler{
		currentMode: types.ModeBrowse,
		textInput:   &ti,
		keys:        &keys,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeBrowse] = modes.NewBrowseMode(h.keys)
	h.modes[types.ModeTyping] = modes.NewTypingMode(h.keys)

	return h
}

// HandleKey lets the current mode act on msg. In typing mode, keys the mode
// does not consume edit the text, and a changed value yields an EditTextAction.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if consumed || h.currentMode != types.ModeTyping {
		return actions, nil
	}

	before := h.textInput.Value()
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	if after := h.textInput.Value(); after != before {
		actions = append(actions, types.EditTextAction{Text: after})
	}
	return actions, cmd
}

// ChangeMode switches modes, moving focus in or out of the text input
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) ([]types.Action, tea.Cmd) {
	if mode == h.currentMode {
		return nil, nil
	}

	var actions []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[mode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}

	typing := mode == types.ModeTyping
	h.keys.SetMode(typing)

	var cmd tea.Cmd
	if typing {
		cmd = h.textInput.Focus()
	} else {
		h.textInput.Blur()
	}
	return actions, cmd
}

// SetValue replaces the text without emitting an edit
func (h *Handler) SetValue(text string) {
	h.textInput.SetValue(text)
	h.textInput.CursorEnd()
}

// Value returns the current text
func (h *Handler) Value() string {
	return h.textInput.Value()
}

// CurrentMode returns the active mode
func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// TextInput returns a copy of the text input for rendering
func (h *Handler) TextInput() textinput.Model {
	return *h.textInput
}

// Keys returns the key map, whose enabled bindings follow the mode
func (h *Handler) Keys() *types.KeyMap {
	return h.keys
}

// Update handles non-keyboard messages such as cursor blinks
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}
