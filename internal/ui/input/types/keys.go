package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the picker reacts to
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Pick  key.Binding
	Focus key.Binding
	Blur  key.Binding
	Pager key.Binding
	Copy  key.Binding
	Help  key.Binding
	Quit  key.Binding
	Force key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑/ctrl+p", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓/ctrl+n", "next"),
		),
		Pick: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "pick"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "/", "i"),
			key.WithHelp("tab", "edit"),
		),
		Blur: key.NewBinding(
			key.WithKeys("tab", "esc"),
			key.WithHelp("esc", "close list"),
		),
		Pager: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "roster"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy slug"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		Force: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// SetMode enables the bindings that apply in a mode so help only shows those
func (k *KeyMap) SetMode(typing bool) {
	k.Focus.SetEnabled(!typing)
	k.Blur.SetEnabled(typing)
	k.Help.SetEnabled(!typing)
	k.Quit.SetEnabled(!typing)
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Pick, k.Focus, k.Blur, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Pick},
		{k.Focus, k.Blur},
		{k.Pager, k.Copy},
		{k.Help, k.Quit, k.Force},
	}
}
