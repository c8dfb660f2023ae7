package ui

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// defaultCopy writes to the system clipboard
func defaultCopy(text string) error {
	return clipboard.WriteAll(text)
}

// copySelection returns a command that copies the selected person's slug
func (m *Model) copySelection() tea.Cmd {
	sel := m.controller.Selected()
	if sel == nil {
		m.viewModel.SetStatus("Nothing selected to copy", true)
		return nil
	}

	slug := sel.Slug
	copyFn := m.copyFn
	return func() tea.Msg {
		return clipboardMsg{slug: slug, err: copyFn(slug)}
	}
}
