package tui

import "github.com/charmbracelet/bubbles/key"

// fieldKeyMap defines key bindings for the field screen
type fieldKeyMap struct {
	Focus  key.Binding
	Blur   key.Binding
	Commit key.Binding
	Clear  key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k fieldKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Commit, k.Clear, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k fieldKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Focus, k.Blur, k.Commit},
		{k.Clear, k.Quit},
	}
}

func newFieldKeyMap() fieldKeyMap {
	return fieldKeyMap{
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "focus/blur"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "blur"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "change"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "clear"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
