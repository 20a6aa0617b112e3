package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the form's key bindings. Letters are left to the text
// inputs, so every command uses a modifier or a navigation key.
type keyMap struct {
	Next           key.Binding
	Prev           key.Binding
	ToggleOpen     key.Binding
	ToggleHide     key.Binding
	NextEncryption key.Binding
	Generate       key.Binding
	Quit           key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.ToggleOpen, k.ToggleHide, k.NextEncryption, k.Generate, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.ToggleOpen, k.ToggleHide, k.NextEncryption},
		{k.Generate, k.Quit},
	}
}

func newKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous field"),
		),
		ToggleOpen: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "open network"),
		),
		ToggleHide: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "hide password"),
		),
		NextEncryption: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "security"),
		),
		Generate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "generate"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}
