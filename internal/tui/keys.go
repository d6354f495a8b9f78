package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the application's key bindings. They are fixed by design;
// there is no remapping.
type keyMap struct {
	// Normal mode
	Quit     key.Binding
	AddItem  key.Binding
	Up       key.Binding
	Down     key.Binding
	Deselect key.Binding

	// Editing mode
	Confirm   key.Binding
	SoftBreak key.Binding // reserved for future multi-line input
	Cancel    key.Binding
	Backspace key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
		AddItem: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "add item"),
		),
		// Navigation accepts any modifier, so the bindings enumerate every
		// modified-arrow variant the driver can deliver.
		Up: key.NewBinding(
			key.WithKeys("up", "shift+up", "alt+up", "ctrl+up",
				"ctrl+shift+up", "alt+shift+up"),
			key.WithHelp("↑", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "shift+down", "alt+down", "ctrl+down",
				"ctrl+shift+down", "alt+shift+down"),
			key.WithHelp("↓", "next"),
		),
		Deselect: key.NewBinding(
			key.WithKeys("left", "shift+left", "alt+left", "ctrl+left",
				"ctrl+shift+left", "alt+shift+left"),
			key.WithHelp("←", "deselect"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add to list"),
		),
		SoftBreak: key.NewBinding(
			// Best effort: most terminals cannot report shift on enter and
			// deliver a plain enter instead, which commits.
			key.WithKeys("shift+enter"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("bksp", "delete"),
		),
	}
}

// normalKeys and editingKeys adapt keyMap to help.KeyMap so the help strip
// shows only the bindings live in the current mode.

type normalKeys struct{ keyMap }

func (k normalKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.AddItem, k.Up, k.Down, k.Deselect, k.Quit}
}

func (k normalKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type editingKeys struct{ keyMap }

func (k editingKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Backspace, k.Cancel}
}

func (k editingKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
