package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings shared by the App, fields and pickers.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Select key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns vim-style navigation with enter/esc for
// select/cancel.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// fieldKeys is the help.KeyMap shown while no modal is open.
type fieldKeys struct{ KeyMap }

func (k fieldKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Quit}
}

func (k fieldKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// pickerKeys is the help.KeyMap shown inside a picker.
type pickerKeys struct{ KeyMap }

func (k pickerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Cancel}
}

func (k pickerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
