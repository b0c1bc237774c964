package ui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Up, Down      key.Binding
	NextTab, Prev key.Binding
	Tab           key.Binding
	Quit          key.Binding
}

var Keys = KeyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	NextTab: key.NewBinding(key.WithKeys("tab", "l", "right"), key.WithHelp("tab", "next list")),
	Prev:    key.NewBinding(key.WithKeys("shift+tab", "h", "left"), key.WithHelp("shift+tab", "previous list")),
	Tab:     key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6"), key.WithHelp("1-6", "jump to list")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Up,
		k.Down,
		k.NextTab,
		k.Tab,
		k.Quit,
	}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			k.Up,
			k.Down,
			k.NextTab,
			k.Prev,
			k.Tab,
			k.Quit,
		},
	}
}
