package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the picker keybindings. Plain character keys stay
// unbound so they reach the search input.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Close  key.Binding
	Yank   key.Binding
}

// DefaultKeyMap returns the default picker keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "shift+tab"),
			key.WithHelp("↑", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "tab"),
			key.WithHelp("↓", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "insert/toggle"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear/close"),
		),
		Yank: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy token"),
		),
	}
}

// AppKeyMap holds the demo application keybindings
type AppKeyMap struct {
	TogglePicker key.Binding
	Quit         key.Binding
}

// DefaultAppKeyMap returns the default application keybindings
func DefaultAppKeyMap() AppKeyMap {
	return AppKeyMap{
		TogglePicker: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "token picker"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
