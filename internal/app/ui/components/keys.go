package components

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the console key bindings
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Enter        key.Binding
	Chemicals    key.Binding
	GPS          key.Binding
	Menu         key.Binding
	PastMissions key.Binding
	Back         key.Binding
	ToggleTips   key.Binding
	Quit         key.Binding
	ForceQuit    key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Chemicals: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "chemicals"),
		),
		GPS: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "gps"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
		PastMissions: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "past missions"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		ToggleTips: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "tips"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Chemicals, k.GPS, k.Menu, k.Back, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter},
		{k.Chemicals, k.GPS, k.Menu, k.PastMissions},
		{k.Back, k.ToggleTips, k.Quit, k.ForceQuit},
	}
}
