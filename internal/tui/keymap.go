package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings of the explorer in normal mode.
type KeyMap struct {
	// General
	Help key.Binding
	Quit key.Binding

	// Navigation
	Up       key.Binding
	Down     key.Binding
	Open     key.Binding
	Parent   key.Binding
	Back     key.Binding
	Forward  key.Binding
	GoToPath key.Binding
	Search   key.Binding
	Refresh  key.Binding

	// View
	ToggleHidden key.Binding
	NextTheme    key.Binding
	AddShortcut  key.Binding

	// Clipboard & actions
	Copy   key.Binding
	Cut    key.Binding
	Paste  key.Binding
	Rename key.Binding
	Delete key.Binding

	// Input modes
	Submit key.Binding
	Cancel key.Binding
}

// DefaultKeyMap returns vim-flavoured bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		Open:     key.NewBinding(key.WithKeys("l", "right", "enter"), key.WithHelp("enter/l", "open")),
		Parent:   key.NewBinding(key.WithKeys("h", "left", "backspace"), key.WithHelp("h", "parent")),
		Back:     key.NewBinding(key.WithKeys("b", "alt+left"), key.WithHelp("b", "back")),
		Forward:  key.NewBinding(key.WithKeys("f", "alt+right"), key.WithHelp("f", "forward")),
		GoToPath: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "go to path")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Refresh:  key.NewBinding(key.WithKeys("ctrl+r", "f5"), key.WithHelp("ctrl+r", "refresh")),

		ToggleHidden: key.NewBinding(key.WithKeys("."), key.WithHelp(".", "privileged view")),
		NextTheme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "next theme")),
		AddShortcut:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "add shortcut")),

		Copy:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Cut:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "cut")),
		Paste:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "paste")),
		Rename: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),

		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Parent, k.Back, k.Search, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open, k.Parent, k.Back, k.Forward},
		{k.GoToPath, k.Search, k.Refresh, k.ToggleHidden, k.NextTheme, k.AddShortcut},
		{k.Copy, k.Cut, k.Paste, k.Rename, k.Delete},
		{k.Help, k.Quit},
	}
}
