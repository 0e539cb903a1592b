package tabswitcher

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of a tab switcher
type KeyMap struct {
	// Tab list navigation
	Prev     key.Binding
	Next     key.Binding
	Home     key.Binding
	End      key.Binding
	Activate key.Binding

	// Moves between the active tab control and the visible panel
	FocusNext key.Binding
	FocusPrev key.Binding

	// Panel scrolling, only while the panel has focus
	ScrollUp   key.Binding
	ScrollDown key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
}

// DefaultKeyMap is the built-in binding set. Arrow keys plus vim-style aliases.
var DefaultKeyMap = KeyMap{
	Prev: key.NewBinding(
		key.WithKeys("left", "up", "h", "k"),
		key.WithHelp("←/↑", "previous tab"),
	),
	Next: key.NewBinding(
		key.WithKeys("right", "down", "l", "j"),
		key.WithHelp("→/↓", "next tab"),
	),
	Home: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("home", "first tab"),
	),
	End: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("end", "last tab"),
	),
	Activate: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter/space", "activate"),
	),
	FocusNext: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "focus panel"),
	),
	FocusPrev: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "focus tabs"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "scroll up"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "scroll down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn", "page down"),
	),
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Activate, k.FocusNext}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Home, k.End, k.Activate},
		{k.FocusNext, k.FocusPrev, k.ScrollUp, k.ScrollDown, k.PageUp, k.PageDown},
	}
}
