package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the page-level bindings. Keys it does not bind go to the
// tab switcher.
type KeyMap struct {
	Quit        key.Binding
	ForceQuit   key.Binding
	Theme       key.Binding
	Animation   key.Binding
	Orientation key.Binding
	Reload      key.Binding
	Help        key.Binding
	Pager       key.Binding
	OvPager     key.Binding
	Close       key.Binding
}

// DefaultKeyMap returns the page bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Animation: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "animation"),
		),
		Orientation: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "orientation"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload tabs"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Pager: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "help pager"),
		),
		OvPager: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "help in ov"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "q", "?"),
			key.WithHelp("esc", "close"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Theme, k.Animation, k.Orientation, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Theme, k.Animation, k.Orientation},
		{k.Reload, k.Help, k.Pager, k.OvPager, k.Quit},
	}
}
