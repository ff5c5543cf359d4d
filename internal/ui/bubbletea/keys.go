package bubbletea

import "github.com/charmbracelet/bubbles/key"

// -----------------------------------------------------------------------------
// Key Bindings
// -----------------------------------------------------------------------------

// KeyMap defines all keyboard shortcuts for the application.
type KeyMap struct {
	// Focus
	Next key.Binding
	Prev key.Binding

	// Widgets (handled by the focused component, listed for help)
	Adjust   key.Binding
	Activate key.Binding

	// Application
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev"),
		),
		Adjust: key.NewBinding(
			key.WithKeys("left", "right"),
			key.WithHelp("←/→", "adjust"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("space", "toggle/press"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// ShortHelp returns abbreviated help.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Adjust, k.Activate, k.Help, k.Quit}
}

// FullHelp returns complete help.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Adjust, k.Activate},
		{k.Help, k.Quit, k.ForceQuit},
	}
}
