package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the keys handled by the host loop itself. Session controls
// come from the configured binding table instead.
type KeyMap struct {
	ForceQuit key.Binding
}

// DefaultKeyMap returns the host loop keys.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
	}
}
