package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flapwii/internal/core"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Flap key.Binding
	Help key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Flap}, {k.Help, k.Quit}}
}

// DefaultKeyMap returns the default bindings. Space, a and up all press
// the A button; the left mouse button does too (see Model.handleMouse).
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "space", "a", "up", "w", "enter"),
			key.WithHelp("space/a/click", "flap"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action is what a key press means to the platform.
type Action int

const (
	ActionNone Action = iota
	ActionButton
	ActionHelp
)

// MapKey translates a key message into a platform action and, for
// ActionButton, the game button it presses.
func (k KeyMap) MapKey(msg tea.KeyMsg) (Action, core.Button) {
	switch {
	case key.Matches(msg, k.Quit):
		return ActionButton, core.ButtonHome
	case key.Matches(msg, k.Flap):
		return ActionButton, core.ButtonA
	case key.Matches(msg, k.Help):
		return ActionHelp, 0
	}
	return ActionNone, 0
}
