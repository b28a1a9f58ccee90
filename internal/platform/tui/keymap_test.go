package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flapwii/internal/core"
)

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action Action
		button core.Button
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, ActionButton, core.ButtonA},
		{"a", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, ActionButton, core.ButtonA},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, ActionButton, core.ButtonA},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, ActionButton, core.ButtonA},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, ActionButton, core.ButtonHome},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, ActionButton, core.ButtonHome},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, ActionButton, core.ButtonHome},
		{"help", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}, ActionHelp, 0},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, ActionNone, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, button := km.MapKey(tt.msg)
			if action != tt.action || button != tt.button {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tt.msg.String(), action, button, tt.action, tt.button)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) != 3 {
		t.Errorf("ShortHelp has %d bindings, expected 3", len(km.ShortHelp()))
	}
	if len(km.FullHelp()) != 2 {
		t.Errorf("FullHelp has %d columns, expected 2", len(km.FullHelp()))
	}
}
