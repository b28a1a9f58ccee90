// Package tui runs Flapwii Bird as a Bubble Tea program, locally or over SSH.
// It owns the frame clock, input normalisation, audio dispatch and the
// end-of-process persistence of scores.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultFPS is the frame rate the tuning table is written for.
const DefaultFPS = 60

// TickMsg is sent to trigger one simulation frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after one frame period.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = DefaultFPS
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
