package flapwii

import (
	"github.com/vovakirdan/flapwii/internal/config"
	"github.com/vovakirdan/flapwii/internal/core"
)

// Mode is the active game mode.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeDying
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeDying:
		return "dying"
	default:
		return "unknown"
	}
}

// state is one mode of the machine. update advances a single frame and
// returns the next state.
type state interface {
	mode() Mode
	update(s *Session, in core.InputSnapshot) (state, Events)
}

type menuState struct {
	cursorX, cursorY int
}

func (menuState) mode() Mode { return ModeMenu }

func (m menuState) update(s *Session, in core.InputSnapshot) (state, Events) {
	m.cursorX, m.cursorY = s.cfg.Pointer.Cursor(in.Pointer.X, in.Pointer.Y)
	if !in.Has(core.ButtonA) {
		return m, 0
	}
	s.startRun()
	var ev Events
	ev.add(EventTransition)
	return playingState{}, ev
}

type playingState struct{}

func (playingState) mode() Mode { return ModePlaying }

func (playingState) update(s *Session, in core.InputSnapshot) (state, Events) {
	var ev Events
	flap := in.Has(core.ButtonA)
	if flap && !s.physics.Dead {
		ev.add(EventFlap)
	}

	step := s.physics.Step(flap, &s.pipes)
	if step.Scored {
		ev.add(EventScore)
	}

	s.advancePipes()
	s.advanceScroll()

	if s.physics.Score > s.best {
		s.best = s.physics.Score
	}

	if !step.Died {
		return playingState{}, ev
	}

	ev.add(EventHit)
	if s.physics.OnGround() {
		s.enterMenu()
		return menuState{}, ev
	}
	ev.add(EventFall)
	return dyingState{}, ev
}

type dyingState struct{}

func (dyingState) mode() Mode { return ModeDying }

func (dyingState) update(s *Session, _ core.InputSnapshot) (state, Events) {
	s.physics.Step(false, &s.pipes)
	if s.physics.OnGround() {
		s.enterMenu()
		return menuState{}, 0
	}
	return dyingState{}, 0
}

// Machine sequences the game modes over a session.
type Machine struct {
	session *Session
	state   state
	frame   uint64
}

// NewMachine creates a machine in Menu mode.
func NewMachine(cfg config.Config, seed int64) *Machine {
	return &Machine{
		session: NewSession(cfg, seed),
		state:   menuState{},
	}
}

// Update advances one frame and returns the audio intents it raised.
func (m *Machine) Update(in core.InputSnapshot) Events {
	m.frame++
	next, ev := m.state.update(m.session, in)
	m.state = next
	return ev
}

// Mode returns the active mode.
func (m *Machine) Mode() Mode {
	return m.state.mode()
}

// Session returns the underlying session.
func (m *Machine) Session() *Session {
	return m.session
}

// Best returns the best score seen, including the one loaded at start.
func (m *Machine) Best() int {
	return m.session.best
}

// SetBest seeds the best score, typically from persistence.
func (m *Machine) SetBest(best int) {
	m.session.best = max(best, 0)
}

// LastScore returns the score of the most recently ended life.
func (m *Machine) LastScore() int {
	return m.session.lastScore
}

// Score returns the score of the current life.
func (m *Machine) Score() int {
	return m.session.physics.Score
}
