// Package flapwii implements the Flapwii Bird simulation: a body falling
// under gravity, two scrolling pipes, the procedural ground and the
// Menu/Playing/Dying state machine that sequences them.
package flapwii

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/flapwii/internal/config"
)

// Session is the per-run world shared by every mode.
type Session struct {
	cfg     config.Config
	rng     *rand.Rand
	physics *Physics
	pipes   [2]Pipe
	scroll  Scroll
	ground  Ground

	// firstRound holds the second pipe still until the first one crosses
	// the screen midpoint.
	firstRound bool

	best      int
	lastScore int
}

// NewSession builds a session. A zero seed picks a time-based one.
func NewSession(cfg config.Config, seed int64) *Session {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Session{
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(seed)),
		physics: NewPhysics(cfg),
		ground:  NewGround(cfg.Ground),
	}
	s.resetWorld()
	return s
}

// resetWorld respawns both pipes, zeroes the scroll and re-arms the
// second pipe gate.
func (s *Session) resetWorld() {
	for i := range s.pipes {
		s.pipes[i] = NewPipe(s.cfg, s.rng)
	}
	s.scroll.Reset()
	s.firstRound = true
}

// enterMenu ends the current life.
func (s *Session) enterMenu() {
	s.lastScore = s.physics.Score
	s.physics.Reset()
	s.resetWorld()
}

// startRun resets everything a new life needs.
func (s *Session) startRun() {
	s.physics.Reset()
	s.resetWorld()
}

func (s *Session) advancePipes() {
	s.pipes[0].Advance(s.rng)
	if s.firstRound && s.pipes[0].X < float64(s.cfg.Screen.Width)/2 {
		s.firstRound = false
	}
	if !s.firstRound {
		s.pipes[1].Advance(s.rng)
	}
}

func (s *Session) advanceScroll() {
	s.scroll.Advance(s.cfg.Pipe.Speed, float64(s.ground.PatternWidth()))
}

// Physics returns the body.
func (s *Session) Physics() *Physics {
	return s.physics
}

// Pipes returns a copy of both pipes.
func (s *Session) Pipes() [2]Pipe {
	return s.pipes
}

// Scroll returns the world scroll state.
func (s *Session) Scroll() Scroll {
	return s.scroll
}
