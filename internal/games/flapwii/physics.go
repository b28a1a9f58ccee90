package flapwii

import (
	"github.com/vovakirdan/flapwii/internal/config"
	"github.com/vovakirdan/flapwii/internal/core"
)

// Physics integrates the controllable body and holds the run's score.
type Physics struct {
	Position core.Vec2
	Velocity float64
	Dead     bool
	Score    int

	// scoreSecond selects which pipe is checked for a pass next.
	scoreSecond bool

	gravity float64
	impulse float64
	zone    float64
	startX  float64
	startY  float64
	width   float64
	height  float64
	groundY float64
}

// StepResult describes what happened during one physics step.
type StepResult struct {
	Position core.Vec2
	Died     bool // True only on the frame the body died
	Scored   bool
}

// NewPhysics creates a body at the start position.
func NewPhysics(cfg config.Config) *Physics {
	w, h := cfg.BodySize()
	x, y := cfg.BodyStart()
	p := &Physics{
		gravity: cfg.Physics.Gravity,
		impulse: cfg.Physics.FlapImpulse,
		zone:    cfg.Physics.ScoringZone,
		startX:  x,
		startY:  y,
		width:   w,
		height:  h,
		groundY: float64(cfg.Ground.Line),
	}
	p.Reset()
	return p
}

// Reset restores the start position, zero velocity, a live body, a zero
// score and the scoring cursor on the first pipe.
func (p *Physics) Reset() {
	p.Position = core.Vec2{X: p.startX, Y: p.startY}
	p.Velocity = 0
	p.Dead = false
	p.Score = 0
	p.scoreSecond = false
}

// Step advances the body by one frame. A dead body only falls: flap is
// ignored and no collisions or passes are checked.
func (p *Physics) Step(flap bool, pipes *[2]Pipe) StepResult {
	if flap && !p.Dead {
		p.Velocity = p.impulse
	} else {
		p.Velocity += p.gravity
	}
	p.Position.Y += p.Velocity

	if p.Dead {
		return StepResult{Position: p.Position}
	}

	if p.collides(pipes) {
		p.Dead = true
		return StepResult{Position: p.Position, Died: true}
	}

	scored := p.checkPass(pipes)
	return StepResult{Position: p.Position, Scored: scored}
}

func (p *Physics) collides(pipes *[2]Pipe) bool {
	box := p.Hitbox()
	if box.Top() < 0 || box.Bottom() >= p.groundY {
		return true
	}
	for i := range pipes {
		if box.Intersects(pipes[i].TopBox()) || box.Intersects(pipes[i].BottomBox(p.groundY)) {
			return true
		}
	}
	return false
}

// checkPass awards a point when the cursored pipe's trailing edge sits
// inside the scoring zone just behind the body centre, then moves the
// cursor to the other pipe.
func (p *Physics) checkPass(pipes *[2]Pipe) bool {
	idx := 0
	if p.scoreSecond {
		idx = 1
	}
	edge := pipes[idx].TrailingEdge()
	center := p.Hitbox().CenterX()
	if edge < center && edge+p.zone > center {
		p.Score++
		p.scoreSecond = !p.scoreSecond
		return true
	}
	return false
}

// Hitbox returns the body's collision box.
func (p *Physics) Hitbox() core.Box {
	return core.NewBox(p.Position.X, p.Position.Y, p.width, p.height)
}

// OnGround reports whether the body's bottom edge has reached the ground line.
func (p *Physics) OnGround() bool {
	return p.Hitbox().Bottom() >= p.groundY
}

// ScoringSecond reports whether the second pipe is next to be scored.
func (p *Physics) ScoringSecond() bool {
	return p.scoreSecond
}
