package flapwii

import (
	"github.com/vovakirdan/flapwii/internal/config"
	"github.com/vovakirdan/flapwii/internal/core"
)

// GapSource draws gap positions. *rand.Rand satisfies it.
type GapSource interface {
	Intn(n int) int
}

// pipeGeometry is the shared shape of every pipe, derived from the config.
type pipeGeometry struct {
	width    float64
	gap      float64
	speed    float64
	spawnX   float64
	bandLo   int
	bandSpan int
}

func newPipeGeometry(cfg config.Config) pipeGeometry {
	lo, hi := cfg.GapBand()
	return pipeGeometry{
		width:    float64(cfg.Pipe.Width),
		gap:      float64(cfg.Pipe.Gap),
		speed:    cfg.Pipe.Speed,
		spawnX:   float64(cfg.Screen.Width),
		bandLo:   lo,
		bandSpan: hi - lo + 1,
	}
}

// Pipe is a vertical obstacle pair. Y is the top of the lower pipe; the
// upper pipe ends Gap pixels above it.
type Pipe struct {
	X   float64
	Y   float64
	geo pipeGeometry
}

// NewPipe creates a pipe at the right screen edge with a fresh gap.
func NewPipe(cfg config.Config, rng GapSource) Pipe {
	p := Pipe{geo: newPipeGeometry(cfg)}
	p.Reset(rng)
	return p
}

// Move shifts the pipe left by its speed.
func (p *Pipe) Move() {
	p.X -= p.geo.speed
}

// Reset puts the pipe back at the right screen edge and draws a new gap.
func (p *Pipe) Reset(rng GapSource) {
	p.X = p.geo.spawnX
	p.Y = float64(p.geo.bandLo + rng.Intn(p.geo.bandSpan))
}

// Advance moves the pipe and respawns it once it has fully left the screen.
// It reports whether a respawn happened.
func (p *Pipe) Advance(rng GapSource) bool {
	p.Move()
	if p.X < -p.geo.width {
		p.Reset(rng)
		return true
	}
	return false
}

// Width returns the pipe width.
func (p Pipe) Width() float64 {
	return p.geo.width
}

// TopBox is the upper pipe: from the screen top down to the gap.
func (p Pipe) TopBox() core.Box {
	return core.NewBox(p.X, 0, p.geo.width, p.Y-p.geo.gap)
}

// BottomBox is the lower pipe: from the gap down to the ground line.
func (p Pipe) BottomBox(groundY float64) core.Box {
	return core.NewBox(p.X, p.Y, p.geo.width, groundY-p.Y)
}

// TrailingEdge returns the x coordinate of the pipe's right side.
func (p Pipe) TrailingEdge() float64 {
	return p.X + p.geo.width
}
