package flapwii

import "fmt"

// Cursor is the menu cursor in screen pixels.
type Cursor struct {
	X, Y int
}

// BodyView is the body as the renderer sees it.
type BodyView struct {
	X, Y     float64
	Rotation float64
	Velocity float64
}

// PipeView is one pipe as the renderer sees it.
type PipeView struct {
	X, Y    float64
	Visible bool
}

// Snapshot is everything a renderer needs for a frame.
type Snapshot struct {
	Mode      Mode
	Frame     uint64
	Cursor    Cursor
	Body      BodyView
	Pipes     [2]PipeView
	Ground    []Directive // nil in Menu
	Score     int
	Best      int
	ScoreText string
	BestText  string
}

// Snapshot captures the current frame.
func (m *Machine) Snapshot() Snapshot {
	s := m.session
	p := s.physics
	snap := Snapshot{
		Mode:  m.Mode(),
		Frame: m.frame,
		Body: BodyView{
			X:        p.Position.X,
			Y:        p.Position.Y,
			Rotation: p.Velocity * s.cfg.Render.RotationFactor,
			Velocity: p.Velocity,
		},
		Score:     p.Score,
		Best:      s.best,
		ScoreText: fmt.Sprintf("Score: %d", p.Score),
		BestText:  fmt.Sprintf("Highscore: %d", s.best),
	}

	if menu, ok := m.state.(menuState); ok {
		snap.Cursor = Cursor{X: menu.cursorX, Y: menu.cursorY}
		return snap
	}

	for i, pipe := range s.pipes {
		snap.Pipes[i] = PipeView{X: pipe.X, Y: pipe.Y, Visible: i == 0 || !s.firstRound}
	}
	snap.Ground = s.ground.Generate(s.scroll, s.cfg.Screen.Width, s.cfg.Screen.Height)
	return snap
}
