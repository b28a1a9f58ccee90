package render

import (
	"testing"

	"github.com/vovakirdan/flapwii/internal/config"
	"github.com/vovakirdan/flapwii/internal/core"
)

// newTestTerminal maps 640x480 onto 80x24, so a cell is 8x20 pixels.
func newTestTerminal() *Terminal {
	return NewTerminal(core.NewScreen(80, 24), config.DefaultConfig())
}

func TestTerminalFillsWholeScreen(t *testing.T) {
	term := newTestTerminal()
	term.DrawRect(0, 0, 640, 480, core.ColorSky, true)

	s := term.Screen()
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y).BG != core.ColorSky {
				t.Fatalf("cell (%d, %d) not painted", x, y)
			}
		}
	}
}

func TestTerminalCellCentres(t *testing.T) {
	term := newTestTerminal()
	s := term.Screen()

	// Grass band y in [422, 432) covers the centre of row 21 (y=430).
	term.DrawRect(0, 422, 640, 10, core.ColorGrass, true)
	if s.GetCell(0, 21).BG != core.ColorGrass {
		t.Error("grass should paint row 21")
	}
	if s.GetCell(0, 20).BG == core.ColorGrass || s.GetCell(0, 22).BG == core.ColorGrass {
		t.Error("grass should not spill into neighbouring rows")
	}

	// A thin full-width band covers no centre and draws nothing.
	term.DrawRect(0, 420, 640, 2, core.ColorOutline, true)
	for x := 0; x < s.Width(); x++ {
		if c := s.GetCell(x, 21); c.BG == core.ColorOutline || c.FG == core.ColorOutline {
			t.Fatalf("thin band leaked into cell (%d, 21)", x)
		}
	}
}

func TestTerminalSmallShapesBecomeGlyphs(t *testing.T) {
	term := newTestTerminal()
	s := term.Screen()
	term.DrawRect(0, 0, 640, 480, core.ColorDirt, true)

	term.PlotPixel(100, 450, core.ColorSpeckDk)
	c := s.GetCell(12, 22)
	if c.Rune != glyphPixel || c.FG != core.ColorSpeckDk || c.BG != core.ColorDirt {
		t.Errorf("pixel cell = %+v", c)
	}

	term.DrawRect(200, 462, 3, 2, core.ColorRock, true)
	c = s.GetCell(25, 23)
	if c.Rune != glyphRect || c.FG != core.ColorRock || c.BG != core.ColorDirt {
		t.Errorf("rock cell = %+v", c)
	}
}

func TestTerminalPipeSprites(t *testing.T) {
	term := newTestTerminal()
	s := term.Screen()

	// Upright pipe from y=300 down; flipped pipe hanging up from y=200.
	term.DrawSprite(320, 300, TexturePipe, 0, 1, 1, core.ColorWhite)
	term.DrawSprite(320, 200, TexturePipe, 180, -1, 1, core.ColorWhite)

	col := 42 // centre 340, inside [320, 372)
	for row := 0; row < s.Height(); row++ {
		centre := float64(row)*20 + 10
		want := centre < 200 || centre >= 300
		got := s.GetCell(col, row).BG == core.ColorPipe
		if got != want {
			t.Errorf("row %d: pipe = %v, expected %v", row, got, want)
		}
	}
	if s.GetCell(39, 0).BG == core.ColorPipe || s.GetCell(47, 0).BG == core.ColorPipe {
		t.Error("pipe should be 52 pixels wide")
	}
}

func TestTerminalBirdFace(t *testing.T) {
	tests := []struct {
		rotation float64
		beak     rune
	}{
		{0, beakLevel},
		{-8.45, beakUp},
		{9, beakDown},
	}

	for _, tc := range tests {
		term := newTestTerminal()
		term.DrawSprite(160, 200, TextureBird, tc.rotation, 1, 1, core.ColorWhite)
		s := term.Screen()

		// 144x100 at (160, 200): columns 20..37, rows 10..14.
		if s.GetCell(20, 10).BG != core.ColorBird || s.GetCell(37, 14).BG != core.ColorBird {
			t.Errorf("rotation %v: body not painted", tc.rotation)
		}
		found := false
		for x := 20; x <= 38; x++ {
			for y := 10; y <= 14; y++ {
				if s.Get(x, y) == tc.beak {
					found = true
				}
			}
		}
		if !found {
			t.Errorf("rotation %v: beak %q not drawn", tc.rotation, tc.beak)
		}
	}
}

func TestTerminalTextAndClipping(t *testing.T) {
	term := newTestTerminal()
	s := term.Screen()

	term.DrawText(20, 10, FontHUD, "Score: 3", 24, core.ColorHUD)
	if got := s.Row(0)[2:10]; got != "Score: 3" {
		t.Errorf("row 0 = %q", s.Row(0))
	}

	// Off-screen shapes must not panic.
	term.DrawRect(-100, -100, 50, 50, core.ColorRock, true)
	term.DrawRect(600, 460, 500, 500, core.ColorRock, false)
	term.PlotPixel(-1, 481, core.ColorRock)
	term.DrawSprite(-500, 900, TextureBird, 0, 1, 1, core.ColorWhite)
	term.DrawSprite(0, 0, TextureID(99), 0, 1, 1, core.ColorWhite)
}
