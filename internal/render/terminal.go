package render

import (
	"math"

	"github.com/vovakirdan/flapwii/internal/config"
	"github.com/vovakirdan/flapwii/internal/core"
)

// Glyphs used for shapes smaller than a cell.
const (
	glyphPixel = '·'
	glyphRect  = '▪'
	glyphEye   = 'o'
	beakLevel  = '>'
	beakUp     = '/'
	beakDown   = '\\'
)

// beakTilt is the rotation beyond which the beak tilts.
const beakTilt = 4.0

type spriteInfo struct {
	w, h  float64
	color core.Color
}

// Terminal is a Canvas over a cell screen. The logical pixel space is
// scaled onto however many cells the screen has; a cell is painted when
// its centre falls inside a shape.
type Terminal struct {
	screen  *core.Screen
	width   float64
	height  float64
	sprites map[TextureID]spriteInfo
}

// NewTerminal creates a terminal canvas drawing into screen.
func NewTerminal(screen *core.Screen, cfg config.Config) *Terminal {
	return &Terminal{
		screen: screen,
		width:  float64(cfg.Screen.Width),
		height: float64(cfg.Screen.Height),
		sprites: map[TextureID]spriteInfo{
			TextureBird: {w: float64(cfg.Body.Width), h: float64(cfg.Body.Height), color: core.ColorBird},
			TexturePipe: {w: float64(cfg.Pipe.Width), h: float64(cfg.Pipe.TextureHeight), color: core.ColorPipe},
		},
	}
}

// Screen returns the backing screen.
func (t *Terminal) Screen() *core.Screen {
	return t.screen
}

func (t *Terminal) cellW() float64 { return t.width / float64(max(t.screen.Width(), 1)) }
func (t *Terminal) cellH() float64 { return t.height / float64(max(t.screen.Height(), 1)) }

// cellAt returns the cell containing a logical point.
func (t *Terminal) cellAt(x, y float64) (int, int) {
	return int(math.Floor(x / t.cellW())), int(math.Floor(y / t.cellH()))
}

// span returns the cells in one axis whose centres lie in [start, start+length).
func span(start, length, cell float64) (int, int) {
	first := int(math.Ceil(start/cell - 0.5))
	last := int(math.Ceil((start+length)/cell - 0.5))
	return first, last
}

// fill paints a logical rectangle. Shapes too small to cover a cell centre
// become a glyph when they fit inside one cell.
func (t *Terminal) fill(x, y, w, h float64, c core.Color, filled bool) {
	if w <= 0 || h <= 0 {
		return
	}
	cw, ch := t.cellW(), t.cellH()
	c0, c1 := span(x, w, cw)
	r0, r1 := span(y, h, ch)

	if c1 <= c0 || r1 <= r0 {
		if w <= cw && h <= ch {
			cx, cy := t.cellAt(x+w/2, y+h/2)
			t.screen.SetCell(cx, cy, core.Cell{Rune: glyphRect, FG: c})
		}
		return
	}

	if filled {
		t.screen.FillRect(c0, r0, c1-c0, r1-r0, c)
		return
	}
	t.screen.FillRect(c0, r0, c1-c0, 1, c)
	t.screen.FillRect(c0, r1-1, c1-c0, 1, c)
	t.screen.FillRect(c0, r0, 1, r1-r0, c)
	t.screen.FillRect(c1-1, r0, 1, r1-r0, c)
}

// DrawRect implements Canvas.
func (t *Terminal) DrawRect(x, y, w, h int, c core.Color, filled bool) {
	t.fill(float64(x), float64(y), float64(w), float64(h), c, filled)
}

// PlotPixel implements Canvas.
func (t *Terminal) PlotPixel(x, y int, c core.Color) {
	cx, cy := t.cellAt(float64(x)+0.5, float64(y)+0.5)
	t.screen.SetCell(cx, cy, core.Cell{Rune: glyphPixel, FG: c})
}

// DrawText implements Canvas. Size and font do not change the cell grid.
func (t *Terminal) DrawText(x, y int, _ FontID, text string, _ int, c core.Color) {
	cx, cy := t.cellAt(float64(x), float64(y))
	t.screen.DrawText(cx, cy, text, c)
}

// DrawSprite implements Canvas.
func (t *Terminal) DrawSprite(x, y float64, tex TextureID, rotation, scaleX, scaleY float64, tint core.Color) {
	info, ok := t.sprites[tex]
	if !ok {
		return
	}
	w, h := info.w*math.Abs(scaleX), info.h*math.Abs(scaleY)
	if math.Abs(rotation-180) < 1 {
		y -= h
	}

	color := info.color
	if tint != core.ColorWhite && tint != core.ColorNone {
		color = tint
	}
	t.fill(x, y, w, h, color, true)

	if tex == TextureBird {
		t.drawFace(x, y, w, h, rotation)
	}
}

// drawFace puts an eye and a beak on the bird, tilted by rotation.
func (t *Terminal) drawFace(x, y, w, h, rotation float64) {
	beak := beakLevel
	switch {
	case rotation < -beakTilt:
		beak = beakUp
	case rotation > beakTilt:
		beak = beakDown
	}
	ex, ey := t.cellAt(x+w*0.6, y+h*0.3)
	bx, by := t.cellAt(x+w-0.01, y+h*0.5)
	t.screen.SetCell(ex, ey, core.Cell{Rune: glyphEye, FG: core.ColorBlack})
	if bx != ex || by != ey {
		t.screen.SetCell(bx, by, core.Cell{Rune: beak, FG: core.ColorBlack})
	}
}
