package flapwii

import (
	"math"

	"github.com/vovakirdan/flapwii/internal/config"
	"github.com/vovakirdan/flapwii/internal/core"
)

// Hash mixing constants. Changing them changes every dirt pattern.
const (
	hashC1 uint32 = 374761393
	hashC2 uint32 = 668265263
	hashC3 uint32 = 1274126177
)

// Speckle thresholds on the probability byte.
const (
	speckDarkBelow  = 20
	speckLightBelow = 40
	rockValue       = 255
	rockW           = 3
	rockH           = 2
)

// Hash mixes a world cell coordinate into a reproducible 32-bit value.
func Hash(wx, wy int32) uint32 {
	h := uint32(wx)*hashC1 ^ uint32(wy)*hashC2
	return (h ^ h>>13) * hashC3
}

// Layer identifies which ground band a directive belongs to.
type Layer uint8

const (
	LayerOutline Layer = iota
	LayerGrass
	LayerChevron
	LayerShadow
	LayerDirt
	LayerSpeck
)

// DirectiveKind selects the canvas call a directive maps to.
type DirectiveKind uint8

const (
	DirectiveRect DirectiveKind = iota
	DirectivePixel
)

// Directive is a single ground draw command in screen pixels.
type Directive struct {
	Kind   DirectiveKind
	Layer  Layer
	X, Y   int
	W, H   int
	Color  core.Color
	Filled bool
}

// Scroll is the world scroll state: the chevron phase wraps within
// (-patternWidth, 0], WorldX only grows.
type Scroll struct {
	Phase  float64
	WorldX float64
}

// Advance scrolls the ground by speed pixels.
func (s *Scroll) Advance(speed, patternWidth float64) {
	s.Phase = math.Mod(s.Phase-speed, patternWidth)
	s.WorldX += speed
}

// Reset puts both phase and world position back to zero.
func (s *Scroll) Reset() {
	*s = Scroll{}
}

// Ground lays out the ground strip below the ground line.
type Ground struct {
	line    int
	outline int
	grass   int
	shadow  int
	pattern int
	cell    int
}

// NewGround creates a generator from the ground table.
func NewGround(cfg config.GroundConfig) Ground {
	return Ground{
		line:    cfg.Line,
		outline: cfg.Outline,
		grass:   cfg.Grass,
		shadow:  cfg.Shadow,
		pattern: max(cfg.PatternWidth, 1),
		cell:    max(cfg.Cell, 1),
	}
}

// PatternWidth returns the chevron repeat width.
func (g Ground) PatternWidth() int {
	return g.pattern
}

// Generate returns the ground directives for one frame. The output depends
// only on its arguments and every directive lies inside the screen.
func (g Ground) Generate(s Scroll, screenW, screenH int) []Directive {
	if screenW <= 0 || screenH <= 0 || g.line >= screenH {
		return nil
	}

	var out []Directive
	y := g.line

	band := func(layer Layer, h int, c core.Color) {
		if d, ok := clipRect(layer, 0, y, screenW, h, c, screenW, screenH); ok {
			out = append(out, d)
		}
	}

	band(LayerOutline, g.outline, core.ColorOutline)
	y += g.outline

	band(LayerGrass, g.grass, core.ColorGrass)
	out = g.chevrons(out, s.Phase, y, screenW, screenH)
	y += g.grass

	band(LayerShadow, g.shadow, core.ColorShadow)
	y += g.shadow

	band(LayerDirt, screenH-y, core.ColorDirt)
	return g.specks(out, s.WorldX, y, screenW, screenH)
}

// chevrons draws one ">" per pattern repeat across the grass band, shifted
// by the scroll phase.
func (g Ground) chevrons(out []Directive, phase float64, top, screenW, screenH int) []Directive {
	if g.grass <= 0 {
		return out
	}
	stripe := max(g.pattern/2, 1)
	half := (g.grass - 1) / 2
	start := int(math.Floor(phase))
	for sx := start; sx < screenW; sx += g.pattern {
		for r := 0; r < g.grass; r++ {
			off := r
			if r > half {
				off = g.grass - 1 - r
			}
			if d, ok := clipRect(LayerChevron, sx+off, top+r, stripe, 1, core.ColorChevron, screenW, screenH); ok {
				out = append(out, d)
			}
		}
	}
	return out
}

// specks scatters dirt marks. Each world cell hashes to the same mark no
// matter where it is on screen.
func (g Ground) specks(out []Directive, worldX float64, top, screenW, screenH int) []Directive {
	if top >= screenH {
		return out
	}
	scroll := int(math.Floor(worldX))
	cell := g.cell
	first := floorDiv(scroll, cell) * cell

	for wx := first; wx < scroll+screenW; wx += cell {
		for wy := top; wy < screenH; wy += cell {
			h := Hash(int32(wx), int32(wy))
			prob := h >> 24
			jx := int(h % uint32(cell))
			jy := int((h / uint32(cell)) % uint32(cell))
			x, y := wx-scroll+jx, wy+jy

			switch {
			case prob == rockValue:
				if d, ok := clipRect(LayerSpeck, x, y, rockW, rockH, core.ColorRock, screenW, screenH); ok {
					out = append(out, d)
				}
			case prob < speckDarkBelow:
				out = appendPixel(out, x, y, core.ColorSpeckDk, screenW, screenH)
			case prob < speckLightBelow:
				out = appendPixel(out, x, y, core.ColorSpeckLt, screenW, screenH)
			}
		}
	}
	return out
}

func appendPixel(out []Directive, x, y int, c core.Color, screenW, screenH int) []Directive {
	if x < 0 || y < 0 || x >= screenW || y >= screenH {
		return out
	}
	return append(out, Directive{Kind: DirectivePixel, Layer: LayerSpeck, X: x, Y: y, W: 1, H: 1, Color: c, Filled: true})
}

// clipRect clips a filled rectangle to the screen; ok is false when nothing
// is left.
func clipRect(layer Layer, x, y, w, h int, c core.Color, screenW, screenH int) (Directive, bool) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, screenW), min(y+h, screenH)
	if x1 <= x0 || y1 <= y0 {
		return Directive{}, false
	}
	return Directive{Kind: DirectiveRect, Layer: layer, X: x0, Y: y0, W: x1 - x0, H: y1 - y0, Color: c, Filled: true}, true
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
