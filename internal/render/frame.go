package render

import (
	"github.com/vovakirdan/flapwii/internal/config"
	"github.com/vovakirdan/flapwii/internal/core"
	"github.com/vovakirdan/flapwii/internal/games/flapwii"
)

// Text layout in logical pixels.
const (
	scoreX, scoreY = 20, 10
	bestX, bestY   = 150, 10
	hudSize        = 24

	titleX, titleY   = 165, 70
	titleSize        = 96
	promptX, promptY = 175, 300
	promptSize       = 72
)

const (
	titleText  = "Flapwii Bird"
	promptText = "Press A to flap"
)

const (
	flippedPipeRotation = 180
	flippedPipeScaleX   = -1
	uprightScale        = 1
)

// Frame draws one snapshot: sky, then either the menu or the world, then
// the score line.
func Frame(c Canvas, snap flapwii.Snapshot, cfg config.Config) {
	c.DrawRect(0, 0, cfg.Screen.Width, cfg.Screen.Height, core.ColorSky, true)

	if snap.Mode == flapwii.ModeMenu {
		drawMenu(c, snap)
	} else {
		drawWorld(c, snap, cfg)
	}

	c.DrawText(scoreX, scoreY, FontHUD, snap.ScoreText, hudSize, core.ColorHUD)
	c.DrawText(bestX, bestY, FontHUD, snap.BestText, hudSize, core.ColorHUD)
}

func drawMenu(c Canvas, snap flapwii.Snapshot) {
	c.DrawText(titleX, titleY, FontTitle, titleText, titleSize, core.ColorTitle)
	c.DrawText(promptX, promptY, FontTitle, promptText, promptSize, core.ColorTitle)
	c.DrawSprite(float64(snap.Cursor.X), float64(snap.Cursor.Y), TextureBird, 0, uprightScale, uprightScale, core.ColorWhite)
}

func drawWorld(c Canvas, snap flapwii.Snapshot, cfg config.Config) {
	gap := float64(cfg.Pipe.Gap)
	for _, p := range snap.Pipes {
		if !p.Visible {
			continue
		}
		c.DrawSprite(p.X, p.Y, TexturePipe, 0, uprightScale, uprightScale, core.ColorWhite)
		c.DrawSprite(p.X, p.Y-gap, TexturePipe, flippedPipeRotation, flippedPipeScaleX, uprightScale, core.ColorWhite)
	}

	for _, d := range snap.Ground {
		switch d.Kind {
		case flapwii.DirectivePixel:
			c.PlotPixel(d.X, d.Y, d.Color)
		default:
			c.DrawRect(d.X, d.Y, d.W, d.H, d.Color, d.Filled)
		}
	}

	scale := cfg.Body.Scale
	c.DrawSprite(snap.Body.X, snap.Body.Y, TextureBird, snap.Body.Rotation, scale, scale, core.ColorWhite)
}
