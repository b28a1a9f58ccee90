// Package render turns game snapshots into draw calls on a Canvas.
// The game owns no pixels; a Canvas decides how calls become output.
package render

import "github.com/vovakirdan/flapwii/internal/core"

// TextureID names a sprite texture.
type TextureID int

const (
	TextureBird TextureID = iota
	TexturePipe
)

// FontID names a font face.
type FontID int

const (
	FontHUD FontID = iota
	FontTitle
)

// Canvas is the renderer boundary. Coordinates are logical screen pixels.
//
// Sprites rotated by 180 degrees hang upward from their anchor: a texture
// of height h drawn at y covers [y-h, y].
type Canvas interface {
	DrawSprite(x, y float64, tex TextureID, rotation, scaleX, scaleY float64, tint core.Color)
	DrawText(x, y int, font FontID, text string, size int, c core.Color)
	DrawRect(x, y, w, h int, c core.Color, filled bool)
	PlotPixel(x, y int, c core.Color)
}
