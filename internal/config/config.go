// Package config provides the named tuning table for the game and loads it
// from YAML or TOML files.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned when a configuration breaks a geometry invariant.
var ErrInvalid = errors.New("config: invalid")

// Config contains all tuning for Flapwii Bird.
type Config struct {
	Screen  ScreenConfig  `yaml:"screen" toml:"screen"`
	Physics PhysicsConfig `yaml:"physics" toml:"physics"`
	Body    BodyConfig    `yaml:"body" toml:"body"`
	Pipe    PipeConfig    `yaml:"pipe" toml:"pipe"`
	Ground  GroundConfig  `yaml:"ground" toml:"ground"`
	Pointer PointerConfig `yaml:"pointer" toml:"pointer"`
	Render  RenderConfig  `yaml:"render" toml:"render"`
}

// ScreenConfig is the logical play field size in pixels.
type ScreenConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// PhysicsConfig defines the body integration parameters.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity" toml:"gravity"`           // Added to velocity every frame
	FlapImpulse float64 `yaml:"flap_impulse" toml:"flap_impulse"` // Velocity set on flap (negative = up)
	ScoringZone float64 `yaml:"scoring_zone" toml:"scoring_zone"` // Pass-detection window width
}

// BodyConfig defines the controllable body's sprite size and hitbox scale.
type BodyConfig struct {
	Width  int     `yaml:"width" toml:"width"`
	Height int     `yaml:"height" toml:"height"`
	Scale  float64 `yaml:"scale" toml:"scale"`
}

// PipeConfig defines obstacle geometry and speed.
type PipeConfig struct {
	Width         int     `yaml:"width" toml:"width"`
	Gap           int     `yaml:"gap" toml:"gap"`
	Speed         float64 `yaml:"speed" toml:"speed"`
	TextureHeight int     `yaml:"texture_height" toml:"texture_height"`
}

// GroundConfig defines the ground strip layout.
type GroundConfig struct {
	Line         int `yaml:"line" toml:"line"`                   // Top of the ground strip, the death line
	Outline      int `yaml:"outline" toml:"outline"`             // Outline band height
	Grass        int `yaml:"grass" toml:"grass"`                 // Grass band height
	Shadow       int `yaml:"shadow" toml:"shadow"`               // Shadow band height
	PatternWidth int `yaml:"pattern_width" toml:"pattern_width"` // Chevron repeat width
	Cell         int `yaml:"cell" toml:"cell"`                   // Dirt speckle cell size
}

// PointerConfig maps raw pointer input to the menu cursor.
type PointerConfig struct {
	Sensitivity float64 `yaml:"sensitivity" toml:"sensitivity"`
	CorrectionY float64 `yaml:"correction_y" toml:"correction_y"`
}

// RenderConfig holds presentation-only tuning.
type RenderConfig struct {
	RotationFactor float64 `yaml:"rotation_factor" toml:"rotation_factor"`
}

// BodyStart returns the body's start position: a third of the way into the screen.
func (c Config) BodyStart() (x, y float64) {
	return float64(c.Screen.Width) / 3.0, float64(c.Screen.Height) / 3.0
}

// BodySize returns the scaled hitbox size of the body.
func (c Config) BodySize() (w, h float64) {
	return float64(c.Body.Width) * c.Body.Scale, float64(c.Body.Height) * c.Body.Scale
}

// GapBand returns the inclusive range of gap positions a pipe may draw.
func (c Config) GapBand() (lo, hi int) {
	quarter := c.Screen.Height / 4
	return quarter + 1, quarter + c.Screen.Height/2
}

// Cursor maps a raw pointer position to menu cursor coordinates.
func (p PointerConfig) Cursor(x, y float64) (int, int) {
	return int(x * p.Sensitivity), int((y - p.CorrectionY) * p.Sensitivity)
}

// Raw is the inverse of Cursor; platforms without a sensor bar use it to
// express a screen position as raw pointer input.
func (p PointerConfig) Raw(x, y float64) (float64, float64) {
	if p.Sensitivity == 0 {
		return x, y + p.CorrectionY
	}
	return x / p.Sensitivity, y/p.Sensitivity + p.CorrectionY
}

// Validate checks that the table keeps the play field geometry sound.
func (c Config) Validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalid, c.Screen.Width, c.Screen.Height)
	case c.Body.Width <= 0 || c.Body.Height <= 0 || c.Body.Scale <= 0:
		return fmt.Errorf("%w: body size", ErrInvalid)
	case c.Pipe.Width <= 0 || c.Pipe.Speed <= 0:
		return fmt.Errorf("%w: pipe width and speed must be positive", ErrInvalid)
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("%w: gravity %v must be positive", ErrInvalid, c.Physics.Gravity)
	case c.Ground.PatternWidth <= 0 || c.Ground.Cell <= 0:
		return fmt.Errorf("%w: ground pattern width and cell must be positive", ErrInvalid)
	}

	lo, hi := c.GapBand()
	if c.Pipe.Gap <= 0 || c.Pipe.Gap >= lo {
		return fmt.Errorf("%w: pipe gap %d must be in (0, %d)", ErrInvalid, c.Pipe.Gap, lo)
	}
	if c.Ground.Line <= hi || c.Ground.Line > c.Screen.Height {
		return fmt.Errorf("%w: ground line %d must be in (%d, %d]", ErrInvalid, c.Ground.Line, hi, c.Screen.Height)
	}
	return nil
}
