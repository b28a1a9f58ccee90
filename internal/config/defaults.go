package config

import (
	_ "embed"
)

//go:embed defaults/flapwii.yaml
var defaultYAML []byte

// DefaultConfig returns the default Flapwii Bird configuration.
func DefaultConfig() Config {
	return Config{
		Screen: ScreenConfig{
			Width:  640,
			Height: 480,
		},
		Physics: PhysicsConfig{
			Gravity:     0.5,
			FlapImpulse: -6.5,
			ScoringZone: 20,
		},
		Body: BodyConfig{
			Width:  144,
			Height: 100,
			Scale:  0.3,
		},
		Pipe: PipeConfig{
			Width:         52,
			Gap:           100,
			Speed:         1.0,
			TextureHeight: 320,
		},
		Ground: GroundConfig{
			Line:         420,
			Outline:      2,
			Grass:        10,
			Shadow:       2,
			PatternWidth: 12,
			Cell:         4,
		},
		Pointer: PointerConfig{
			Sensitivity: 0.7,
			CorrectionY: 200,
		},
		Render: RenderConfig{
			RotationFactor: 1.3,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
