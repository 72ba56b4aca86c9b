package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Gameplay: GameplayConfig{
			StartLevel: 0,
			Ghost:      true,
			Preview:    MaxPreview,
			Mode:       ModeMarathon,
		},
	}
}
