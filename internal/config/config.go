// Package config provides YAML-based game configuration loading and
// difficulty presets for the game.
package config

// TetrisConfig contains all configuration for a game session.
type TetrisConfig struct {
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GameplayConfig defines the engine settings chosen before a game starts.
type GameplayConfig struct {
	StartLevel int    `yaml:"start_level"` // 0..29
	Ghost      bool   `yaml:"ghost"`       // Show where the piece will land
	Preview    int    `yaml:"preview"`     // Upcoming pieces shown, 0..4
	Mode       string `yaml:"mode"`        // "marathon" or "sprint"
}

// DifficultyConfig selects a named preset. A preset overrides StartLevel.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// Limits enforced by Validate.
const (
	MaxStartLevel = 29
	MaxPreview    = 4
)

// Game modes accepted in GameplayConfig.Mode.
const (
	ModeMarathon = "marathon"
	ModeSprint   = "sprint"
)
