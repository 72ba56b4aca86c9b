package config

import "fmt"

// DifficultyPreset represents a named starting speed.
type DifficultyPreset string

const (
	DifficultyNone   DifficultyPreset = ""
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyNone, DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return DifficultyNone, fmt.Errorf("config: unknown difficulty preset %q", s)
	}
}

// StartLevelForPreset returns the starting level for a preset, and false for
// DifficultyNone.
func StartLevelForPreset(preset DifficultyPreset) (int, bool) {
	switch preset {
	case DifficultyEasy:
		return 0, true
	case DifficultyNormal:
		return 9, true
	case DifficultyHard:
		return 19, true
	default:
		return 0, false
	}
}

// ApplyPreset sets the preset and the start level it implies.
func ApplyPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = preset
	if level, ok := StartLevelForPreset(preset); ok {
		cfg.Gameplay.StartLevel = level
	}
}
