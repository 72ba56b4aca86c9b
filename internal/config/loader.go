package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "tetris.yaml"

// LoadTetris loads the game configuration.
// Search order: customPath -> ~/.tetris/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
// The result is validated and normalised before it is returned.
func LoadTetris(customPath string) (TetrisConfig, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func load(customPath string) (TetrisConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultTetrisConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if cfg, ok := tryFile(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryFile(filepath.Join("configs", configFile)); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultTetrisConfig()
	if err := yaml.Unmarshal(defaultTetrisYAML, &cfg); err != nil {
		return DefaultTetrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryFile parses path on top of the defaults. Missing or broken files are skipped.
func tryFile(path string) (TetrisConfig, bool) {
	cfg := DefaultTetrisConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", "configs", filename)
}

// Validate clamps numeric settings into range, fills in the default mode and
// applies the difficulty preset. Unknown mode or preset names are errors.
func (c *TetrisConfig) Validate() error {
	c.Gameplay.StartLevel = clamp(c.Gameplay.StartLevel, 0, MaxStartLevel)
	c.Gameplay.Preview = clamp(c.Gameplay.Preview, 0, MaxPreview)

	switch c.Gameplay.Mode {
	case "":
		c.Gameplay.Mode = ModeMarathon
	case ModeMarathon, ModeSprint:
	default:
		return fmt.Errorf("unknown mode %q", c.Gameplay.Mode)
	}

	preset, err := ParsePreset(string(c.Difficulty.Preset))
	if err != nil {
		return err
	}
	ApplyPreset(c, preset)
	return nil
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
