package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, configFile)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// isolate points the search path at empty directories.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func TestLoadEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, err := LoadTetris("")
	if err != nil {
		t.Fatalf("LoadTetris() error = %v", err)
	}
	if cfg != DefaultTetrisConfig() {
		t.Errorf("LoadTetris() = %+v, expected defaults %+v", cfg, DefaultTetrisConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := writeConfig(t, t.TempDir(), `
gameplay:
  start_level: 12
  ghost: false
  preview: 2
  mode: sprint
`)

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris(%q) error = %v", path, err)
	}
	want := GameplayConfig{StartLevel: 12, Ghost: false, Preview: 2, Mode: ModeSprint}
	if cfg.Gameplay != want {
		t.Errorf("Gameplay = %+v, expected %+v", cfg.Gameplay, want)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	isolate(t)
	path := writeConfig(t, t.TempDir(), "gameplay:\n  start_level: 5\n")

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris() error = %v", err)
	}
	if cfg.Gameplay.StartLevel != 5 {
		t.Errorf("StartLevel = %d, expected 5", cfg.Gameplay.StartLevel)
	}
	if !cfg.Gameplay.Ghost || cfg.Gameplay.Preview != MaxPreview || cfg.Gameplay.Mode != ModeMarathon {
		t.Errorf("unset fields should keep defaults, got %+v", cfg.Gameplay)
	}
}

func TestLoadUserDirBeatsLocal(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	work := t.TempDir()
	t.Chdir(work)

	userDir := filepath.Join(home, ".tetris", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeConfig(t, userDir, "gameplay:\n  start_level: 3\n")

	localDir := filepath.Join(work, "configs")
	if err := os.MkdirAll(localDir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeConfig(t, localDir, "gameplay:\n  start_level: 7\n")

	cfg, err := LoadTetris("")
	if err != nil {
		t.Fatalf("LoadTetris() error = %v", err)
	}
	if cfg.Gameplay.StartLevel != 3 {
		t.Errorf("StartLevel = %d, expected user config value 3", cfg.Gameplay.StartLevel)
	}

	os.Remove(filepath.Join(userDir, configFile))
	cfg, err = LoadTetris("")
	if err != nil {
		t.Fatalf("LoadTetris() error = %v", err)
	}
	if cfg.Gameplay.StartLevel != 7 {
		t.Errorf("StartLevel = %d, expected local config value 7", cfg.Gameplay.StartLevel)
	}
}

func TestLoadErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
		want string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), "failed to read config"},
		{"bad yaml", writeConfig(t, t.TempDir(), "gameplay: [\n"), "failed to parse config"},
		{"bad mode", writeConfig(t, t.TempDir(), "gameplay:\n  mode: ultra\n"), "unknown mode"},
		{"bad preset", writeConfig(t, t.TempDir(), "difficulty:\n  preset: insane\n"), "unknown difficulty preset"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadTetris(tc.path)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("LoadTetris() error = %v, expected it to contain %q", err, tc.want)
			}
		})
	}
}

func TestValidateClamps(t *testing.T) {
	cfg := TetrisConfig{Gameplay: GameplayConfig{StartLevel: 99, Preview: -1}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.Gameplay.StartLevel != MaxStartLevel {
		t.Errorf("StartLevel = %d, expected %d", cfg.Gameplay.StartLevel, MaxStartLevel)
	}
	if cfg.Gameplay.Preview != 0 {
		t.Errorf("Preview = %d, expected 0", cfg.Gameplay.Preview)
	}
	if cfg.Gameplay.Mode != ModeMarathon {
		t.Errorf("Mode = %q, expected %q", cfg.Gameplay.Mode, ModeMarathon)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		level  int
	}{
		{DifficultyEasy, 0},
		{DifficultyNormal, 9},
		{DifficultyHard, 19},
	}
	for _, tc := range tests {
		cfg := DefaultTetrisConfig()
		cfg.Gameplay.StartLevel = 4
		ApplyPreset(&cfg, tc.preset)
		if cfg.Gameplay.StartLevel != tc.level {
			t.Errorf("ApplyPreset(%q) start level = %d, expected %d", tc.preset, cfg.Gameplay.StartLevel, tc.level)
		}
	}

	cfg := DefaultTetrisConfig()
	cfg.Gameplay.StartLevel = 4
	ApplyPreset(&cfg, DifficultyNone)
	if cfg.Gameplay.StartLevel != 4 {
		t.Errorf("empty preset should keep start level, got %d", cfg.Gameplay.StartLevel)
	}

	if _, err := ParsePreset("fixed"); err == nil {
		t.Error("ParsePreset(\"fixed\") should fail")
	}
}
