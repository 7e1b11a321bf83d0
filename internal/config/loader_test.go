package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	// Run from a temp dir so ./configs cannot shadow the embedded files.
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		name     string
		load     func() (any, error)
		expected any
	}{
		{"escape", func() (any, error) { return LoadEscape("") }, DefaultEscapeConfig()},
		{"extraction", func() (any, error) { return LoadExtraction("") }, DefaultExtractionConfig()},
		{"invaders", func() (any, error) { return LoadInvaders("") }, DefaultInvadersConfig()},
		{"survivors", func() (any, error) { return LoadSurvivors("") }, DefaultSurvivorsConfig()},
		{"wings", func() (any, error) { return LoadWings("") }, DefaultWingsConfig()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("embedded %s.yaml differs from the hardcoded defaults:\n got %+v\nwant %+v", tc.name, got, tc.expected)
			}
			if len(GetDefaultYAML(tc.name)) == 0 {
				t.Errorf("GetDefaultYAML(%q) is empty", tc.name)
			}
		})
	}
}

func TestLoadCustomPathOverridesPartially(t *testing.T) {
	path := filepath.Join(t.TempDir(), "escape.yaml")
	data := []byte("containers:\n  goal: 5\nupgrades:\n  shuffle: comparator\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadEscape(path)
	if err != nil {
		t.Fatalf("LoadEscape() error = %v", err)
	}
	if cfg.Containers.Goal != 5 {
		t.Errorf("Containers.Goal = %d, expected 5", cfg.Containers.Goal)
	}
	if cfg.Upgrades.Shuffle != "comparator" {
		t.Errorf("Upgrades.Shuffle = %q, expected comparator", cfg.Upgrades.Shuffle)
	}
	if cfg.Player.Speed != 300 {
		t.Errorf("Player.Speed = %v, expected the default 300", cfg.Player.Speed)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadWings(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadWings() with a missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("world: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadSurvivors(path)
	if err == nil {
		t.Error("LoadSurvivors() with broken yaml should fail")
	}
	if cfg.WinTime != 300 {
		t.Errorf("broken config should fall back to defaults, WinTime = %v", cfg.WinTime)
	}
}

func TestLocalConfigsDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "invaders.yaml"), []byte("formation:\n  drop: 40\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadInvaders("")
	if err != nil {
		t.Fatalf("LoadInvaders() error = %v", err)
	}
	if cfg.Formation.Drop != 40 {
		t.Errorf("Formation.Drop = %v, expected 40", cfg.Formation.Drop)
	}
}

func TestDifficultyMultiplier(t *testing.T) {
	tests := []struct {
		name     string
		cfg      DifficultyConfig
		gameTime float64
		expected float64
	}{
		{"start", DifficultyConfig{Enabled: true, Ramp: 30}, 0, 1},
		{"one ramp in", DifficultyConfig{Enabled: true, Ramp: 30}, 30, 2},
		{"head start", DifficultyConfig{Enabled: true, Ramp: 30, HeadStart: 30}, 0, 2},
		{"disabled", DifficultyConfig{Enabled: false, Ramp: 30}, 90, 1},
		{"no ramp", DifficultyConfig{Enabled: true}, 90, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDifficultyManager(tc.cfg)
			if got := d.Multiplier(tc.gameTime); got != tc.expected {
				t.Errorf("Multiplier(%v) = %v, expected %v", tc.gameTime, got, tc.expected)
			}
		})
	}
}

func TestDifficultyProgress(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{Enabled: true, HeadStart: 30})
	if got := d.Progress(10); got != 40 {
		t.Errorf("Progress(10) = %v, expected 40", got)
	}

	d.SetEnabled(false)
	if got := d.Progress(10); got != 0 {
		t.Errorf("Progress(10) with progression off = %v, expected 0", got)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		expected DifficultyConfig
	}{
		{DifficultyEasy, DifficultyConfig{Enabled: true, Ramp: 45}},
		{DifficultyNormal, DifficultyConfig{Enabled: true, Ramp: 30}},
		{DifficultyHard, DifficultyConfig{Enabled: true, Ramp: 30, HeadStart: 30}},
		{DifficultyFixed, DifficultyConfig{Enabled: false, Ramp: 30}},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DifficultyConfig{Enabled: true, Ramp: 30}
			ApplyPreset(&cfg, tc.preset)
			if cfg != tc.expected {
				t.Errorf("ApplyPreset(%s) = %+v, expected %+v", tc.preset, cfg, tc.expected)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("ParsePreset of an unknown preset should return empty")
	}
	if !IsFixedPreset(ParsePreset("fixed")) {
		t.Error("fixed preset should disable progression")
	}
}
