package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load reads a game config.
// Search order: customPath -> ~/.arcade/configs/<name> -> ./configs/<name> -> embedded default.
// Only an explicit custom path reports errors; the other sources are skipped
// when missing or broken.
func load[T any](customPath, name string, embedded []byte, fallback func() T) (T, error) {
	cfg := fallback()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fallback(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(name); userCfgPath != "" {
		if loaded, ok := parse(userCfgPath, fallback); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := parse(filepath.Join("configs", name), fallback); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse reads one optional config file over the hardcoded defaults, so a
// partial file only overrides the keys it sets.
func parse[T any](path string, fallback func() T) (T, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		var zero T
		return zero, false
	}
	cfg := fallback()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		var zero T
		return zero, false
	}
	return cfg, true
}

func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// LoadEscape loads Boat Escape configuration.
func LoadEscape(customPath string) (EscapeConfig, error) {
	return load(customPath, "escape.yaml", defaultEscapeYAML, DefaultEscapeConfig)
}

// LoadExtraction loads Extraction configuration.
func LoadExtraction(customPath string) (ExtractionConfig, error) {
	return load(customPath, "extraction.yaml", defaultExtractionYAML, DefaultExtractionConfig)
}

// LoadInvaders loads Invaders configuration.
func LoadInvaders(customPath string) (InvadersConfig, error) {
	return load(customPath, "invaders.yaml", defaultInvadersYAML, DefaultInvadersConfig)
}

// LoadSurvivors loads Survivors configuration.
func LoadSurvivors(customPath string) (SurvivorsConfig, error) {
	return load(customPath, "survivors.yaml", defaultSurvivorsYAML, DefaultSurvivorsConfig)
}

// LoadWings loads Wings configuration.
func LoadWings(customPath string) (WingsConfig, error) {
	return load(customPath, "wings.yaml", defaultWingsYAML, DefaultWingsConfig)
}
