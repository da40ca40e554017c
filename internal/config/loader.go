package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// localConfigDir is searched relative to the working directory.
const localConfigDir = "configs"

// LoadPong loads Pong configuration.
// Search order: customPath -> ~/.pong/configs/pong.yaml -> ./configs/pong.yaml -> embedded default.
// Files are merged onto DefaultPongConfig, so they only need the keys they change.
// A custom path that cannot be read or parsed is an error; the other locations
// are skipped when missing or broken.
func LoadPong(customPath string) (PongConfig, error) {
	cfg, _, err := loadPong(customPath, userConfigPath("pong.yaml"), filepath.Join(localConfigDir, "pong.yaml"))
	return cfg, err
}

// loadPong returns the config and the path it came from ("" for the embedded default).
func loadPong(customPath string, searchPaths ...string) (PongConfig, string, error) {
	if customPath != "" {
		cfg, err := decodePongFile(customPath)
		if err != nil {
			return DefaultPongConfig(), "", err
		}
		return cfg, customPath, nil
	}

	for _, path := range searchPaths {
		if path == "" {
			continue
		}
		if cfg, err := decodePongFile(path); err == nil {
			return cfg, path, nil
		}
	}

	cfg := DefaultPongConfig()
	if err := yaml.Unmarshal(defaultPongYAML, &cfg); err != nil {
		return DefaultPongConfig(), "", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "", nil
}

// decodePongFile reads one YAML file on top of the defaults and validates it.
func decodePongFile(path string) (PongConfig, error) {
	cfg := DefaultPongConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("config %s does not exist: %w", path, err)
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pong", "configs", filename)
}

// ApplyPongPreset modifies the config based on a difficulty preset.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Paddle size follows the preset too
	switch preset {
	case DifficultyEasy:
		cfg.Paddles.Height++
	case DifficultyHard:
		cfg.Paddles.Height = max(cfg.Paddles.Height-1, 2)
	}
}
