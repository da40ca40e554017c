package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultPongConfig()
	if err := yaml.Unmarshal(defaultPongYAML, &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultPongConfig() {
		t.Errorf("embedded defaults differ from DefaultPongConfig():\n%+v\n%+v", cfg, DefaultPongConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoadCustomPathMergesOntoDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "pong.yaml", `
trail:
  length: 30
gameplay:
  win_score: 11
`)

	cfg, err := LoadPong(path)
	if err != nil {
		t.Fatalf("LoadPong() failed: %v", err)
	}
	if cfg.Trail.Length != 30 {
		t.Errorf("Trail.Length = %d, expected 30", cfg.Trail.Length)
	}
	if cfg.Gameplay.WinScore != 11 {
		t.Errorf("WinScore = %d, expected 11", cfg.Gameplay.WinScore)
	}
	// Untouched keys keep their defaults
	if cfg.Trail.Interval != DefaultPongConfig().Trail.Interval {
		t.Errorf("Trail.Interval = %d, expected default", cfg.Trail.Interval)
	}
	if !cfg.Trail.Enabled {
		t.Error("Trail.Enabled should keep its default")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml")},
		{"bad yaml", writeFile(t, dir, "bad.yaml", "physics: [unclosed")},
		{"invalid values", writeFile(t, dir, "invalid.yaml", "paddles:\n  height: 0\n")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadPong(tc.path); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestSearchOrder(t *testing.T) {
	dir := t.TempDir()
	user := writeFile(t, dir, "user.yaml", "feed:\n  length: 9\n")
	local := writeFile(t, dir, "local.yaml", "feed:\n  length: 7\n")
	broken := writeFile(t, dir, "broken.yaml", "feed: {")
	missing := filepath.Join(dir, "missing.yaml")

	tests := []struct {
		name     string
		paths    []string
		wantFrom string
		wantFeed int
	}{
		{"user first", []string{user, local}, user, 9},
		{"skip missing", []string{missing, local}, local, 7},
		{"skip broken", []string{broken, local}, local, 7},
		{"skip empty path", []string{"", user}, user, 9},
		{"embedded fallback", []string{missing}, "", DefaultPongConfig().Feed.Length},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, from, err := loadPong("", tc.paths...)
			if err != nil {
				t.Fatalf("loadPong() failed: %v", err)
			}
			if from != tc.wantFrom {
				t.Errorf("loaded from %q, expected %q", from, tc.wantFrom)
			}
			if cfg.Feed.Length != tc.wantFeed {
				t.Errorf("Feed.Length = %d, expected %d", cfg.Feed.Length, tc.wantFeed)
			}
		})
	}
}

func TestApplyPongPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		enabled     bool
		level       float64
		paddleDelta int
	}{
		{"", true, 0.0, 0},
		{DifficultyEasy, true, 0.0, 1},
		{DifficultyNormal, true, 0.3, 0},
		{DifficultyHard, true, 0.7, -1},
		{DifficultyFixed, false, 0.0, 0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultPongConfig()
			ApplyPongPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.level)
			}
			if got := cfg.Paddles.Height - DefaultPongConfig().Paddles.Height; got != tc.paddleDelta {
				t.Errorf("paddle height delta = %d, expected %d", got, tc.paddleDelta)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset(insane) should fail")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultPongConfig()
	cfg.Trail.Length = 0
	if err := cfg.Validate(); err == nil {
		t.Error("enabled trail with zero length should not validate")
	}

	cfg.Trail.Enabled = false
	if err := cfg.Validate(); err != nil {
		t.Errorf("disabled trail should not be checked: %v", err)
	}
}
