// Package config provides YAML-based game configuration loading and
// difficulty management for Pong.
package config

import (
	"errors"
	"fmt"
)

// PongConfig contains all configuration for Pong.
type PongConfig struct {
	Physics    PongPhysics      `yaml:"physics"`
	Paddles    PongPaddles      `yaml:"paddles"`
	Gameplay   PongGameplay     `yaml:"gameplay"`
	CPU        PongCPU          `yaml:"cpu"`
	Trail      PongTrail        `yaml:"trail"`
	Feed       PongFeed         `yaml:"feed"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PongPhysics defines ball and paddle motion. Speeds are cells per tick.
type PongPhysics struct {
	BallSpeed    float64 `yaml:"ball_speed"`
	PaddleSpeed  float64 `yaml:"paddle_speed"`
	MaxBallSpeed float64 `yaml:"max_ball_speed"` // Multiple of ball_speed
	SpinFactor   float64 `yaml:"spin_factor"`
	SpeedUp      float64 `yaml:"speed_up"`      // Horizontal speed multiplier per paddle hit
	BounceSpread float64 `yaml:"bounce_spread"` // Max vertical speed after a hit, as a fraction of ball_speed
}

// PongPaddles defines paddle geometry.
type PongPaddles struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
	Offset int `yaml:"offset"` // Distance from the screen edge
}

// PongGameplay defines match rules.
type PongGameplay struct {
	WinScore  int     `yaml:"win_score"`
	Countdown float64 `yaml:"countdown"` // Seconds before each serve
}

// PongCPU defines the computer opponent.
type PongCPU struct {
	MinSkill float64 `yaml:"min_skill"` // Reaction at difficulty 0 (0-1)
	MaxSkill float64 `yaml:"max_skill"` // Reaction at difficulty 1 (0-1)
}

// PongTrail defines the fading ball trail.
type PongTrail struct {
	Enabled  bool `yaml:"enabled"`
	Length   int  `yaml:"length"`   // Positions kept
	Interval int  `yaml:"interval"` // Ticks between samples
}

// PongFeed defines the rally feed shown under the score.
type PongFeed struct {
	Length int `yaml:"length"` // Rallies kept besides the match-start entry
}

// Validate reports settings the game cannot run with.
func (c PongConfig) Validate() error {
	var errs []error
	if c.Paddles.Height < 1 || c.Paddles.Width < 1 {
		errs = append(errs, fmt.Errorf("paddles: height and width must be positive, got %dx%d", c.Paddles.Width, c.Paddles.Height))
	}
	if c.Gameplay.WinScore < 1 {
		errs = append(errs, fmt.Errorf("gameplay: win_score must be positive, got %d", c.Gameplay.WinScore))
	}
	if c.Physics.BallSpeed <= 0 || c.Physics.PaddleSpeed <= 0 {
		errs = append(errs, errors.New("physics: ball_speed and paddle_speed must be positive"))
	}
	if c.Trail.Enabled && (c.Trail.Length < 1 || c.Trail.Interval < 1) {
		errs = append(errs, fmt.Errorf("trail: length and interval must be positive, got %d/%d", c.Trail.Length, c.Trail.Interval))
	}
	if c.Feed.Length < 0 {
		errs = append(errs, fmt.Errorf("feed: length must not be negative, got %d", c.Feed.Length))
	}
	return errors.Join(errs...)
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
