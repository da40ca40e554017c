package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default Pong configuration.
// It matches defaults/pong.yaml and is the base every loaded file is merged onto.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Physics: PongPhysics{
			BallSpeed:    0.5,
			PaddleSpeed:  1.0,
			MaxBallSpeed: 3.0,
			SpinFactor:   0.3,
			SpeedUp:      1.02,
			BounceSpread: 0.7,
		},
		Paddles: PongPaddles{
			Height: 5,
			Width:  1,
			Offset: 2,
		},
		Gameplay: PongGameplay{
			WinScore:  5,
			Countdown: 3,
		},
		CPU: PongCPU{
			MinSkill: 0.6,
			MaxSkill: 0.85,
		},
		Trail: PongTrail{
			Enabled:  true,
			Length:   15,
			Interval: 2,
		},
		Feed: PongFeed{
			Length: 4,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 36000, // 10 minutes at 60fps
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}
