package config

// Difficulty maps match progress to a level in [0, 1]. The level starts at
// the configured initial level and climbs to 1 as points are played or
// ticks pass, depending on the progression type.
type Difficulty struct {
	start   float64
	kind    string // "score", "time" or "" when the level never moves
	maxAt   float64
	scaling ScalingConfig
}

// NewDifficulty builds a Difficulty from its config section.
func NewDifficulty(cfg DifficultyConfig) *Difficulty {
	d := &Difficulty{
		start:   min(max(cfg.InitialLevel, 0), 1),
		maxAt:   float64(max(cfg.Progression.MaxAt, 1)),
		scaling: cfg.Scaling,
	}
	if cfg.Enabled {
		switch cfg.Progression.Type {
		case "score", "time":
			d.kind = cfg.Progression.Type
		}
	}
	return d
}

// Progressive reports whether the level changes during a match.
func (d *Difficulty) Progressive() bool {
	return d.kind != ""
}

// Level returns the difficulty after points played and ticks elapsed.
func (d *Difficulty) Level(points, ticks int) float64 {
	var done float64
	switch d.kind {
	case "score":
		done = float64(points) / d.maxAt
	case "time":
		done = float64(ticks) / d.maxAt
	default:
		return d.start
	}
	return d.start + min(max(done, 0), 1)*(1-d.start)
}

// BallSpeed scales base up to base*(1+speed_multiplier) at level 1.
func (d *Difficulty) BallSpeed(base float64, points, ticks int) float64 {
	return base * (1 + d.Level(points, ticks)*d.scaling.SpeedMultiplier)
}

// Lerp interpolates between lo (level 0) and hi (level 1). The CPU paddle
// uses it for its reaction skill.
func (d *Difficulty) Lerp(lo, hi float64, points, ticks int) float64 {
	return lo + d.Level(points, ticks)*(hi-lo)
}
