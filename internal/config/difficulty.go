package config

import (
	"time"

	"github.com/vovakirdan/barista-rush/internal/core"
)

// DifficultyManager calculates the per-order time limit based on progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: core.ClampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score
// or drinks served.
func (d *DifficultyManager) Level(score int, served int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "served":
		progress = float64(served) / maxAt
	default:
		return d.initialLevel
	}

	progress = core.ClampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// TimeLimit shrinks base as difficulty rises. The result never drops below
// min_time_limit, and never exceeds base. A disabled manager returns base.
func (d *DifficultyManager) TimeLimit(base time.Duration, score int, served int) time.Duration {
	if !d.IsEnabled() {
		return base
	}

	level := d.Level(score, served)
	limit := base - time.Duration(level*d.cfg.Scaling.TimeReduction*float64(time.Second))

	floor := seconds(d.cfg.Scaling.MinTimeLimit)
	if floor > base {
		floor = base
	}
	if limit < floor {
		limit = floor
	}
	return limit
}
