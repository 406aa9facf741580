// Package config provides YAML-based game configuration loading and
// difficulty management for Barista Rush.
package config

import "time"

// CoffeeConfig contains all configuration for the coffee-order game.
type CoffeeConfig struct {
	Round      RoundConfig      `yaml:"round"`
	Recipes    []RecipeConfig   `yaml:"recipes"`
	Sound      SoundConfig      `yaml:"sound"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RoundConfig defines timing and scoring of a single round.
type RoundConfig struct {
	TimeLimit      float64 `yaml:"time_limit"`       // seconds per order
	PointsPerCombo int     `yaml:"points_per_combo"` // points = this * combo
	FadeDuration   float64 `yaml:"fade_duration"`    // seconds, classic mode result fade
}

// TimeLimitDuration returns the per-order time limit.
func (r RoundConfig) TimeLimitDuration() time.Duration {
	return seconds(r.TimeLimit)
}

// FadeDurationDuration returns the result fade length.
func (r RoundConfig) FadeDurationDuration() time.Duration {
	return seconds(r.FadeDuration)
}

// RecipeConfig is one drink: a name and its ingredient letters.
type RecipeConfig struct {
	Name   string   `yaml:"name"`
	Tokens []string `yaml:"tokens"` // any of E, F, M, W
}

// SoundConfig controls the correct/incorrect cues.
type SoundConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Volume   float64 `yaml:"volume"`    // 0.0 - 1.0
	DingPath string  `yaml:"ding_path"` // optional WAV for correct answers
	BuzzPath string  `yaml:"buzz_path"` // optional WAV for mistakes
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "served", or "none"
	MaxAt int    `yaml:"max_at"` // Score/drinks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	TimeReduction float64 `yaml:"time_reduction"` // Seconds removed from the limit at max difficulty
	MinTimeLimit  float64 `yaml:"min_time_limit"` // Floor for the per-order limit, in seconds
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
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

// TimeLimitForPreset returns the base seconds per order for a preset.
func TimeLimitForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 8
	case DifficultyHard:
		return 3
	default:
		return 5
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
