package barista

import "time"

// Default round parameters.
const (
	DefaultTimeLimit      = 5 * time.Second
	DefaultPointsPerCombo = 10
	DefaultFadeDuration   = time.Second
)

// Options selects which rules a run plays with. The two shipped variants
// are RushOptions and ClassicOptions.
type Options struct {
	// TimerEnabled fails a round that runs past its time limit.
	TimerEnabled bool

	// ScoringEnabled tracks combo and score across rounds.
	ScoringEnabled bool

	// RepeatOrderAllowed lets the same drink be ordered twice in a row.
	RepeatOrderAllowed bool

	// FadeEnabled shows a Result phase with a fade-in before End.
	FadeEnabled bool

	// RestartAtStart returns to Start from End. Otherwise a key press at
	// End starts the next round directly.
	RestartAtStart bool

	TimeLimit      time.Duration
	PointsPerCombo int
	FadeDuration   time.Duration

	// RoundLimit overrides TimeLimit per round. It receives the current
	// score and the number of drinks served this run.
	RoundLimit func(score, served int) time.Duration
}

// RushOptions is the timed, scored game: five seconds per drink, combo
// multiplier, never the same drink twice in a row.
func RushOptions() Options {
	return Options{
		TimerEnabled:   true,
		ScoringEnabled: true,
		RestartAtStart: true,
		TimeLimit:      DefaultTimeLimit,
		PointsPerCombo: DefaultPointsPerCombo,
	}
}

// ClassicOptions is the relaxed game: no timer, no score, orders drawn
// uniformly, and a fading result message after a mistake.
func ClassicOptions() Options {
	return Options{
		RepeatOrderAllowed: true,
		FadeEnabled:        true,
		FadeDuration:       DefaultFadeDuration,
	}
}

func (o Options) withDefaults() Options {
	if o.TimeLimit <= 0 {
		o.TimeLimit = DefaultTimeLimit
	}
	if o.PointsPerCombo <= 0 {
		o.PointsPerCombo = DefaultPointsPerCombo
	}
	if o.FadeDuration <= 0 {
		o.FadeDuration = DefaultFadeDuration
	}
	return o
}

func (o Options) limitFor(score, served int) time.Duration {
	if o.RoundLimit != nil {
		if d := o.RoundLimit(score, served); d > 0 {
			return d
		}
	}
	return o.TimeLimit
}
