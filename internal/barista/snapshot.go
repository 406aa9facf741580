package barista

import "time"

// Snapshot is everything a display needs to draw one frame.
type Snapshot struct {
	State State

	OrderName   string // empty outside Playing
	LastOrder   string // most recent order, kept after the round ends
	OrderTokens TokenSet
	Input       []Token  // presses this round, in order
	InputSet    TokenSet // distinct tokens pressed this round

	Message string
	Tone    Tone
	Opacity float64 // fade progress of Message during Result

	Score     int
	Combo     int
	BestCombo int
	Served    int

	TimerEnabled   bool
	ScoringEnabled bool
	TimeLeft       int

	LastOutcome  Outcome
	SinceOutcome time.Duration
}

// Snapshot captures the engine state for rendering and tests.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		State:          e.state,
		LastOrder:      e.lastOrder,
		InputSet:       e.inputSet,
		Message:        e.message,
		Tone:           e.tone,
		Opacity:        e.Opacity(),
		Score:          e.score,
		Combo:          e.combo,
		BestCombo:      e.bestCombo,
		Served:         e.served,
		TimerEnabled:   e.opts.TimerEnabled,
		ScoringEnabled: e.opts.ScoringEnabled,
		TimeLeft:       e.TimeLeft(),
		LastOutcome:    e.lastOutcome,
		SinceOutcome:   e.now - e.outcomeAt,
	}
	if len(e.input) > 0 {
		s.Input = append([]Token(nil), e.input...)
	}
	if r, ok := e.Order(); ok {
		s.OrderName = r.Name
		s.OrderTokens = r.Tokens
	}
	return s
}
