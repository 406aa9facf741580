package barista

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/barista-rush/internal/core"
)

// State is the phase of a run.
type State int

const (
	StateStart     State = iota // waiting for any key
	StateSelecting              // picking the next order (transient)
	StatePlaying                // order active, collecting ingredients
	StateResult                 // outcome message fading in
	StateEnd                    // run over, waiting for any key
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateSelecting:
		return "selecting"
	case StatePlaying:
		return "playing"
	case StateResult:
		return "result"
	case StateEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Outcome is the verdict of a round.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeCorrect
	OutcomeIncorrect
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	default:
		return "none"
	}
}

// Tone is the semantic color class of the outcome message.
type Tone int

const (
	ToneNeutral Tone = iota
	TonePositive
	ToneNegative
)

// Outcome messages.
const (
	MessageCorrect   = "Correct!"
	MessageIncorrect = "Incorrect!"
)

// EventKind distinguishes key presses from clock ticks.
type EventKind int

const (
	EventKey EventKind = iota
	EventTick
)

// Event is one input to the engine. Now is the monotonic game time at
// which the event happened.
type Event struct {
	Kind EventKind
	Key  rune
	Now  time.Duration
}

// KeyEvent builds a key press event. Use core.KeyNone for keys without a
// printable character.
func KeyEvent(r rune, now time.Duration) Event {
	return Event{Kind: EventKey, Key: r, Now: now}
}

// TickEvent builds a clock sample event.
func TickEvent(now time.Duration) Event {
	return Event{Kind: EventTick, Now: now}
}

// Round describes a finished round.
type Round struct {
	Recipe  string
	Outcome Outcome
	Elapsed time.Duration
}

// Effects is what the host must do after an event.
type Effects struct {
	From, To   State
	Outcome    Outcome
	Cue        core.Cue
	ScoreDelta int
	Round      *Round // set when a round finished
}

// Changed reports whether the event moved the state machine.
func (fx Effects) Changed() bool {
	return fx.From != fx.To || fx.Outcome != OutcomeNone
}

// Engine runs the round state machine for one player.
type Engine struct {
	opts Options
	book *Book
	rng  *rand.Rand
	now  time.Duration

	state     State
	order     int // index into book, -1 when none
	lastOrder string
	input     []Token
	inputSet  TokenSet

	roundStart time.Duration
	roundLimit time.Duration
	resultAt   time.Duration

	score     int
	combo     int
	bestCombo int
	served    int

	message     string
	tone        Tone
	lastOutcome Outcome
	outcomeAt   time.Duration
}

// New creates an engine in the Start state. A nil book uses the default menu.
func New(book *Book, opts Options, seed int64) *Engine {
	if book == nil {
		book = DefaultBook()
	}
	e := &Engine{
		opts:  opts.withDefaults(),
		book:  book,
		rng:   rand.New(rand.NewSource(seed)),
		order: -1,
	}
	e.enterStart()
	return e
}

// Options returns the rules the engine was built with.
func (e *Engine) Options() Options {
	return e.opts
}

// Book returns the recipe book.
func (e *Engine) Book() *Book {
	return e.book
}

// State returns the current phase.
func (e *Engine) State() State {
	return e.state
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Combo returns the current combo counter.
func (e *Engine) Combo() int {
	return e.combo
}

// Order returns the active recipe, if any.
func (e *Engine) Order() (Recipe, bool) {
	if e.order < 0 {
		return Recipe{}, false
	}
	return e.book.At(e.order), true
}

// Handle applies one event and reports the resulting effects.
func (e *Engine) Handle(ev Event) Effects {
	if ev.Now > e.now {
		e.now = ev.Now
	}

	fx := Effects{From: e.state}
	switch ev.Kind {
	case EventKey:
		e.handleKey(ev.Key, &fx)
	case EventTick:
		e.handleTick(&fx)
	}
	fx.To = e.state
	return fx
}

func (e *Engine) handleKey(r rune, fx *Effects) {
	switch e.state {
	case StateStart, StateSelecting:
		e.beginRound()

	case StatePlaying:
		// A key that arrives after the limit loses the round before it is read.
		if e.timedOut() {
			e.fail(fx)
			return
		}
		t, ok := ParseToken(r)
		if !ok {
			return
		}
		e.input = append(e.input, t)
		e.inputSet = e.inputSet.With(t)
		e.evaluate(fx)

	case StateEnd:
		if e.opts.RestartAtStart {
			e.enterStart()
			return
		}
		e.message = ""
		e.tone = ToneNeutral
		e.beginRound()

	case StateResult:
		// ignored until the fade completes
	}
}

func (e *Engine) handleTick(fx *Effects) {
	switch e.state {
	case StatePlaying:
		if e.timedOut() {
			e.fail(fx)
		}
	case StateResult:
		if e.now-e.resultAt >= e.opts.FadeDuration {
			e.state = StateEnd
		}
	}
}

// evaluate checks the input buffer against the order.
func (e *Engine) evaluate(fx *Effects) {
	want := e.book.At(e.order).Tokens
	switch {
	case e.inputSet == want:
		e.succeed(fx)
	case !want.Covers(e.inputSet):
		e.fail(fx)
	}
}

func (e *Engine) succeed(fx *Effects) {
	fx.Outcome = OutcomeCorrect
	fx.Cue = core.CuePositive
	fx.Round = e.finishRound(OutcomeCorrect)

	if e.opts.ScoringEnabled {
		e.combo++
		if e.combo > e.bestCombo {
			e.bestCombo = e.combo
		}
		fx.ScoreDelta = e.opts.PointsPerCombo * e.combo
		e.score += fx.ScoreDelta
	}
	e.served++
	e.message = MessageCorrect
	e.tone = TonePositive

	e.beginRound()
}

func (e *Engine) fail(fx *Effects) {
	fx.Outcome = OutcomeIncorrect
	fx.Cue = core.CueNegative
	fx.Round = e.finishRound(OutcomeIncorrect)

	e.order = -1
	e.input = e.input[:0]
	e.inputSet = 0
	e.combo = 0
	e.message = MessageIncorrect
	e.tone = ToneNegative

	if e.opts.FadeEnabled {
		e.state = StateResult
		e.resultAt = e.now
		return
	}
	e.state = StateEnd
}

func (e *Engine) finishRound(o Outcome) *Round {
	e.lastOutcome = o
	e.outcomeAt = e.now
	return &Round{
		Recipe:  e.book.At(e.order).Name,
		Outcome: o,
		Elapsed: e.elapsed(),
	}
}

// enterStart resets the session score.
func (e *Engine) enterStart() {
	e.state = StateStart
	e.order = -1
	e.input = e.input[:0]
	e.inputSet = 0
	e.score = 0
	e.combo = 0
	e.bestCombo = 0
	e.served = 0
	e.message = ""
	e.tone = ToneNeutral
	e.lastOutcome = OutcomeNone
}

// beginRound passes through Selecting into Playing with a fresh order.
func (e *Engine) beginRound() {
	e.state = StateSelecting
	e.order = e.pickOrder()
	e.lastOrder = e.book.At(e.order).Name
	e.input = e.input[:0]
	e.inputSet = 0
	e.roundStart = e.now
	e.roundLimit = e.opts.limitFor(e.score, e.served)
	e.state = StatePlaying
}

func (e *Engine) pickOrder() int {
	n := e.book.Len()
	if e.opts.RepeatOrderAllowed || e.lastOrder == "" || n < 2 {
		return e.rng.Intn(n)
	}

	candidates := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if e.book.At(i).Name != e.lastOrder {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return e.rng.Intn(n)
	}
	return candidates[e.rng.Intn(len(candidates))]
}

func (e *Engine) timedOut() bool {
	return e.opts.TimerEnabled && e.elapsed() > e.roundLimit
}

func (e *Engine) elapsed() time.Duration {
	return e.now - e.roundStart
}

// TimeLeft returns the whole seconds left in the round, floored and
// clamped at zero. The timeout itself uses the raw elapsed time.
func (e *Engine) TimeLeft() int {
	if e.state != StatePlaying {
		return 0
	}
	left := e.roundLimit - e.elapsed()
	if left <= 0 {
		return 0
	}
	return int(left / time.Second)
}

// Opacity returns the fade progress of the result message in [0, 1].
func (e *Engine) Opacity() float64 {
	switch e.state {
	case StateResult:
		return core.ClampF(float64(e.now-e.resultAt)/float64(e.opts.FadeDuration), 0, 1)
	case StateEnd:
		return 1
	default:
		return 0
	}
}
