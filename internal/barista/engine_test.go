package barista

import (
	"testing"
	"time"

	"github.com/vovakirdan/barista-rush/internal/core"
)

// newPlaying returns a rush engine already in Playing with the given order.
func newPlaying(t *testing.T, opts Options, order string) *Engine {
	t.Helper()

	e := New(nil, opts, 42)
	e.Handle(KeyEvent(' ', 0))
	if e.State() != StatePlaying {
		t.Fatalf("state after first key = %v, want playing", e.State())
	}
	forceOrder(t, e, order)
	return e
}

func forceOrder(t *testing.T, e *Engine, name string) {
	t.Helper()

	i, ok := e.book.index[name]
	if !ok {
		t.Fatalf("unknown recipe %q", name)
	}
	e.order = i
	e.lastOrder = name
}

// pressAll feeds keys at the given time and returns every effect.
func pressAll(e *Engine, keys []rune, now time.Duration) []Effects {
	out := make([]Effects, 0, len(keys))
	for _, k := range keys {
		out = append(out, e.Handle(KeyEvent(k, now)))
	}
	return out
}

func letters(tokens []Token) []rune {
	out := make([]rune, len(tokens))
	for i, t := range tokens {
		out[i] = t.Letter()
	}
	return out
}

func permutations(tokens []Token) [][]Token {
	if len(tokens) <= 1 {
		return [][]Token{append([]Token(nil), tokens...)}
	}
	var out [][]Token
	for i := range tokens {
		rest := make([]Token, 0, len(tokens)-1)
		rest = append(rest, tokens[:i]...)
		rest = append(rest, tokens[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]Token{tokens[i]}, p...))
		}
	}
	return out
}

func TestEveryPermutationIsCorrect(t *testing.T) {
	for _, r := range DefaultRecipes() {
		for _, perm := range permutations(r.Tokens.Tokens()) {
			t.Run(r.Name+"/"+string(letters(perm)), func(t *testing.T) {
				e := newPlaying(t, RushOptions(), r.Name)
				fx := pressAll(e, letters(perm), 0)

				for i, f := range fx[:len(fx)-1] {
					if f.Outcome != OutcomeNone {
						t.Fatalf("press %d decided early: %v", i, f.Outcome)
					}
				}
				last := fx[len(fx)-1]
				if last.Outcome != OutcomeCorrect {
					t.Fatalf("outcome = %v, want correct", last.Outcome)
				}
				if last.Cue != core.CuePositive {
					t.Errorf("cue = %v, want positive", last.Cue)
				}
				if e.State() != StatePlaying {
					t.Errorf("correct should start a new round, state = %v", e.State())
				}
			})
		}
	}
}

func TestForeignTokenFailsFast(t *testing.T) {
	for _, r := range DefaultRecipes() {
		required := r.Tokens.Tokens()
		for _, foreign := range Alphabet {
			if r.Tokens.Has(foreign) {
				continue
			}
			// Try the foreign token after every proper prefix of the recipe.
			for n := 0; n < len(required); n++ {
				e := newPlaying(t, RushOptions(), r.Name)
				prefix := letters(required[:n])
				for i, f := range pressAll(e, prefix, 0) {
					if f.Outcome != OutcomeNone {
						t.Fatalf("%s: prefix press %d decided early", r.Name, i)
					}
				}

				fx := e.Handle(KeyEvent(foreign.Letter(), 0))
				if fx.Outcome != OutcomeIncorrect {
					t.Errorf("%s after %q + %c: outcome = %v, want incorrect", r.Name, string(prefix), foreign.Letter(), fx.Outcome)
				}
				if fx.Cue != core.CueNegative {
					t.Errorf("%s: cue = %v, want negative", r.Name, fx.Cue)
				}
				if e.State() != StateEnd {
					t.Errorf("%s: state = %v, want end", r.Name, e.State())
				}
			}
		}
	}
}

func TestDuplicatePressStillMatches(t *testing.T) {
	e := newPlaying(t, RushOptions(), "Americano")
	fx := pressAll(e, []rune{'E', 'E', 'W'}, 0)

	if fx[1].Outcome != OutcomeNone {
		t.Fatalf("repeated E should not decide the round, got %v", fx[1].Outcome)
	}
	if fx[2].Outcome != OutcomeCorrect {
		t.Errorf("E, E, W on Americano = %v, want correct", fx[2].Outcome)
	}
}

func TestIgnoredKeysAreNoOps(t *testing.T) {
	e := newPlaying(t, RushOptions(), "Latte")
	e.Handle(KeyEvent('M', 0))
	before := e.Snapshot()

	for i := 0; i < 20; i++ {
		for _, k := range []rune{'x', 'Q', '1', ' ', core.KeyNone, 'é'} {
			fx := e.Handle(KeyEvent(k, 0))
			if fx.Changed() {
				t.Fatalf("key %q changed state: %+v", k, fx)
			}
		}
	}

	after := e.Snapshot()
	if after.State != before.State || after.InputSet != before.InputSet || len(after.Input) != len(before.Input) {
		t.Errorf("ignored keys altered state: before %+v after %+v", before, after)
	}
}

func TestLowercaseKeysAccepted(t *testing.T) {
	e := newPlaying(t, RushOptions(), "Flat White")
	fx := pressAll(e, []rune{'m', 'e'}, 0)

	if fx[1].Outcome != OutcomeCorrect {
		t.Errorf("lowercase m, e on Flat White = %v, want correct", fx[1].Outcome)
	}
}

func TestTimeoutForcesIncorrect(t *testing.T) {
	e := newPlaying(t, RushOptions(), "Latte")

	for _, now := range []time.Duration{time.Second, 4900 * time.Millisecond, 5 * time.Second} {
		if fx := e.Handle(TickEvent(now)); fx.Outcome != OutcomeNone {
			t.Fatalf("tick at %v decided the round early", now)
		}
	}

	fx := e.Handle(TickEvent(5100 * time.Millisecond))
	if fx.Outcome != OutcomeIncorrect || fx.Cue != core.CueNegative {
		t.Fatalf("tick at 5.1s = %+v, want incorrect with negative cue", fx)
	}
	if e.State() != StateEnd {
		t.Errorf("state = %v, want end", e.State())
	}
	if fx.Round == nil || fx.Round.Recipe != "Latte" || fx.Round.Elapsed != 5100*time.Millisecond {
		t.Errorf("round record = %+v", fx.Round)
	}

	// The cue fires once per round.
	if fx := e.Handle(TickEvent(6 * time.Second)); fx.Cue != core.CueNone {
		t.Errorf("later tick repeated cue %v", fx.Cue)
	}
}

func TestLateKeyTimesOut(t *testing.T) {
	e := newPlaying(t, RushOptions(), "Espresso")

	fx := e.Handle(KeyEvent('E', 9*time.Second))
	if fx.Outcome != OutcomeIncorrect || fx.Cue != core.CueNegative {
		t.Fatalf("key at 9s = %+v, want incorrect with negative cue", fx)
	}
	if fx.ScoreDelta != 0 || e.Score() != 0 {
		t.Errorf("late key scored: delta %d, score %d", fx.ScoreDelta, e.Score())
	}
	if e.State() != StateEnd {
		t.Errorf("state = %v, want end", e.State())
	}
	if fx.Round == nil || fx.Round.Recipe != "Espresso" || fx.Round.Outcome != OutcomeIncorrect {
		t.Errorf("round record = %+v", fx.Round)
	}

	// Right at the limit the key still counts.
	e = newPlaying(t, RushOptions(), "Espresso")
	if fx := e.Handle(KeyEvent('E', 5*time.Second)); fx.Outcome != OutcomeCorrect {
		t.Errorf("key at 5s = %v, want correct", fx.Outcome)
	}
}

func TestLateKeyWithoutTimer(t *testing.T) {
	e := newPlaying(t, ClassicOptions(), "Espresso")

	if fx := e.Handle(KeyEvent('E', time.Hour)); fx.Outcome != OutcomeCorrect {
		t.Errorf("classic key after an hour = %v, want correct", fx.Outcome)
	}
}

func TestTimeoutRespectsRoundStart(t *testing.T) {
	e := New(nil, RushOptions(), 7)
	e.Handle(KeyEvent(' ', 10*time.Second))

	if fx := e.Handle(TickEvent(14 * time.Second)); fx.Outcome != OutcomeNone {
		t.Fatal("round started at 10s should not time out at 14s")
	}
	if fx := e.Handle(TickEvent(15100 * time.Millisecond)); fx.Outcome != OutcomeIncorrect {
		t.Error("round started at 10s should time out at 15.1s")
	}
}

func TestTimerDisabledNeverTimesOut(t *testing.T) {
	e := newPlaying(t, ClassicOptions(), "Latte")

	if fx := e.Handle(TickEvent(time.Hour)); fx.Outcome != OutcomeNone {
		t.Errorf("classic round timed out: %+v", fx)
	}
	if e.State() != StatePlaying {
		t.Errorf("state = %v, want playing", e.State())
	}
}

func TestTimeLeft(t *testing.T) {
	e := newPlaying(t, RushOptions(), "Latte")

	tests := []struct {
		now  time.Duration
		want int
	}{
		{0, 5},
		{500 * time.Millisecond, 4},
		{time.Second, 4},
		{4 * time.Second, 1},
		{4900 * time.Millisecond, 0},
		{5 * time.Second, 0},
	}
	for _, tc := range tests {
		e.Handle(TickEvent(tc.now))
		if got := e.TimeLeft(); got != tc.want {
			t.Errorf("TimeLeft at %v = %d, want %d", tc.now, got, tc.want)
		}
	}
}

func TestComboScoring(t *testing.T) {
	for n := 1; n <= 8; n++ {
		e := New(nil, RushOptions(), int64(n))
		e.Handle(KeyEvent(' ', 0))

		for i := 0; i < n; i++ {
			r, ok := e.Order()
			if !ok {
				t.Fatalf("round %d: no active order", i)
			}
			fx := pressAll(e, letters(r.Tokens.Tokens()), 0)
			last := fx[len(fx)-1]
			if last.Outcome != OutcomeCorrect {
				t.Fatalf("round %d: outcome = %v", i, last.Outcome)
			}
			if last.ScoreDelta != 10*(i+1) {
				t.Errorf("round %d: delta = %d, want %d", i, last.ScoreDelta, 10*(i+1))
			}
		}

		if want := 5 * n * (n + 1); e.Score() != want {
			t.Errorf("after %d correct: score = %d, want %d", n, e.Score(), want)
		}
		if e.Combo() != n {
			t.Errorf("after %d correct: combo = %d", n, e.Combo())
		}
	}
}

func TestLatteScenario(t *testing.T) {
	e := newPlaying(t, RushOptions(), "Latte")
	fx := pressAll(e, []rune{'M', 'F', 'E'}, time.Second)

	if fx[2].Outcome != OutcomeCorrect {
		t.Fatalf("M, F, E on Latte = %v", fx[2].Outcome)
	}
	if e.Combo() != 1 || e.Score() != 10 {
		t.Errorf("combo/score = %d/%d, want 1/10", e.Combo(), e.Score())
	}
	snap := e.Snapshot()
	if snap.Message != MessageCorrect || snap.Tone != TonePositive {
		t.Errorf("message = %q tone = %v", snap.Message, snap.Tone)
	}
}

func TestFlatWhiteScenarioResetsCombo(t *testing.T) {
	e := newPlaying(t, RushOptions(), "Espresso")
	pressAll(e, []rune{'E'}, 0)
	if e.Combo() != 1 {
		t.Fatalf("combo = %d, want 1", e.Combo())
	}

	forceOrder(t, e, "Flat White")
	fx := pressAll(e, []rune{'E', 'W'}, 0)

	if fx[1].Outcome != OutcomeIncorrect {
		t.Fatalf("E, W on Flat White = %v, want incorrect", fx[1].Outcome)
	}
	if e.Combo() != 0 {
		t.Errorf("combo = %d, want 0", e.Combo())
	}
	if e.Score() != 10 {
		t.Errorf("score should survive to the end screen, got %d", e.Score())
	}
	snap := e.Snapshot()
	if snap.Message != MessageIncorrect || snap.Tone != ToneNegative {
		t.Errorf("message = %q tone = %v", snap.Message, snap.Tone)
	}
	if snap.OrderName != "" || snap.LastOrder != "Flat White" {
		t.Errorf("order = %q last = %q", snap.OrderName, snap.LastOrder)
	}
}

func TestNoRepeatOrders(t *testing.T) {
	e := New(nil, RushOptions(), 99)
	e.Handle(KeyEvent(' ', 0))

	prev, _ := e.Order()
	for i := 0; i < 500; i++ {
		pressAll(e, letters(prev.Tokens.Tokens()), 0)
		next, ok := e.Order()
		if !ok {
			t.Fatalf("round %d: no order", i)
		}
		if next.Name == prev.Name {
			t.Fatalf("round %d: %q ordered twice in a row", i, next.Name)
		}
		prev = next
	}
}

func TestNoRepeatSurvivesRestart(t *testing.T) {
	e := New(nil, RushOptions(), 5)
	var now time.Duration
	step := func() time.Duration {
		now += 10 * time.Second
		return now
	}

	e.Handle(KeyEvent(' ', now)) // start -> playing
	for i := 0; i < 100; i++ {
		first, _ := e.Order()
		e.Handle(TickEvent(step()))  // time out
		e.Handle(KeyEvent(' ', now)) // end -> start
		e.Handle(KeyEvent(' ', now)) // start -> playing
		second, ok := e.Order()
		if !ok {
			t.Fatalf("iteration %d: no order after restart", i)
		}
		if first.Name == second.Name {
			t.Fatalf("iteration %d: %q repeated across restart", i, first.Name)
		}
	}
}

func TestRepeatAllowedCanRepeat(t *testing.T) {
	e := New(nil, ClassicOptions(), 3)
	e.Handle(KeyEvent(' ', 0))

	repeated := false
	prev, _ := e.Order()
	for i := 0; i < 300 && !repeated; i++ {
		pressAll(e, letters(prev.Tokens.Tokens()), 0)
		next, _ := e.Order()
		repeated = next.Name == prev.Name
		prev = next
	}
	if !repeated {
		t.Error("uniform selection never repeated in 300 rounds")
	}
}

func TestSingleRecipeBookRepeats(t *testing.T) {
	book, err := NewBook([]Recipe{{Name: "Espresso", Tokens: NewTokenSet(TokenEspresso)}})
	if err != nil {
		t.Fatal(err)
	}
	e := New(book, RushOptions(), 1)
	e.Handle(KeyEvent(' ', 0))
	e.Handle(KeyEvent('E', 0))

	if r, ok := e.Order(); !ok || r.Name != "Espresso" {
		t.Errorf("single-recipe book should keep serving Espresso, got %+v", r)
	}
}

func TestRestartGoesThroughStart(t *testing.T) {
	e := newPlaying(t, RushOptions(), "Espresso")
	pressAll(e, []rune{'E'}, 0)
	e.Handle(KeyEvent('W', 0)) // whatever was ordered, W then fails or continues
	for e.State() == StatePlaying {
		e.Handle(TickEvent(time.Minute))
	}
	if e.State() != StateEnd {
		t.Fatalf("state = %v, want end", e.State())
	}

	e.Handle(KeyEvent('z', time.Minute))
	if e.State() != StateStart {
		t.Fatalf("key at end: state = %v, want start", e.State())
	}
	if e.Score() != 0 || e.Combo() != 0 {
		t.Errorf("start should reset score/combo, got %d/%d", e.Score(), e.Combo())
	}

	e.Handle(KeyEvent(core.KeyNone, time.Minute))
	if e.State() != StatePlaying {
		t.Errorf("any key at start: state = %v, want playing", e.State())
	}
}

func TestClassicFadeThenEnd(t *testing.T) {
	e := newPlaying(t, ClassicOptions(), "Espresso")

	fx := e.Handle(KeyEvent('W', time.Second))
	if fx.Outcome != OutcomeIncorrect || e.State() != StateResult {
		t.Fatalf("classic failure: outcome %v state %v, want incorrect/result", fx.Outcome, e.State())
	}
	if e.Opacity() != 0 {
		t.Errorf("opacity at fade start = %f", e.Opacity())
	}

	// Keys are ignored while fading.
	if fx := e.Handle(KeyEvent('E', 1200*time.Millisecond)); fx.Changed() {
		t.Errorf("key during fade changed state: %+v", fx)
	}

	e.Handle(TickEvent(1500 * time.Millisecond))
	if op := e.Opacity(); op < 0.49 || op > 0.51 {
		t.Errorf("opacity halfway = %f, want 0.5", op)
	}
	if e.State() != StateResult {
		t.Fatalf("state = %v, want result until fade completes", e.State())
	}

	e.Handle(TickEvent(2 * time.Second))
	if e.State() != StateEnd || e.Opacity() != 1 {
		t.Fatalf("after fade: state %v opacity %f", e.State(), e.Opacity())
	}

	e.Handle(KeyEvent('x', 3*time.Second))
	if e.State() != StatePlaying {
		t.Errorf("classic restart should go straight to playing, got %v", e.State())
	}
	if e.Snapshot().Message != "" {
		t.Error("restart should clear the outcome message")
	}
}

func TestClassicDoesNotScore(t *testing.T) {
	e := newPlaying(t, ClassicOptions(), "Americano")
	fx := pressAll(e, []rune{'W', 'E'}, 0)

	if fx[1].Outcome != OutcomeCorrect {
		t.Fatalf("outcome = %v", fx[1].Outcome)
	}
	if fx[1].ScoreDelta != 0 || e.Score() != 0 || e.Combo() != 0 {
		t.Errorf("classic scored: delta %d score %d combo %d", fx[1].ScoreDelta, e.Score(), e.Combo())
	}
}

func TestRoundLimitOverride(t *testing.T) {
	opts := RushOptions()
	opts.RoundLimit = func(score, served int) time.Duration {
		return 2 * time.Second
	}
	e := New(nil, opts, 1)
	e.Handle(KeyEvent(' ', 0))

	if e.TimeLeft() != 2 {
		t.Errorf("TimeLeft = %d, want 2", e.TimeLeft())
	}
	if fx := e.Handle(TickEvent(2100 * time.Millisecond)); fx.Outcome != OutcomeIncorrect {
		t.Error("round should time out after the overridden limit")
	}
}

func TestDeterministicOrders(t *testing.T) {
	run := func() []string {
		e := New(nil, RushOptions(), 12345)
		e.Handle(KeyEvent(' ', 0))
		var names []string
		for i := 0; i < 50; i++ {
			r, _ := e.Order()
			names = append(names, r.Name)
			pressAll(e, letters(r.Tokens.Tokens()), 0)
		}
		return names
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("order %d differs: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestClockIsMonotonic(t *testing.T) {
	e := newPlaying(t, RushOptions(), "Latte")
	e.Handle(TickEvent(3 * time.Second))
	e.Handle(TickEvent(time.Second)) // stale sample

	if e.TimeLeft() != 2 {
		t.Errorf("stale tick moved the clock back: TimeLeft = %d", e.TimeLeft())
	}
}
