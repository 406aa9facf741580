package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/barista-rush/internal/core"
	"github.com/vovakirdan/barista-rush/internal/storage"
)

// scriptedGame replays a fixed step result and records what the host sent.
type scriptedGame struct {
	resets int
	frames []core.InputFrame
	result core.StepResult
}

func (g *scriptedGame) ID() string { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) { g.resets++ }

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return g.result
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) State() core.GameState { return g.result.State }

type recordingSink struct {
	played []core.Cue
}

func (s *recordingSink) Play(c core.Cue) { s.played = append(s.played, c) }
func (s *recordingSink) Close() error { return nil }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, game *scriptedGame, opts HostOptions) Model {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 7}
	m := NewModel(game, cfg, opts)
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestModelForwardsKeysOnTick(t *testing.T) {
	game := &scriptedGame{}
	m := newTestModel(t, game, HostOptions{})

	m = update(t, m, runes("e"))
	m = update(t, m, runes("m"))
	m = update(t, m, TickMsg(time.Now()))

	if len(game.frames) != 1 {
		t.Fatalf("steps = %d, want 1", len(game.frames))
	}
	if got := string(game.frames[0].Keys); got != "em" {
		t.Errorf("keys = %q, want %q", got, "em")
	}

	m = update(t, m, TickMsg(time.Now()))
	if len(game.frames[1].Keys) != 0 {
		t.Errorf("frame not cleared after tick: %q", string(game.frames[1].Keys))
	}
}

func TestModelPlaysCues(t *testing.T) {
	sink := &recordingSink{}
	game := &scriptedGame{result: core.StepResult{
		Cues: []core.Cue{core.CuePositive, core.CueNegative},
	}}
	m := newTestModel(t, game, HostOptions{Sound: sink})

	update(t, m, TickMsg(time.Now()))

	if len(sink.played) != 2 || sink.played[0] != core.CuePositive || sink.played[1] != core.CueNegative {
		t.Errorf("played = %v", sink.played)
	}
}

func TestModelStoresRounds(t *testing.T) {
	store := openStore(t)
	game := &scriptedGame{result: core.StepResult{
		Rounds: []core.RoundRecord{{Recipe: "Latte", Correct: true, Elapsed: 1200 * time.Millisecond}},
	}}
	m := newTestModel(t, game, HostOptions{Store: store, Session: "s1"})

	update(t, m, TickMsg(time.Now()))

	rounds, err := store.SessionRounds("s1")
	if err != nil {
		t.Fatalf("SessionRounds: %v", err)
	}
	if len(rounds) != 1 {
		t.Fatalf("rounds = %d, want 1", len(rounds))
	}
	r := rounds[0]
	if r.GameID != "scripted" || r.Recipe != "Latte" || !r.Correct || r.Elapsed != 1200*time.Millisecond {
		t.Errorf("round = %+v", r)
	}
}

func TestModelSavesScoreOncePerRun(t *testing.T) {
	store := openStore(t)
	game := &scriptedGame{result: core.StepResult{
		State: core.GameState{Score: 30, GameOver: true},
	}}
	m := newTestModel(t, game, HostOptions{Store: store, Player: "ana"})

	for i := 0; i < 5; i++ {
		m = update(t, m, TickMsg(time.Now()))
	}

	scores, err := store.AllScores("scripted")
	if err != nil {
		t.Fatalf("AllScores: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want 1", len(scores))
	}
	if scores[0].Score != 30 || scores[0].Player != "ana" {
		t.Errorf("score = %+v", scores[0])
	}

	// A new run that ends again is saved again.
	game.result.State = core.GameState{Score: 0}
	m = update(t, m, TickMsg(time.Now()))
	game.result.State = core.GameState{Score: 50, GameOver: true}
	update(t, m, TickMsg(time.Now()))

	scores, _ = store.AllScores("scripted")
	if len(scores) != 2 {
		t.Errorf("saved %d scores after second run, want 2", len(scores))
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	store := openStore(t)
	game := &scriptedGame{result: core.StepResult{
		State: core.GameState{GameOver: true},
	}}
	m := newTestModel(t, game, HostOptions{Store: store})

	update(t, m, TickMsg(time.Now()))

	scores, err := store.AllScores("scripted")
	if err != nil {
		t.Fatalf("AllScores: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("saved %d scores, want 0", len(scores))
	}
}

func TestModelRestartResetsGame(t *testing.T) {
	game := &scriptedGame{}
	m := newTestModel(t, game, HostOptions{})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	update(t, m, TickMsg(time.Now()))

	if game.resets != 2 {
		t.Errorf("resets = %d, want 2", game.resets)
	}
	if len(game.frames) != 0 {
		t.Errorf("restart tick also stepped the game")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	game := &scriptedGame{}
	m := newTestModel(t, game, HostOptions{})

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if game.resets != 1 {
		t.Errorf("resize reset the game")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, want 100x40", m.screen.Width(), m.screen.Height())
	}
}

func TestModelLeaving(t *testing.T) {
	tests := []struct {
		name     string
		state    core.GameState
		embedded bool
		keys     []tea.KeyMsg
		wantQuit bool
		wantBack bool
	}{
		{
			name:     "ctrl+c quits",
			keys:     []tea.KeyMsg{{Type: tea.KeyCtrlC}},
			wantQuit: true,
		},
		{
			name:     "esc on start screen quits standalone",
			state:    core.GameState{Waiting: true},
			keys:     []tea.KeyMsg{{Type: tea.KeyEsc}},
			wantQuit: true,
		},
		{
			name:     "esc on start screen returns to menu when embedded",
			state:    core.GameState{Waiting: true},
			embedded: true,
			keys:     []tea.KeyMsg{{Type: tea.KeyEsc}},
			wantBack: true,
		},
		{
			name:     "q while paused leaves",
			state:    core.GameState{Paused: true},
			embedded: true,
			keys:     []tea.KeyMsg{runes("q")},
			wantBack: true,
		},
		{
			name:  "q while playing is a key press",
			state: core.GameState{},
			keys:  []tea.KeyMsg{runes("q")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := &scriptedGame{result: core.StepResult{State: tt.state}}
			m := newTestModel(t, game, HostOptions{Embedded: tt.embedded})
			m = update(t, m, TickMsg(time.Now()))

			for _, k := range tt.keys {
				m = update(t, m, k)
			}

			if m.IsQuitting() != tt.wantQuit {
				t.Errorf("IsQuitting = %v, want %v", m.IsQuitting(), tt.wantQuit)
			}
			if m.BackToMenu() != tt.wantBack {
				t.Errorf("BackToMenu = %v, want %v", m.BackToMenu(), tt.wantBack)
			}
			if (tt.wantQuit || tt.wantBack) && m.View() != "" {
				t.Errorf("View after leaving = %q, want empty", m.View())
			}
		})
	}
}

func TestModelEscPausesDuringPlay(t *testing.T) {
	game := &scriptedGame{}
	m := newTestModel(t, game, HostOptions{})
	m = update(t, m, TickMsg(time.Now()))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	update(t, m, TickMsg(time.Now()))

	if !game.frames[1].Has(core.ActionPause) {
		t.Errorf("esc during play did not send pause")
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	game := &scriptedGame{}
	m := newTestModel(t, game, HostOptions{ScreenshotDir: dir})

	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("screenshots = %d, want 1", len(entries))
	}
	if !strings.HasPrefix(entries[0].Name(), "scripted_") {
		t.Errorf("screenshot name = %q", entries[0].Name())
	}
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "scripted") {
		t.Errorf("screenshot does not contain the frame")
	}
}
