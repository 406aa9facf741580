// Package coffee wires the barista round engine into the arcade platform.
// It owns the game clock, routes key presses, and draws orders, the
// ingredient legend and the HUD into a core.Screen.
package coffee

import (
	"fmt"
	"time"

	"github.com/vovakirdan/barista-rush/internal/barista"
	"github.com/vovakirdan/barista-rush/internal/config"
	"github.com/vovakirdan/barista-rush/internal/core"
	"github.com/vovakirdan/barista-rush/internal/registry"
)

// Game IDs, also used as score keys.
const (
	IDRush    = "coffee"
	IDClassic = "coffee_classic"
)

// Mode selects the rule set.
type Mode int

const (
	ModeRush    Mode = iota // timed, scored, no repeated orders
	ModeClassic             // untimed, unscored, fading result
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// Game implements registry.Game for both coffee modes.
type Game struct {
	mode    Mode
	engine  *barista.Engine
	cfg     config.CoffeeConfig
	runtime core.RuntimeConfig

	clock   time.Duration // game time, advanced per tick and frozen while paused
	paused  bool
	bookErr error // config problem, defaults in use
}

// New creates a rush-mode game.
func New() *Game {
	return &Game{mode: ModeRush}
}

// NewClassic creates a classic-mode game.
func NewClassic() *Game {
	return &Game{mode: ModeClassic}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeClassic {
		return IDClassic
	}
	return IDRush
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Barista (Classic)"
	}
	return "Barista Rush"
}

// Description summarizes the mode for menus.
func (g *Game) Description() string {
	if g.mode == ModeClassic {
		return "No timer, no score. Learn the recipes."
	}
	return "5 seconds per order. Combos score big."
}

// Reset loads the config and starts a fresh engine at the Start screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, loadErr := config.LoadCoffee(configPath)
	if loadErr != nil {
		cfg = config.DefaultCoffeeConfig()
	}
	if difficultyPreset != "" {
		config.ApplyCoffeePreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	book, err := BookFromConfig(cfg)
	g.bookErr = err
	if err != nil {
		book = barista.DefaultBook()
	}
	if loadErr != nil {
		g.bookErr = loadErr
	}

	g.engine = barista.New(book, OptionsFromConfig(g.mode, cfg), runtime.Seed)
	g.clock = 0
	g.paused = false
}

// BookFromConfig builds a recipe book from the configured recipes.
func BookFromConfig(cfg config.CoffeeConfig) (*barista.Book, error) {
	recipes := make([]barista.Recipe, 0, len(cfg.Recipes))
	for _, rc := range cfg.Recipes {
		r, err := barista.ParseRecipe(rc.Name, rc.Tokens)
		if err != nil {
			return nil, fmt.Errorf("coffee: %w", err)
		}
		recipes = append(recipes, r)
	}
	book, err := barista.NewBook(recipes)
	if err != nil {
		return nil, fmt.Errorf("coffee: %w", err)
	}
	return book, nil
}

// OptionsFromConfig returns the engine rules for a mode with the
// configured timing, scoring and difficulty applied.
func OptionsFromConfig(mode Mode, cfg config.CoffeeConfig) barista.Options {
	opts := barista.RushOptions()
	if mode == ModeClassic {
		opts = barista.ClassicOptions()
	}

	opts.TimeLimit = cfg.Round.TimeLimitDuration()
	opts.PointsPerCombo = cfg.Round.PointsPerCombo
	opts.FadeDuration = cfg.Round.FadeDurationDuration()

	diff := config.NewDifficultyManager(cfg.Difficulty)
	if opts.TimerEnabled && diff.IsEnabled() {
		base := opts.TimeLimit
		opts.RoundLimit = func(score, served int) time.Duration {
			return diff.TimeLimit(base, score, served)
		}
	}
	return opts
}

// Step advances the game by one tick. Key presses of the frame are fed in
// arrival order, then the clock advances and the timer is checked.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var res core.StepResult

	if in.Has(core.ActionPause) && g.engine.State() == barista.StatePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		res.State = g.State()
		return res
	}

	for _, k := range in.Keys {
		fx := g.engine.Handle(barista.KeyEvent(k, g.clock))
		collect(&res, fx)
		// A mistake ends the run; the rest of the frame must not restart it.
		if fx.Outcome == barista.OutcomeIncorrect {
			break
		}
	}

	g.clock += g.runtime.TickInterval()
	collect(&res, g.engine.Handle(barista.TickEvent(g.clock)))

	res.State = g.State()
	return res
}

func collect(res *core.StepResult, fx barista.Effects) {
	if fx.Cue != core.CueNone {
		res.Cues = append(res.Cues, fx.Cue)
	}
	if fx.Round != nil {
		res.Rounds = append(res.Rounds, core.RoundRecord{
			Recipe:  fx.Round.Recipe,
			Correct: fx.Round.Outcome == barista.OutcomeCorrect,
			Elapsed: fx.Round.Elapsed,
		})
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	s := g.engine.State()
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: s == barista.StateEnd || s == barista.StateResult,
		Paused:   g.paused,
		Waiting:  s == barista.StateStart || s == barista.StateEnd,
	}
}

// Snapshot exposes the engine state for tests and tools.
func (g *Game) Snapshot() barista.Snapshot {
	return g.engine.Snapshot()
}

// Book returns the recipe book in use.
func (g *Game) Book() *barista.Book {
	return g.engine.Book()
}

// ConfigError reports why the config file or its recipes were rejected,
// if they were.
func (g *Game) ConfigError() error {
	return g.bookErr
}

// Register the games with the registry
func init() {
	registry.Register(IDRush, func() registry.Game {
		return New()
	})
	registry.Register(IDClassic, func() registry.Game {
		return NewClassic()
	})
}
