package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/barista-rush/internal/core"
	"github.com/vovakirdan/barista-rush/internal/registry"
	"github.com/vovakirdan/barista-rush/internal/sound"
	"github.com/vovakirdan/barista-rush/internal/storage"
)

// HostOptions connects a running game to sound, storage and logging.
type HostOptions struct {
	Store         *storage.Store // nil disables persistence
	Sound         sound.Sink     // nil plays nothing
	Logger        *log.Logger    // nil discards
	Player        string         // stored with scores
	Session       string         // groups stored rounds
	ScreenshotDir string         // defaults to ~/.barista/screenshots
	Embedded      bool           // leaving returns to the menu instead of quitting

	// Renderer styles output for one terminal. Nil uses the local one.
	Renderer *lipgloss.Renderer
}

func (o HostOptions) withDefaults() HostOptions {
	if o.Sound == nil {
		o.Sound = sound.Nop{}
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	renderer   *ScreenRenderer
	config     core.RuntimeConfig
	opts       HostOptions
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts HostOptions) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer:   NewScreenRenderer(opts.Renderer),
		config:     cfg,
		opts:       opts.withDefaults(),
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToFrame(msg, m.gameState, &m.inputFrame) {
	case GameKeyQuit:
		m.quitting = true
		return m, tea.Quit

	case GameKeyLeave:
		if m.opts.Embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case GameKeyScreenshot:
		m.saveScreenshot()
	}

	return m, nil
}

// handleResize processes window resize events. The run continues; the
// game lays itself out for the new size on the next render.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.emit(result)

	// Save score on game over (once per run)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}
	if !m.gameState.GameOver {
		m.scoreSaved = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// emit plays cues and stores finished rounds. Persistence is best-effort.
func (m Model) emit(result core.StepResult) {
	for _, cue := range result.Cues {
		m.opts.Sound.Play(cue)
	}

	if m.opts.Store == nil || len(result.Rounds) == 0 {
		return
	}
	entries := make([]storage.RoundEntry, len(result.Rounds))
	for i, r := range result.Rounds {
		entries[i] = storage.RoundEntry{
			GameID:  m.game.ID(),
			Session: m.opts.Session,
			Recipe:  r.Recipe,
			Correct: r.Correct,
			Elapsed: r.Elapsed,
		}
	}
	if err := m.opts.Store.SaveRounds(entries); err != nil {
		m.opts.Logger.Warn("could not save rounds", "game", m.game.ID(), "err", err)
	}
}

func (m Model) saveScore() {
	if m.opts.Store == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.opts.Store.SaveScore(m.game.ID(), m.opts.Player, m.gameState.Score); err != nil {
		m.opts.Logger.Warn("could not save score", "game", m.game.ID(), "score", m.gameState.Score, "err", err)
		return
	}
	m.opts.Logger.Info("score saved", "game", m.game.ID(), "player", m.opts.Player, "score", m.gameState.Score)
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.opts.Logger.Warn("no home directory for screenshots", "err", err)
			return
		}
		dir = filepath.Join(home, ".barista", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("could not create screenshot directory", "dir", dir, "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "path", path, "err", err)
		return
	}
	m.opts.Logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return m.renderer.Render(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts HostOptions) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
