package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/barista-rush/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game input.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// GameKey is the meaning of one key press during play.
type GameKey int

const (
	GameKeyPress      GameKey = iota // forwarded to the game as a raw press
	GameKeyQuit                      // ctrl+c
	GameKeyEscape                    // pause, resume or leave, depending on state
	GameKeyLeave                     // q while paused
	GameKeyScreenshot                // ctrl+s
	GameKeyRestart                   // ctrl+r, fresh seed
)

// MapGameKey classifies a key press during play. For GameKeyPress the rune
// to forward is returned; keys without a character map to core.KeyNone so
// they still count as "any key".
func (km *KeyMapper) MapGameKey(msg tea.KeyMsg, paused bool) (GameKey, rune) {
	switch msg.String() {
	case "ctrl+c":
		return GameKeyQuit, core.KeyNone
	case "esc":
		return GameKeyEscape, core.KeyNone
	case "ctrl+s":
		return GameKeyScreenshot, core.KeyNone
	case "ctrl+r":
		return GameKeyRestart, core.KeyNone
	case "q", "Q":
		if paused {
			return GameKeyLeave, core.KeyNone
		}
	}

	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && !msg.Alt {
			return GameKeyPress, msg.Runes[0]
		}
	case tea.KeySpace:
		return GameKeyPress, ' '
	}
	return GameKeyPress, core.KeyNone
}

// MapKeyToFrame applies a key press to an input frame and reports what
// the host must do about it.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, state core.GameState, frame *core.InputFrame) GameKey {
	gk, r := km.MapGameKey(msg, state.Paused)
	switch gk {
	case GameKeyPress:
		if !state.Paused {
			frame.Press(r)
		}
	case GameKeyEscape:
		if state.Waiting {
			return GameKeyLeave
		}
		frame.Set(core.ActionPause)
	case GameKeyRestart:
		frame.Set(core.ActionRestart)
	}
	return gk
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
