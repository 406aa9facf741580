package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/barista-rush/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapGameKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		paused   bool
		wantKey  GameKey
		wantRune rune
	}{
		{"letter", runeKey('e'), false, GameKeyPress, 'e'},
		{"upper", runeKey('W'), false, GameKeyPress, 'W'},
		{"q plays", runeKey('q'), false, GameKeyPress, 'q'},
		{"q leaves when paused", runeKey('q'), true, GameKeyLeave, core.KeyNone},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, false, GameKeyPress, ' '},
		{"enter is any key", tea.KeyMsg{Type: tea.KeyEnter}, false, GameKeyPress, core.KeyNone},
		{"arrow is any key", tea.KeyMsg{Type: tea.KeyUp}, false, GameKeyPress, core.KeyNone},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, false, GameKeyEscape, core.KeyNone},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, false, GameKeyQuit, core.KeyNone},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, false, GameKeyScreenshot, core.KeyNone},
		{"ctrl+r", tea.KeyMsg{Type: tea.KeyCtrlR}, false, GameKeyRestart, core.KeyNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gk, r := km.MapGameKey(tt.msg, tt.paused)
			if gk != tt.wantKey || r != tt.wantRune {
				t.Errorf("MapGameKey() = %v, %q; want %v, %q", gk, r, tt.wantKey, tt.wantRune)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()

	frame := core.NewInputFrame()
	km.MapKeyToFrame(runeKey('E'), core.GameState{}, &frame)
	km.MapKeyToFrame(runeKey('m'), core.GameState{}, &frame)
	if len(frame.Keys) != 2 || frame.Keys[0] != 'E' || frame.Keys[1] != 'm' {
		t.Errorf("keys = %q, want arrival order E, m", frame.Keys)
	}

	// Esc pauses during play and leaves from a waiting screen.
	frame.Clear()
	if gk := km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyEsc}, core.GameState{}, &frame); gk != GameKeyEscape || !frame.Has(core.ActionPause) {
		t.Errorf("esc while playing = %v, pause set %v", gk, frame.Has(core.ActionPause))
	}
	frame.Clear()
	if gk := km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyEsc}, core.GameState{Waiting: true}, &frame); gk != GameKeyLeave || frame.Has(core.ActionPause) {
		t.Errorf("esc while waiting = %v", gk)
	}

	// Presses are dropped while paused.
	frame.Clear()
	km.MapKeyToFrame(runeKey('E'), core.GameState{Paused: true}, &frame)
	if frame.Pressed() {
		t.Error("press recorded while paused")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('q'), MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
