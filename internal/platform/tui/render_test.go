package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/barista-rush/internal/core"
)

func TestScreenRendererPlainText(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)

	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "Latte")
	s.DrawTextColor(0, 1, "E", core.ColorBrightMagenta)
	s.DrawText(1, 1, "+M")

	got := NewScreenRenderer(r).Render(s)
	want := "Latte \nE+M   "
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestScreenRendererColors(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI256)

	s := core.NewScreen(4, 1)
	s.DrawTextColor(0, 0, "EE", core.ColorOrange)

	got := NewScreenRenderer(r).Render(s)
	if !strings.Contains(got, "208") {
		t.Errorf("orange run not styled: %q", got)
	}
	if strings.Count(got, "\x1b[") > 2 {
		t.Errorf("same-color cells not grouped: %q", got)
	}
	if !strings.HasSuffix(got, "  ") {
		t.Errorf("default cells should be unstyled: %q", got)
	}
}
