package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/barista-rush/internal/core"
)

// palette holds the ANSI 256 code of each screen color.
var palette = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightMagenta: "13",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorBrown:         "130",
	core.ColorGray:          "245",
	core.ColorDarkGray:      "238",
}

// ScreenRenderer turns Screen buffers into styled strings. Each SSH
// session gets its own so colors follow the client's terminal profile.
type ScreenRenderer struct {
	plain  lipgloss.Style
	styles map[core.Color]lipgloss.Style
}

// NewScreenRenderer builds styles for r. A nil r uses the process-wide
// lipgloss renderer.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	sr := &ScreenRenderer{
		plain:  r.NewStyle(),
		styles: make(map[core.Color]lipgloss.Style, len(palette)),
	}
	for c, code := range palette {
		sr.styles[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return sr
}

func (sr *ScreenRenderer) style(c core.Color) lipgloss.Style {
	if st, ok := sr.styles[c]; ok {
		return st
	}
	return sr.plain
}

// Render converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one escape sequence.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			if color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(sr.style(color).Render(run.String()))
		}
	}
	return sb.String()
}
