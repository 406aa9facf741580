package coffee

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/barista-rush/internal/barista"
	"github.com/vovakirdan/barista-rush/internal/core"
)

// Layout limits.
const (
	MinScreenW = 60
	MinScreenH = 20

	flashDuration = 600 * time.Millisecond
)

// Render draws the current frame.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}

	w, h := dst.Width(), dst.Height()
	if w < MinScreenW || h < MinScreenH {
		dst.DrawTextCentered(h/2-1, "Terminal too small")
		dst.DrawTextCentered(h/2+1, fmt.Sprintf("Need %dx%d, have %dx%d", MinScreenW, MinScreenH, w, h))
		return
	}

	snap := g.engine.Snapshot()

	g.drawTitle(dst)
	switch snap.State {
	case barista.StateStart, barista.StateSelecting:
		g.drawStart(dst)
	case barista.StatePlaying:
		g.drawPlaying(dst, snap)
	case barista.StateResult, barista.StateEnd:
		g.drawEnd(dst, snap)
	}
	g.drawHUD(dst, snap)

	if g.paused {
		drawPause(dst)
	}
}

func (g *Game) drawTitle(dst *core.Screen) {
	title := "B A R I S T A   R U S H"
	if g.mode == ModeClassic {
		title = "B A R I S T A"
	}
	dst.DrawTextCenteredColor(0, title, core.ColorOrange)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func (g *Game) drawStart(dst *core.Screen) {
	h := dst.Height()
	top := h/2 - 6

	dst.DrawTextCenteredColor(top, "Serve the customer before they walk out.", core.ColorWhite)
	drawArt(dst, top+2, genericCup, core.ColorBrown)
	dst.DrawTextCenteredColor(top+10, "Press any key to start", core.ColorBrightYellow)
	drawLegend(dst, h-4, 0)
}

func (g *Game) drawPlaying(dst *core.Screen, snap barista.Snapshot) {
	h := dst.Height()

	dst.DrawTextCenteredColor(3, fmt.Sprintf("Customer: I'd like a %s", snap.OrderName), core.ColorBrightWhite)

	if snap.LastOutcome == barista.OutcomeCorrect && snap.SinceOutcome < flashDuration {
		dst.DrawTextCenteredColor(4, barista.MessageCorrect, core.ColorBrightGreen)
	}

	drawArt(dst, 6, CupArt(snap.OrderName), core.ColorBrown)

	cup := "Your cup: (empty)"
	if len(snap.Input) > 0 {
		cup = "Your cup: " + pressedLetters(snap.Input)
	}
	dst.DrawTextCenteredColor(h-6, cup, core.ColorCyan)

	drawLegend(dst, h-4, snap.InputSet)
}

func (g *Game) drawEnd(dst *core.Screen, snap barista.Snapshot) {
	mid := dst.Height()/2 - 3

	color := toneColor(snap.Tone)
	if snap.State == barista.StateResult {
		color = fadeColor(color, snap.Opacity)
	}
	dst.DrawTextCenteredColor(mid, snap.Message, color)

	if snap.LastOrder != "" {
		if r, ok := g.engine.Book().Lookup(snap.LastOrder); ok {
			line := fmt.Sprintf("The %s needed %s", r.Name, r.Tokens)
			dst.DrawTextCenteredColor(mid+2, line, core.ColorGray)
		}
	}

	if snap.State == barista.StateEnd {
		dst.DrawTextCenteredColor(mid+4, "Restart? Press any key", core.ColorBrightYellow)
		if snap.ScoringEnabled {
			dst.DrawTextCenteredColor(mid+6, fmt.Sprintf("Final Score: %d", snap.Score), core.ColorBrightWhite)
			dst.DrawTextCenteredColor(mid+7, fmt.Sprintf("Drinks served: %d   Best combo: x%d", snap.Served, snap.BestCombo), core.ColorGray)
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen, snap barista.Snapshot) {
	w, h := dst.Width(), dst.Height()

	if snap.TimerEnabled && snap.State == barista.StatePlaying {
		text := fmt.Sprintf("Time Left: %d", snap.TimeLeft)
		color := core.ColorBrightYellow
		if snap.TimeLeft <= 1 {
			color = core.ColorBrightRed
		}
		dst.DrawTextColor(w-len(text)-1, 0, text, color)
	}

	if snap.ScoringEnabled && snap.State == barista.StatePlaying {
		dst.DrawTextColor(1, h-2, fmt.Sprintf("Score: %d", snap.Score), core.ColorBrightWhite)
		dst.DrawTextColor(1, h-1, fmt.Sprintf("Combo: x%d", snap.Combo), core.ColorYellow)
	}

	hint := "Esc pause  Ctrl+C quit"
	dst.DrawTextColor(w-len(hint)-1, h-1, hint, core.ColorDarkGray)
}

// drawLegend prints every ingredient key, highlighting those already in
// the cup.
func drawLegend(dst *core.Screen, y int, pressed barista.TokenSet) {
	parts := make([]string, len(barista.Alphabet))
	for i, t := range barista.Alphabet {
		parts[i] = fmt.Sprintf("[%c] %s", t.Letter(), t.Label())
	}
	line := strings.Join(parts, "   ")

	x := (dst.Width() - len(line)) / 2
	for i, t := range barista.Alphabet {
		color := core.ColorGray
		if pressed.Has(t) {
			color = core.ColorBrightMagenta
		}
		dst.DrawTextColor(x, y, parts[i], color)
		x += len(parts[i]) + 3
	}
}

func drawArt(dst *core.Screen, top int, art []string, c core.Color) {
	for i, line := range art {
		dst.DrawTextCenteredColor(top+i, line, c)
	}
}

func drawPause(dst *core.Screen) {
	box := core.CenteredRect(dst.Width(), dst.Height(), 24, 6)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCenteredColor(box.Y+1, "PAUSED", core.ColorBrightWhite)
	dst.DrawTextCenteredColor(box.Y+3, "Esc to resume", core.ColorGray)
	dst.DrawTextCenteredColor(box.Y+4, "Q to leave", core.ColorGray)
}

func pressedLetters(tokens []barista.Token) string {
	letters := make([]string, len(tokens))
	for i, t := range tokens {
		letters[i] = string(t.Letter())
	}
	return strings.Join(letters, " + ")
}

func toneColor(t barista.Tone) core.Color {
	switch t {
	case barista.TonePositive:
		return core.ColorBrightGreen
	case barista.ToneNegative:
		return core.ColorBrightRed
	default:
		return core.ColorWhite
	}
}

// fadeColor approximates an alpha fade-in with three shades.
func fadeColor(c core.Color, opacity float64) core.Color {
	switch {
	case opacity < 1.0/3:
		return core.ColorDarkGray
	case opacity < 2.0/3:
		return core.ColorGray
	default:
		return c
	}
}
