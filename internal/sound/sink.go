// Package sound plays the correct/incorrect cues emitted by games.
// Playback goes through oto; when audio is disabled or no device is
// available a silent sink is used instead.
package sound

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/barista-rush/internal/config"
	"github.com/vovakirdan/barista-rush/internal/core"
)

// Sink consumes cues. Play must not block the caller.
type Sink interface {
	Play(cue core.Cue)
	Close() error
}

// Compile-time interface checks.
var (
	_ Sink = (*Player)(nil)
	_ Sink = Nop{}
)

// Nop is a sink that discards every cue.
type Nop struct{}

// Play does nothing.
func (Nop) Play(core.Cue) {}

// Close does nothing.
func (Nop) Close() error { return nil }

// Open returns a Player for cfg, or Nop when sound is disabled or the
// audio device cannot be opened.
func Open(cfg config.SoundConfig, logger *log.Logger) Sink {
	if !cfg.Enabled {
		logger.Debug("sound disabled")
		return Nop{}
	}

	p, err := NewPlayer(cfg, logger)
	if err != nil {
		logger.Warn("audio unavailable, continuing without sound", "err", err)
		return Nop{}
	}
	return p
}
