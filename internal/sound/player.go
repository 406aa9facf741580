package sound

import (
	"bytes"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ebitengine/oto/v3"

	"github.com/vovakirdan/barista-rush/internal/config"
	"github.com/vovakirdan/barista-rush/internal/core"
)

// Player plays cues through the system audio device via oto.
// A new cue interrupts the one still playing.
type Player struct {
	ctx    *oto.Context
	log    *log.Logger
	volume float64
	sounds map[core.Cue][]byte

	mu     sync.Mutex
	active *oto.Player // currently playing, nil when idle
	closed bool
	wg     sync.WaitGroup
}

// NewPlayer initializes the audio context and loads the cue sounds.
// Returns an error if the audio device is unavailable.
func NewPlayer(cfg config.SoundConfig, logger *log.Logger) (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: ChannelCount,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("sound: cannot open audio device: %w", err)
	}
	<-readyChan

	logger.Debug("audio player initialized", "rate", SampleRate, "channels", ChannelCount)
	return &Player{
		ctx:    ctx,
		log:    logger,
		volume: core.ClampF(cfg.Volume, 0, 1),
		sounds: LoadCues(cfg, logger),
	}, nil
}

// LoadCues returns the PCM for each cue. Configured WAV files win; a
// missing or unsupported file is logged and replaced by a generated tone.
func LoadCues(cfg config.SoundConfig, logger *log.Logger) map[core.Cue][]byte {
	return map[core.Cue][]byte{
		core.CuePositive: loadOr(cfg.DingPath, Ding, logger),
		core.CueNegative: loadOr(cfg.BuzzPath, Buzz, logger),
	}
}

func loadOr(path string, fallback func() []byte, logger *log.Logger) []byte {
	if path == "" {
		return fallback()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("sound file unreadable, using built-in tone", "path", path, "err", err)
		return fallback()
	}
	pcm, err := decodeWAV(data)
	if err != nil {
		logger.Warn("sound file rejected, using built-in tone", "path", path, "err", err)
		return fallback()
	}
	return pcm
}

// Play starts the cue and returns immediately.
func (p *Player) Play(cue core.Cue) {
	pcm, ok := p.sounds[cue]
	if !ok {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	if p.active != nil {
		p.active.Pause()
	}

	player := p.ctx.NewPlayer(bytes.NewReader(pcm))
	player.SetVolume(p.volume)
	player.Play()
	p.active = player
	p.log.Debug("playing cue", "cue", cue, "bytes", len(pcm))

	p.wg.Add(1)
	go p.release(player)
}

// release waits for a player to finish or be interrupted, then frees it.
func (p *Player) release(player *oto.Player) {
	defer p.wg.Done()

	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}

	p.mu.Lock()
	if p.active == player {
		p.active = nil
	}
	p.mu.Unlock()

	if err := player.Close(); err != nil {
		p.log.Debug("closing audio player", "err", err)
	}
}

// Close stops playback and waits for in-flight cues to be released.
func (p *Player) Close() error {
	p.mu.Lock()
	p.closed = true
	if p.active != nil {
		p.active.Pause()
	}
	p.mu.Unlock()

	p.wg.Wait()
	return nil
}
