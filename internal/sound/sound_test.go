package sound

import (
	"encoding/binary"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/barista-rush/internal/config"
	"github.com/vovakirdan/barista-rush/internal/core"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestTonesAreValidPCM(t *testing.T) {
	tests := []struct {
		name string
		pcm  []byte
		min  time.Duration
		max  time.Duration
	}{
		{"ding", Ding(), 300 * time.Millisecond, 400 * time.Millisecond},
		{"buzz", Buzz(), 380 * time.Millisecond, 460 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.pcm)%(ChannelCount*bytesPerSample) != 0 {
				t.Fatalf("pcm length %d is not whole frames", len(tt.pcm))
			}
			if d := Duration(tt.pcm); d < tt.min || d > tt.max {
				t.Errorf("duration = %v, want between %v and %v", d, tt.min, tt.max)
			}

			// Starts silent (attack ramp) and is not silent overall.
			if first := int16(binary.LittleEndian.Uint16(tt.pcm[0:2])); first != 0 {
				t.Errorf("first sample = %d, want 0", first)
			}
			var peak int16
			for i := 0; i+1 < len(tt.pcm); i += bytesPerSample {
				s := int16(binary.LittleEndian.Uint16(tt.pcm[i:]))
				if s < 0 {
					s = -s
				}
				if s > peak {
					peak = s
				}
			}
			if peak < 1000 {
				t.Errorf("peak amplitude = %d, tone is too quiet", peak)
			}
		})
	}
}

func TestTonesAreStereoDuplicated(t *testing.T) {
	pcm := Ding()
	frame := ChannelCount * bytesPerSample
	for i := 0; i+frame <= len(pcm); i += frame {
		if pcm[i] != pcm[i+2] || pcm[i+1] != pcm[i+3] {
			t.Fatalf("frame at %d has different channels", i)
		}
	}
}

func TestWAVRoundTrip(t *testing.T) {
	pcm := Buzz()
	got, err := decodeWAV(EncodeWAV(pcm))
	if err != nil {
		t.Fatalf("decodeWAV: %v", err)
	}
	if len(got) != len(pcm) {
		t.Fatalf("decoded %d bytes, want %d", len(got), len(pcm))
	}
}

func TestDecodeWAVErrors(t *testing.T) {
	good := EncodeWAV(make([]byte, 16))

	mono := append([]byte(nil), good...)
	binary.LittleEndian.PutUint16(mono[22:24], 1)

	notRIFF := append([]byte(nil), good...)
	copy(notRIFF[0:4], "RIFX")

	noData := append([]byte(nil), good...)
	copy(noData[36:40], "junk")

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"short", []byte("RIFF"), errWAVTruncated},
		{"not riff", notRIFF, ErrNotWAV},
		{"mono", mono, ErrWAVFormat},
		{"no data", noData, ErrWAVNoData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := decodeWAV(tt.data); !errors.Is(err, tt.want) {
				t.Errorf("decodeWAV() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadCuesFallsBack(t *testing.T) {
	dir := t.TempDir()

	custom := EncodeWAV(make([]byte, 400))
	customPath := filepath.Join(dir, "ding.wav")
	if err := os.WriteFile(customPath, custom, 0o644); err != nil {
		t.Fatal(err)
	}
	badPath := filepath.Join(dir, "buzz.wav")
	if err := os.WriteFile(badPath, []byte("definitely not audio, long enough to pass the size check"), 0o644); err != nil {
		t.Fatal(err)
	}

	cues := LoadCues(config.SoundConfig{DingPath: customPath, BuzzPath: badPath}, quietLogger())
	if len(cues[core.CuePositive]) != 400 {
		t.Errorf("custom ding has %d bytes, want 400", len(cues[core.CuePositive]))
	}
	if len(cues[core.CueNegative]) != len(Buzz()) {
		t.Error("rejected buzz file should fall back to the built-in tone")
	}

	missing := LoadCues(config.SoundConfig{DingPath: filepath.Join(dir, "missing.wav")}, quietLogger())
	if len(missing[core.CuePositive]) != len(Ding()) {
		t.Error("missing ding file should fall back to the built-in tone")
	}
}

func TestOpenDisabledIsNop(t *testing.T) {
	sink := Open(config.SoundConfig{Enabled: false}, quietLogger())
	if _, ok := sink.(Nop); !ok {
		t.Fatalf("Open(disabled) = %T, want Nop", sink)
	}
	sink.Play(core.CuePositive)
	if err := sink.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}
