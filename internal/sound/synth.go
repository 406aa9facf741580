package sound

import (
	"encoding/binary"
	"math"
	"time"
)

// Output format shared by synthesized tones, loaded WAVs and the oto context.
const (
	SampleRate     = 44100
	ChannelCount   = 2
	bytesPerSample = 2 // signed 16-bit little endian
)

// note is one segment of a tone.
type note struct {
	freq   float64
	dur    time.Duration
	square bool
}

// Ding is the bright two-note chime played for a correct drink.
func Ding() []byte {
	return render([]note{
		{freq: 880, dur: 90 * time.Millisecond},
		{freq: 1318.5, dur: 260 * time.Millisecond},
	}, 0.6)
}

// Buzz is the low buzzer played for a mistake or timeout.
func Buzz() []byte {
	return render([]note{
		{freq: 110, dur: 180 * time.Millisecond, square: true},
		{freq: 98, dur: 240 * time.Millisecond, square: true},
	}, 0.35)
}

// render synthesizes notes back to back into interleaved stereo PCM.
// Each note decays exponentially and gets a short attack to avoid clicks.
func render(notes []note, amp float64) []byte {
	var total int
	for _, n := range notes {
		total += samplesFor(n.dur)
	}

	out := make([]byte, 0, total*ChannelCount*bytesPerSample)
	frame := make([]byte, ChannelCount*bytesPerSample)
	attack := samplesFor(5 * time.Millisecond)

	for _, n := range notes {
		count := samplesFor(n.dur)
		for i := 0; i < count; i++ {
			t := float64(i) / SampleRate
			v := math.Sin(2 * math.Pi * n.freq * t)
			if n.square {
				v = math.Copysign(0.8, v)
			}

			env := math.Exp(-3 * float64(i) / float64(count))
			if i < attack {
				env *= float64(i) / float64(attack)
			}

			s := int16(clampSample(v*env*amp) * math.MaxInt16)
			for c := 0; c < ChannelCount; c++ {
				binary.LittleEndian.PutUint16(frame[c*bytesPerSample:], uint16(s))
			}
			out = append(out, frame...)
		}
	}
	return out
}

func samplesFor(d time.Duration) int {
	return int(d.Seconds() * SampleRate)
}

func clampSample(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

// Duration returns how long a PCM buffer in the output format plays.
func Duration(pcm []byte) time.Duration {
	frames := len(pcm) / (ChannelCount * bytesPerSample)
	return time.Duration(frames) * time.Second / SampleRate
}
