package sound

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	ErrNotWAV       = errors.New("sound: not a valid WAV file")
	ErrWAVFormat    = errors.New("sound: unsupported WAV format")
	ErrWAVNoData    = errors.New("sound: data chunk not found in WAV")
	errWAVTruncated = errors.New("sound: wav data too short")
)

// decodeWAV strips the RIFF header and returns raw PCM. Only 16-bit PCM in
// the output format is accepted; anything else is rejected so the caller
// can fall back to a synthesized tone.
func decodeWAV(wav []byte) ([]byte, error) {
	if len(wav) < 44 {
		return nil, errWAVTruncated
	}
	if string(wav[0:4]) != "RIFF" || string(wav[8:12]) != "WAVE" {
		return nil, ErrNotWAV
	}

	var fmtSeen bool
	pos := 12
	for pos <= len(wav)-8 {
		chunkID := string(wav[pos : pos+4])
		chunkSize := int(binary.LittleEndian.Uint32(wav[pos+4 : pos+8]))
		body := pos + 8

		switch chunkID {
		case "fmt ":
			if body+16 > len(wav) {
				return nil, errWAVTruncated
			}
			if err := checkFormat(wav[body : body+16]); err != nil {
				return nil, err
			}
			fmtSeen = true

		case "data":
			if !fmtSeen {
				return nil, fmt.Errorf("%w: data before fmt chunk", ErrWAVFormat)
			}
			end := body + chunkSize
			if end > len(wav) {
				end = len(wav)
			}
			// Drop a trailing partial frame.
			frame := ChannelCount * bytesPerSample
			end -= (end - body) % frame
			return wav[body:end], nil
		}

		pos = body + chunkSize
		// Chunks are word-aligned.
		if chunkSize%2 != 0 {
			pos++
		}
	}

	return nil, ErrWAVNoData
}

func checkFormat(chunk []byte) error {
	audioFormat := binary.LittleEndian.Uint16(chunk[0:2])
	channels := binary.LittleEndian.Uint16(chunk[2:4])
	rate := binary.LittleEndian.Uint32(chunk[4:8])
	bits := binary.LittleEndian.Uint16(chunk[14:16])

	if audioFormat != 1 || bits != 8*bytesPerSample || channels != ChannelCount || rate != SampleRate {
		return fmt.Errorf("%w: format=%d channels=%d rate=%d bits=%d (want PCM %d-bit %dch %dHz)",
			ErrWAVFormat, audioFormat, channels, rate, bits, 8*bytesPerSample, ChannelCount, SampleRate)
	}
	return nil
}

// EncodeWAV wraps PCM in a minimal RIFF header in the output format.
func EncodeWAV(pcm []byte) []byte {
	const headerSize = 44
	out := make([]byte, headerSize, headerSize+len(pcm))

	blockAlign := ChannelCount * bytesPerSample
	copy(out[0:4], "RIFF")
	binary.LittleEndian.PutUint32(out[4:8], uint32(36+len(pcm)))
	copy(out[8:12], "WAVE")
	copy(out[12:16], "fmt ")
	binary.LittleEndian.PutUint32(out[16:20], 16)
	binary.LittleEndian.PutUint16(out[20:22], 1)
	binary.LittleEndian.PutUint16(out[22:24], ChannelCount)
	binary.LittleEndian.PutUint32(out[24:28], SampleRate)
	binary.LittleEndian.PutUint32(out[28:32], uint32(SampleRate*blockAlign))
	binary.LittleEndian.PutUint16(out[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(out[34:36], 8*bytesPerSample)
	copy(out[36:40], "data")
	binary.LittleEndian.PutUint32(out[40:44], uint32(len(pcm)))

	return append(out, pcm...)
}
