package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/barista-rush/internal/sound"
)

var soundsCmd = &cobra.Command{
	Use:   "sounds <dir>",
	Short: "Export the built-in cue sounds as WAV files",
	Long: `Write ding.wav and buzz.wav to a directory.

The files are 16-bit stereo 44.1 kHz, the format sound.ding_path and
sound.buzz_path expect, so they make a starting point for custom cues.

Examples:
  barista sounds ./cues`,
	Args: cobra.ExactArgs(1),
	Run:  runSounds,
}

func runSounds(_ *cobra.Command, args []string) {
	dir := expandHome(args[0])
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cues := []struct {
		name string
		pcm  []byte
	}{
		{"ding.wav", sound.Ding()},
		{"buzz.wav", sound.Buzz()},
	}
	for _, c := range cues {
		path := filepath.Join(dir, c.name)
		if err := os.WriteFile(path, sound.EncodeWAV(c.pcm), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s (%s)\n", path, sound.Duration(c.pcm))
	}
}
