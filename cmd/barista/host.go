package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/barista-rush/internal/config"
	"github.com/vovakirdan/barista-rush/internal/core"
	"github.com/vovakirdan/barista-rush/internal/sound"
	"github.com/vovakirdan/barista-rush/internal/storage"
)

// applyEnv copies an environment variable into a flag the user did not set.
func applyEnv(cmd *cobra.Command, flag, env string, dst *string) {
	if cmd.Flags().Changed(flag) {
		return
	}
	if v, ok := os.LookupEnv(env); ok && v != "" {
		*dst = v
	}
}

// expandHome resolves a leading ~ to the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// newFileLogger logs to the --log-file path since the game owns the
// terminal. The returned closer must be called on exit.
func newFileLogger(prefix string) (*log.Logger, io.Closer) {
	level := log.InfoLevel
	if flagVerbose {
		level = log.DebugLevel
	}

	var out io.Writer = io.Discard
	var closer io.Closer = io.NopCloser(nil)
	if flagLogFile != "" {
		path := expandHome(flagLogFile)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600); err == nil {
				out = f
				closer = f
			}
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer
}

// terminalConfig builds a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. Play continues without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "db", flagDBPath, "err", err)
		return nil
	}
	return store
}

// openSound opens the cue sink for local play.
func openSound(logger *log.Logger) sound.Sink {
	if flagMute {
		return sound.Nop{}
	}
	cfg, err := config.LoadCoffee(flagConfig)
	if err != nil {
		logger.Warn("config not loaded, using default sound settings", "err", err)
	}
	return sound.Open(cfg.Sound, logger)
}
