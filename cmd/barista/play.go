package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/barista-rush/internal/games/coffee"
	"github.com/vovakirdan/barista-rush/internal/platform/tui"
	"github.com/vovakirdan/barista-rush/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: coffee).

Modes:
  coffee          - Rush: 5 seconds per order, 10 x combo points, no repeats
  coffee_classic  - Classic: no timer, no score, the result fades out

Controls:
  E F M W    - Add Espresso, Milk Foam, Steamed Milk, Hot Water
  Any key    - Start / restart from the start and end screens
  Esc        - Pause (Q while paused leaves)
  Ctrl+R     - Restart
  Ctrl+S     - Screenshot
  Ctrl+C     - Quit

Difficulty options:
  easy   - 8 second orders, shrinking as you score
  normal - 5 second orders, shrinking as you score
  hard   - 3 second orders, shrinking as you score
  fixed  - No progression, the config's time limit throughout

Examples:
  barista play
  barista play coffee_classic
  barista play --difficulty hard
  barista play --config ./my-coffee.yaml --mute`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := coffee.IDRush
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'barista list' to see available modes.")
		os.Exit(1)
	}

	logger, logCloser := newFileLogger("barista")
	defer logCloser.Close()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	sink := openSound(logger)

	runErr := tui.Run(game, terminalConfig(), tui.HostOptions{
		Store:   store,
		Sound:   sink,
		Logger:  logger,
		Player:  os.Getenv("USER"),
		Session: uuid.NewString(),
	})

	// Close resources before potential exit
	sink.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	if cg, ok := game.(*coffee.Game); ok && cg.ConfigError() != nil {
		fmt.Fprintf(os.Stderr, "Warning: config ignored, defaults used: %v\n", cg.ConfigError())
	}
}
