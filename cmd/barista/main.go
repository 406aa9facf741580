// barista is a terminal coffee-order arcade: read the order, press the
// ingredient keys, serve before the timer runs out.
//
// Usage:
//
//	barista list              - List available modes
//	barista play [mode]       - Play a mode (default: coffee)
//	barista menu              - Start menu to pick modes interactively
//	barista serve             - Start SSH server for remote play
//	barista scores <mode>     - Show high scores or recipe stats
//	barista recipes           - Show the loaded recipe book
//	barista sounds <dir>      - Export the built-in cue sounds as WAV files
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible orders
//	--db <path>           - Set database path (default: ~/.barista/scores.db)
//	--config <path>       - Custom coffee.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
//	--mute                - Disable sound cues
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/barista-rush/internal/config"
	"github.com/vovakirdan/barista-rush/internal/games/coffee"
)

const defaultDBPath = "~/.barista/scores.db"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagVerbose    bool
	flagLogFile    string
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "barista",
	Short: "Barista Rush - serve coffee orders in your terminal",
	Long: `Barista Rush is a terminal arcade about making coffee fast.

A customer orders a drink; press the keys of its ingredients in any order:
  E - Espresso   F - Milk Foam   M - Steamed Milk   W - Hot Water

A wrong ingredient or an empty timer ends the run.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and recipe stats
  recipes  - Show the recipe book
  sounds   - Export cue sounds as WAV files

Examples:
  barista play
  barista play coffee_classic
  barista play --difficulty hard
  barista menu
  barista serve --ssh :2222
  barista scores coffee --recipes`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		applyEnv(cmd, "db", "BARISTA_DB", &flagDBPath)
		if flagDifficulty != "" {
			if _, ok := config.ParsePreset(flagDifficulty); !ok {
				return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
			}
		}
		coffee.SetConfigPath(flagConfig)
		coffee.SetDifficultyPreset(flagDifficulty)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom coffee config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound cues")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Debug logging")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.barista/barista.log", "Log file for terminal play")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(recipesCmd)
	rootCmd.AddCommand(soundsCmd)
}
