package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/barista-rush/internal/registry"
	"github.com/vovakirdan/barista-rush/internal/storage"
)

var (
	flagRecipes bool
	flagClear   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a mode",
	Long: `Display the top 10 high scores for the specified mode.

With --recipes, show how often each drink was ordered, how often it was
made right and how fast.

Examples:
  barista scores coffee
  barista scores coffee --recipes
  barista scores coffee_classic --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecipes, "recipes", false, "Show per-recipe stats instead of scores")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and rounds of the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	info, ok := registry.Lookup(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'barista list' to see available modes.")
		os.Exit(1)
	}
	title := info.Title

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		err = store.ClearScores(gameID)
		if err == nil {
			fmt.Printf("Cleared scores for %s.\n", title)
		}
	case flagRecipes:
		err = printRecipeStats(store, gameID, title)
	default:
		err = printScores(store, gameID, title)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

func printScores(store *storage.Store, gameID, title string) error {
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'barista play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %s\n", "----", "------", "-----", "----")

	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-8d  %s\n", i+1, player, entry.Score, dateStr)
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d   Average: %.0f   Games: %d\n", stats.HighScore, stats.AvgScore, stats.GamesCount)
	}
	return nil
}

func printRecipeStats(store *storage.Store, gameID, title string) error {
	stats, err := store.GetRecipeStats(gameID)
	if err != nil {
		return err
	}

	fmt.Printf("Recipe Stats - %s\n", title)
	fmt.Println()

	if len(stats) == 0 {
		fmt.Println("No orders recorded yet.")
		return nil
	}

	fmt.Printf("  %-20s  %6s  %6s  %5s  %7s  %7s\n", "Recipe", "Orders", "Right", "Acc.", "Avg", "Best")
	fmt.Printf("  %-20s  %6s  %6s  %5s  %7s  %7s\n", "------", "------", "-----", "----", "---", "----")
	for _, r := range stats {
		fmt.Printf("  %-20s  %6d  %6d  %4.0f%%  %7s  %7s\n",
			r.Recipe, r.Orders, r.Correct, r.Accuracy()*100,
			seconds(r.AvgCorrect), seconds(r.BestCorrect))
	}
	return nil
}

func seconds(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
