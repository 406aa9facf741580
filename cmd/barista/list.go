package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/barista-rush/internal/registry"
	"github.com/vovakirdan/barista-rush/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows a list of all game modes registered in Barista Rush.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	// Best scores are shown when the database is readable
	var stats map[string]*storage.GameStats
	if store, err := storage.Open(flagDBPath); err == nil {
		stats, _ = store.GetAllGamesStats()
		store.Close()
	}

	fmt.Printf("  %-*s  %-20s  %-6s  %s\n", maxIDLen, "ID", "Title", "Best", "About")
	fmt.Printf("  %-*s  %-20s  %-6s  %s\n", maxIDLen, "--", "-----", "----", "-----")

	for _, g := range games {
		best := "-"
		if s, ok := stats[g.ID]; ok {
			best = fmt.Sprintf("%d", s.HighScore)
		}
		fmt.Printf("  %-*s  %-20s  %-6s  %s\n", maxIDLen, g.ID, g.Title, best, g.Description)
	}

	fmt.Println()
	fmt.Println("Run 'barista play <id>' to play a mode.")
}
