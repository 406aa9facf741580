package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/barista-rush/internal/barista"
	"github.com/vovakirdan/barista-rush/internal/config"
	"github.com/vovakirdan/barista-rush/internal/games/coffee"
)

var recipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "Show the recipe book",
	Long: `Print the drinks customers can order and the ingredient keys each needs.

The book comes from the same config search path as play:
--config, ~/.barista/configs/coffee.yaml, ./configs/coffee.yaml, then the
built-in defaults.

Examples:
  barista recipes
  barista recipes --config ./my-coffee.yaml`,
	Args: cobra.NoArgs,
	Run:  runRecipes,
}

func runRecipes(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadCoffee(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	book, err := coffee.BookFromConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid recipes: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recipes:")
	fmt.Println()
	for _, r := range book.Recipes() {
		labels := make([]string, 0, r.Tokens.Len())
		for _, t := range r.Tokens.Tokens() {
			labels = append(labels, t.Label())
		}
		fmt.Printf("  %-20s  %-8s  %s\n", r.Name, r.Tokens, strings.Join(labels, ", "))
	}

	fmt.Println()
	fmt.Println("Keys:")
	for _, t := range barista.Alphabet {
		fmt.Printf("  %c  %s\n", t.Letter(), t.Label())
	}

	if twins := book.Twins(); len(twins) > 0 {
		fmt.Println()
		fmt.Println("Made the same way:")
		for _, names := range twins {
			fmt.Printf("  %s\n", strings.Join(names, " = "))
		}
	}

	fmt.Println()
	fmt.Printf("Time per order: %.1fs   Points: %d x combo\n", cfg.Round.TimeLimit, cfg.Round.PointsPerCombo)
}
