package config

import (
	_ "embed"
)

//go:embed defaults/coffee.yaml
var defaultCoffeeYAML []byte

// DefaultCoffeeConfig returns the default coffee-order configuration.
func DefaultCoffeeConfig() CoffeeConfig {
	return CoffeeConfig{
		Round: RoundConfig{
			TimeLimit:      5.0,
			PointsPerCombo: 10,
			FadeDuration:   1.0,
		},
		Recipes: []RecipeConfig{
			{Name: "Espresso", Tokens: []string{"E"}},
			{Name: "Espresso Macchiato", Tokens: []string{"E", "F"}},
			{Name: "Latte", Tokens: []string{"E", "M", "F"}},
			{Name: "Flat White", Tokens: []string{"E", "M"}},
			{Name: "Cappuccino", Tokens: []string{"E", "M", "F"}},
			{Name: "Americano", Tokens: []string{"E", "W"}},
		},
		Sound: SoundConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				TimeReduction: 2.0,
				MinTimeLimit:  2.0,
			},
		},
	}
}
