package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCoffee loads the coffee-order configuration. Keys missing from the
// file keep their default values.
// Search order: customPath -> ~/.barista/configs/coffee.yaml -> ./configs/coffee.yaml -> embedded default
func LoadCoffee(customPath string) (CoffeeConfig, error) {
	cfg := DefaultCoffeeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("coffee.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultCoffeeConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "coffee.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultCoffeeConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultCoffeeYAML, &cfg); err != nil {
		return DefaultCoffeeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".barista", "configs", filename)
}

// ApplyCoffeePreset modifies the config based on a difficulty preset.
func ApplyCoffeePreset(cfg *CoffeeConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	cfg.Round.TimeLimit = TimeLimitForPreset(preset)
	if cfg.Difficulty.Scaling.MinTimeLimit > cfg.Round.TimeLimit {
		cfg.Difficulty.Scaling.MinTimeLimit = cfg.Round.TimeLimit
	}
}
