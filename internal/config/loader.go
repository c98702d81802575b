package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFile is the file name looked up in the search directories.
const configFile = "runner.yaml"

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.dinorun/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
func LoadRunner(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(filepath.Join("configs", configFile)); err == nil && cfg.Validate() == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	var cfg RunnerConfig
	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile reads and parses one YAML file. Keys missing from the file
// keep their built-in default values.
func loadFile(path string) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dinorun", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.BaseSpeed *= 0.8
		cfg.Entities.Obstacle.IntervalMS = scaleInterval(cfg.Entities.Obstacle.IntervalMS, 1.25)
		cfg.Entities.Crow.IntervalMS = scaleInterval(cfg.Entities.Crow.IntervalMS, 1.5)
	case DifficultyHard:
		cfg.Physics.BaseSpeed *= 1.25
		cfg.Physics.SpeedIncrement *= 2
		cfg.Entities.Obstacle.IntervalMS = scaleInterval(cfg.Entities.Obstacle.IntervalMS, 0.8)
		cfg.Entities.Crow.IntervalMS = scaleInterval(cfg.Entities.Crow.IntervalMS, 0.8)
	}
}

func scaleInterval(ms int, factor float64) int {
	scaled := int(float64(ms) * factor)
	if scaled < 1 {
		scaled = 1
	}
	return scaled
}

// Marshal renders a configuration as YAML.
func Marshal(cfg RunnerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}
