// Package config provides YAML-based configuration loading and difficulty
// presets for the runner.
package config

import (
	"fmt"
	"time"
)

// RunnerConfig contains all tunables of the endless runner.
type RunnerConfig struct {
	Field    FieldConfig    `yaml:"field"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Player   PlayerConfig   `yaml:"player"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Sky      SkyConfig      `yaml:"sky"`
	Entities EntitiesConfig `yaml:"entities"`
}

// FieldConfig defines the logical play-field.
type FieldConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	GroundY float64 `yaml:"ground_y"` // Top of the ground strip; obstacles stand on it
}

// PhysicsConfig defines vertical physics and scroll speed.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`
	JumpImpulse    float64 `yaml:"jump_impulse"`
	BaseSpeed      float64 `yaml:"base_speed"`
	SpeedIncrement float64 `yaml:"speed_increment"` // Added every tick while running
}

// PlayerConfig defines the player's geometry.
type PlayerConfig struct {
	X           float64 `yaml:"x"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	DuckHeight  float64 `yaml:"duck_height"`
	GroundY     float64 `yaml:"ground_y"`      // Resting y while standing
	DuckGroundY float64 `yaml:"duck_ground_y"` // y set when a duck starts
	FrameDelay  int     `yaml:"frame_delay"`   // Ticks per run/duck animation frame
}

// ScoringConfig defines score accrual and persistence.
type ScoringConfig struct {
	Increment    float64 `yaml:"increment"`
	HighScoreKey string  `yaml:"high_score_key"`
}

// SkyConfig defines the day/night cycle and its colours.
type SkyConfig struct {
	Period      int       `yaml:"period"` // Ticks between day/night flips
	DayTop      string    `yaml:"day_top"`
	DayBottom   string    `yaml:"day_bottom"`
	NightTop    string    `yaml:"night_top"`
	NightBottom string    `yaml:"night_bottom"`
	DayText     string    `yaml:"day_text"`
	NightText   string    `yaml:"night_text"`
	Moon        Placement `yaml:"moon"`
}

// Placement is a fixed on-field rectangle.
type Placement struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// EntitiesConfig holds per-kind spawn settings.
type EntitiesConfig struct {
	Obstacle   EntityConfig `yaml:"obstacle"`
	Cloud      EntityConfig `yaml:"cloud"`
	Bird       EntityConfig `yaml:"bird"`
	Crow       EntityConfig `yaml:"crow"`
	Tumbleweed EntityConfig `yaml:"tumbleweed"`
	FlapPeriod int          `yaml:"flap_period"` // Ticks per full 2-frame wing cycle
}

// EntityConfig describes how one kind of entity is spawned and moved.
type EntityConfig struct {
	IntervalMS int       `yaml:"interval_ms"`
	Speed      float64   `yaml:"speed"`             // 0 means "scroll with the ground"
	Sprites    []string  `yaml:"sprites"`           // Variants or animation frames
	Width      float64   `yaml:"width,omitempty"`   // 0 means "use sprite size"
	Height     float64   `yaml:"height,omitempty"`  // 0 means "use sprite size"
	Heights    []float64 `yaml:"heights,omitempty"` // Candidate y positions
	MaxY       float64   `yaml:"max_y,omitempty"`   // Uniform y in [0, max_y)
	Y          float64   `yaml:"y,omitempty"`       // Fixed y
}

// Interval returns the spawn period as a duration.
func (e EntityConfig) Interval() time.Duration {
	return time.Duration(e.IntervalMS) * time.Millisecond
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string into a preset. The empty string
// maps to DifficultyNormal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// Validate checks that the configuration can drive a game.
func (c RunnerConfig) Validate() error {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return fmt.Errorf("config: field must have positive size, got %vx%v", c.Field.Width, c.Field.Height)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 || c.Player.DuckHeight <= 0 {
		return fmt.Errorf("config: player must have positive size")
	}
	if c.Player.DuckHeight > c.Player.Height {
		return fmt.Errorf("config: duck_height %v exceeds height %v", c.Player.DuckHeight, c.Player.Height)
	}
	if c.Player.FrameDelay <= 0 {
		return fmt.Errorf("config: player.frame_delay must be positive")
	}
	if c.Sky.Period <= 0 {
		return fmt.Errorf("config: sky.period must be positive")
	}
	if c.Entities.FlapPeriod < 2 {
		return fmt.Errorf("config: entities.flap_period must be at least 2")
	}
	if c.Scoring.HighScoreKey == "" {
		return fmt.Errorf("config: scoring.high_score_key is empty")
	}

	kinds := map[string]EntityConfig{
		"obstacle":   c.Entities.Obstacle,
		"cloud":      c.Entities.Cloud,
		"bird":       c.Entities.Bird,
		"crow":       c.Entities.Crow,
		"tumbleweed": c.Entities.Tumbleweed,
	}
	for name, e := range kinds {
		if e.IntervalMS <= 0 {
			return fmt.Errorf("config: entities.%s.interval_ms must be positive", name)
		}
		if len(e.Sprites) == 0 {
			return fmt.Errorf("config: entities.%s has no sprites", name)
		}
		if e.Speed < 0 {
			return fmt.Errorf("config: entities.%s.speed is negative", name)
		}
	}
	return nil
}
