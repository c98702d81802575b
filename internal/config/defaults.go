package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file
// cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Field: FieldConfig{
			Width:   900,
			Height:  300,
			GroundY: 253,
		},
		Physics: PhysicsConfig{
			Gravity:        0.6,
			JumpImpulse:    -12,
			BaseSpeed:      6,
			SpeedIncrement: 0.001,
		},
		Player: PlayerConfig{
			X:           50,
			Width:       44,
			Height:      47,
			DuckHeight:  25,
			GroundY:     200,
			DuckGroundY: 222,
			FrameDelay:  5,
		},
		Scoring: ScoringConfig{
			Increment:    0.05,
			HighScoreKey: "highScore",
		},
		Sky: SkyConfig{
			Period:      600,
			DayTop:      "#87ceeb",
			DayBottom:   "#ffffff",
			NightTop:    "#001d3d",
			NightBottom: "#003566",
			DayText:     "#000000",
			NightText:   "#ffffff",
			Moon:        Placement{X: 800, Y: 30, W: 60, H: 60},
		},
		Entities: EntitiesConfig{
			FlapPeriod: 20,
			Obstacle: EntityConfig{
				IntervalMS: 1500,
				Speed:      0, // scroll speed
				Sprites:    []string{"cactus1", "cactus2"},
			},
			Cloud: EntityConfig{
				IntervalMS: 3000,
				Speed:      2,
				Sprites:    []string{"cloud"},
				MaxY:       80,
			},
			Bird: EntityConfig{
				IntervalMS: 5000,
				Speed:      6,
				Sprites:    []string{"bird1", "bird2"},
				Width:      46,
				Height:     40,
				Heights:    []float64{180, 120},
			},
			Crow: EntityConfig{
				IntervalMS: 4500,
				Speed:      6,
				Sprites:    []string{"crow1", "crow2"},
				Width:      46,
				Height:     30,
				Heights:    []float64{120, 180}, // low (duck needed), high (jump possible)
			},
			Tumbleweed: EntityConfig{
				IntervalMS: 5000,
				Speed:      4,
				Sprites:    []string{"tumbleweed"},
				Y:          235,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
