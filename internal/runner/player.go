package runner

import "github.com/vovakirdan/dino-runner/internal/core"

// Stance is the player's posture. It selects the sprite and hitbox.
type Stance int

const (
	StanceRunning Stance = iota
	StanceDucking
	StanceAirborne
)

// String returns a human-readable name for the stance.
func (s Stance) String() string {
	switch s {
	case StanceRunning:
		return "running"
	case StanceDucking:
		return "ducking"
	case StanceAirborne:
		return "airborne"
	default:
		return "unknown"
	}
}

// Player is the controllable runner. X never changes.
type Player struct {
	X         float64
	Y         float64
	VelocityY float64
	Width     float64
	Height    float64
	Grounded  bool
	Ducking   bool
}

// Stance derives the posture. Ducking wins over airborne.
func (p Player) Stance() Stance {
	switch {
	case p.Ducking:
		return StanceDucking
	case !p.Grounded:
		return StanceAirborne
	default:
		return StanceRunning
	}
}

// Box returns the player's hitbox.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}
