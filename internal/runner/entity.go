package runner

import "github.com/vovakirdan/dino-runner/internal/core"

// Kind identifies an entity collection.
type Kind int

const (
	KindObstacle Kind = iota
	KindCloud
	KindBird
	KindCrow
	KindTumbleweed
	kindCount
)

// Kinds lists every entity kind in declaration order.
var Kinds = []Kind{KindObstacle, KindCloud, KindBird, KindCrow, KindTumbleweed}

// drawOrder is the back-to-front order collections are updated and drawn in.
var drawOrder = []Kind{KindCloud, KindBird, KindCrow, KindTumbleweed, KindObstacle}

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindObstacle:
		return "obstacle"
	case KindCloud:
		return "cloud"
	case KindBird:
		return "bird"
	case KindCrow:
		return "crow"
	case KindTumbleweed:
		return "tumbleweed"
	default:
		return "unknown"
	}
}

// Hazard reports whether touching this kind ends the run.
// Birds are scenery even though they look like crows.
func (k Kind) Hazard() bool {
	return k == KindObstacle || k == KindCrow
}

// Animated reports whether the kind flaps between two sprite frames.
func (k Kind) Animated() bool {
	return k == KindBird || k == KindCrow
}

// Entity is one scrolling object.
type Entity struct {
	Kind   Kind
	Sprite string  // Current image name
	X, Y   float64 // Top-left corner
	W, H   float64
	Speed  float64 // Leftward units per tick; 0 scrolls with the ground
	Frame  int     // Animation frame for animated kinds
}

// Box returns the entity's bounding box.
func (e Entity) Box() core.Box {
	return core.NewBox(e.X, e.Y, e.W, e.H)
}

// OnScreen reports whether any part of the entity is right of the left edge.
func (e Entity) OnScreen() bool {
	return e.X+e.W > 0
}

// retain drops entities that have fully left the play-field, in place.
func retain(list []Entity) []Entity {
	kept := list[:0]
	for _, e := range list {
		if e.OnScreen() {
			kept = append(kept, e)
		}
	}
	// Clear the tail so dropped sprites are not pinned by the backing array
	for i := len(kept); i < len(list); i++ {
		list[i] = Entity{}
	}
	return kept
}
