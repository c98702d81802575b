package runner

import (
	"time"

	"github.com/vovakirdan/dino-runner/internal/config"
)

// entityConfig returns the spawn settings for a kind.
func (g *Game) entityConfig(kind Kind) config.EntityConfig {
	switch kind {
	case KindObstacle:
		return g.cfg.Entities.Obstacle
	case KindCloud:
		return g.cfg.Entities.Cloud
	case KindBird:
		return g.cfg.Entities.Bird
	case KindCrow:
		return g.cfg.Entities.Crow
	default:
		return g.cfg.Entities.Tumbleweed
	}
}

// SpawnInterval returns the wall-clock period between spawns of a kind.
func (g *Game) SpawnInterval(kind Kind) time.Duration {
	return g.entityConfig(kind).Interval()
}

// Spawn appends one entity of the given kind at the right edge of the
// play-field. Spawns are ignored while the game is over.
func (g *Game) Spawn(kind Kind) bool {
	if g.gameOver || kind < 0 || kind >= kindCount {
		return false
	}

	ec := g.entityConfig(kind)
	sprite := ec.Sprites[0]
	if kind == KindObstacle && len(ec.Sprites) > 1 {
		// Obstacle variants are chosen uniformly
		sprite = ec.Sprites[g.rng.Intn(len(ec.Sprites))]
	}

	img := g.assets.Image(sprite)
	w, h := ec.Width, ec.Height
	if w == 0 {
		w = img.W
	}
	if h == 0 {
		h = img.H
	}

	var y float64
	switch {
	case len(ec.Heights) > 0:
		y = ec.Heights[g.rng.Intn(len(ec.Heights))]
	case ec.MaxY > 0:
		y = g.rng.Float64() * ec.MaxY
	case kind == KindObstacle:
		y = g.cfg.Field.GroundY - h
	default:
		y = ec.Y
	}

	g.entities[kind] = append(g.entities[kind], Entity{
		Kind:   kind,
		Sprite: sprite,
		X:      g.cfg.Field.Width,
		Y:      y,
		W:      w,
		H:      h,
		Speed:  ec.Speed,
	})
	return true
}
