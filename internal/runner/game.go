// Package runner implements the endless-runner game loop: a dinosaur that
// jumps and ducks past scrolling hazards while the score ticks up.
//
// Game owns all mutable session state. The host calls Tick once per frame,
// Spawn from independent timers, and Jump/Duck/Reset from input events. None
// of these are safe for concurrent use; the host serialises them.
package runner

import (
	"math/rand"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// State is a read-only snapshot of the session.
type State struct {
	Score     float64
	HighScore float64
	Speed     float64
	Frame     int
	Night     bool
	GameOver  bool
	Stance    Stance
}

// Result is returned by Tick.
type Result struct {
	State State

	// Collided is true on the tick a hazard ended the run.
	Collided bool

	// NewHighScore is true on the first tick of a run where the score
	// passed the best score the run started with.
	NewHighScore bool
}

// Game is the runner's session state and per-frame loop.
type Game struct {
	cfg    config.RunnerConfig
	assets Assets
	store  HighScoreStore
	rng    *rand.Rand

	player   Player
	entities [kindCount][]Entity

	frame     int     // Ticks since creation; survives Reset
	score     float64 // Accrues while the run is alive
	speed     float64 // Ground scroll speed
	night     bool
	gameOver  bool
	highScore float64

	startBest float64 // High score when the current run began
	beatBest  bool    // Whether this run already passed startBest
}

// New creates a game ready to run. A nil store keeps the high score in memory.
func New(cfg config.RunnerConfig, assets Assets, store HighScoreStore, seed int64) *Game {
	if store == nil {
		store = &MemoryHighScore{}
	}

	g := &Game{
		cfg:       cfg,
		assets:    assets,
		store:     store,
		rng:       rand.New(rand.NewSource(seed)),
		highScore: store.HighScore(),
	}
	for _, k := range Kinds {
		g.entities[k] = make([]Entity, 0, 8)
	}
	g.Reset()
	return g
}

// Reset starts a new run. The high score, frame counter and day/night
// phase carry over.
func (g *Game) Reset() {
	for _, k := range Kinds {
		g.entities[k] = g.entities[k][:0]
	}
	g.score = 0
	g.speed = g.cfg.Physics.BaseSpeed
	g.gameOver = false
	g.startBest = g.highScore
	g.beatBest = false

	g.player = Player{
		X:        g.cfg.Player.X,
		Y:        g.cfg.Player.GroundY,
		Width:    g.cfg.Player.Width,
		Height:   g.cfg.Player.Height,
		Grounded: true,
	}
}

// Jump launches the player when grounded. While the game is over it
// restarts instead. Returns true if a jump impulse was applied.
func (g *Game) Jump() bool {
	if g.gameOver {
		g.Reset()
		return false
	}
	if !g.player.Grounded {
		return false
	}
	g.player.VelocityY = g.cfg.Physics.JumpImpulse
	g.player.Grounded = false
	return true
}

// Duck enters or leaves the ducking stance. Height and position change
// immediately, even mid-air.
func (g *Game) Duck(on bool) {
	g.player.Ducking = on
	if on {
		g.player.Height = g.cfg.Player.DuckHeight
		g.player.Y = g.cfg.Player.DuckGroundY
	} else {
		g.player.Height = g.cfg.Player.Height
		g.player.Y = g.cfg.Player.GroundY
	}
}

// Tick advances the simulation by one frame and draws it onto dst.
func (g *Game) Tick(dst Surface) Result {
	wasOver := g.gameOver

	dst.Clear()

	g.frame++
	if g.frame%g.cfg.Sky.Period == 0 {
		g.night = !g.night
	}

	g.drawSky(dst)

	playerBox := g.player.Box()
	moving := !g.gameOver
	for _, kind := range drawOrder {
		g.advance(kind, playerBox, moving, dst)
	}

	g.integrate()
	g.drawPlayer(dst)
	g.drawGround(dst)

	newBest := false
	if !g.gameOver {
		g.score += g.cfg.Scoring.Increment
		g.speed += g.cfg.Physics.SpeedIncrement
		if g.score > g.highScore {
			g.highScore = g.score
			g.store.SetHighScore(g.highScore)
			if !g.beatBest && g.score > g.startBest {
				g.beatBest = true
				newBest = true
			}
		}
	}

	g.drawHUD(dst)
	if g.gameOver {
		g.drawGameOver(dst)
	}

	return Result{
		State:        g.State(),
		Collided:     g.gameOver && !wasOver,
		NewHighScore: newBest,
	}
}

// advance moves, animates, draws and collision-tests one collection, then
// drops entities that have left the field.
func (g *Game) advance(kind Kind, playerBox core.Box, moving bool, dst Surface) {
	list := g.entities[kind]
	sprites := g.entityConfig(kind).Sprites

	for i := range list {
		e := &list[i]
		if moving {
			e.X -= g.velocity(*e)
		}
		if kind.Animated() && len(sprites) > 1 {
			e.Frame = g.flapFrame()
			e.Sprite = sprites[e.Frame%len(sprites)]
		}

		dst.DrawImage(g.assets.Image(e.Sprite), e.X, e.Y, e.W, e.H)

		if kind.Hazard() && e.Box().Overlaps(playerBox) {
			g.gameOver = true
		}
	}

	g.entities[kind] = retain(list)
}

// velocity returns how far an entity moves left this tick.
func (g *Game) velocity(e Entity) float64 {
	if e.Speed == 0 {
		return g.speed
	}
	return e.Speed
}

// flapFrame alternates 0/1 every half flap period.
func (g *Game) flapFrame() int {
	period := g.cfg.Entities.FlapPeriod
	if g.frame%period < period/2 {
		return 0
	}
	return 1
}

// integrate moves the player, then applies gravity and clamps to the
// ground line. The clamp ignores stance, so a duck settles back to the
// standing line on the next tick.
func (g *Game) integrate() {
	p := &g.player
	p.Y += p.VelocityY
	p.VelocityY += g.cfg.Physics.Gravity

	if ground := g.cfg.Player.GroundY; p.Y >= ground {
		p.Y = ground
		p.VelocityY = 0
		p.Grounded = true
	}
}

// State returns a snapshot of the session.
func (g *Game) State() State {
	return State{
		Score:     g.score,
		HighScore: g.highScore,
		Speed:     g.speed,
		Frame:     g.frame,
		Night:     g.night,
		GameOver:  g.gameOver,
		Stance:    g.player.Stance(),
	}
}

// Player returns a copy of the player.
func (g *Game) Player() Player {
	return g.player
}

// Entities returns a copy of one collection in spawn order.
func (g *Game) Entities(kind Kind) []Entity {
	if kind < 0 || kind >= kindCount {
		return nil
	}
	out := make([]Entity, len(g.entities[kind]))
	copy(out, g.entities[kind])
	return out
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}
