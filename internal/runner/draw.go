package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/dino-runner/internal/core"
)

// HUD layout in play-field units.
const (
	hudY              = 20
	hudScoreX         = 10
	hudHighScoreInset = 170
	hudTextSize       = 20

	gameOverX    = 150
	gameOverY    = 150
	gameOverSize = 30
	gameOverText = "Game Over! Tap or Press Space to Restart"
)

// drawSky paints the background gradient and, at night, the moon.
func (g *Game) drawSky(dst Surface) {
	sky := g.cfg.Sky
	top, bottom := core.Color(sky.DayTop), core.Color(sky.DayBottom)
	if g.night {
		top, bottom = core.Color(sky.NightTop), core.Color(sky.NightBottom)
	}
	dst.FillGradient(0, 0, g.cfg.Field.Width, g.cfg.Field.Height, top, bottom)

	if g.night {
		m := sky.Moon
		dst.DrawImage(g.assets.Image("moon"), m.X, m.Y, m.W, m.H)
	}
}

// playerSprite picks the image for the current stance and frame.
func (g *Game) playerSprite() string {
	step := (g.frame / g.cfg.Player.FrameDelay) % 2
	switch g.player.Stance() {
	case StanceDucking:
		return fmt.Sprintf("dino-duck%d", step+1)
	case StanceAirborne:
		return "dino-jump"
	default:
		return fmt.Sprintf("dino-run%d", step+1)
	}
}

func (g *Game) drawPlayer(dst Surface) {
	p := g.player
	dst.DrawImage(g.assets.Image(g.playerSprite()), p.X, p.Y, p.Width, p.Height)
}

// drawGround tiles the ground image across the full field width.
func (g *Game) drawGround(dst Surface) {
	tile := g.assets.Image("ground")
	if tile.W <= 0 {
		return
	}
	n := int(math.Ceil(g.cfg.Field.Width / tile.W))
	for i := 0; i < n; i++ {
		dst.DrawImage(tile, float64(i)*tile.W, g.cfg.Field.GroundY, tile.W, tile.H)
	}
}

// textColor is black by day and white by night.
func (g *Game) textColor() core.Color {
	if g.night {
		return core.Color(g.cfg.Sky.NightText)
	}
	return core.Color(g.cfg.Sky.DayText)
}

func (g *Game) drawHUD(dst Surface) {
	c := g.textColor()
	dst.DrawText(fmt.Sprintf("Score: %d", int(math.Floor(g.score))), hudScoreX, hudY, c, hudTextSize)
	dst.DrawText(fmt.Sprintf("High Score: %d", int(math.Floor(g.highScore))),
		g.cfg.Field.Width-hudHighScoreInset, hudY, c, hudTextSize)
}

func (g *Game) drawGameOver(dst Surface) {
	dst.DrawText(gameOverText, gameOverX, gameOverY, core.ColorRed, gameOverSize)
}
