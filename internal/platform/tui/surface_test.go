package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/dino-runner/internal/assets"
	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/runner"
)

func loadAtlas(t *testing.T) *assets.Atlas {
	t.Helper()
	atlas, err := assets.Load()
	if err != nil {
		t.Fatalf("assets.Load() failed: %v", err)
	}
	return atlas
}

// newTestSurface maps the 900x300 field at 10 units per cell.
func newTestSurface(t *testing.T) (*TermSurface, *core.Screen, *assets.Atlas) {
	t.Helper()
	atlas := loadAtlas(t)
	screen := core.NewScreen(90, 30)
	return NewTermSurface(screen, atlas, 900, 300), screen, atlas
}

func TestSurfaceGradient(t *testing.T) {
	s, screen, _ := newTestSurface(t)
	s.FillGradient(0, 0, 900, 300, "#87ceeb", "#ffffff")

	if bg := screen.GetCell(0, 0).Bg; bg != "#87ceeb" {
		t.Errorf("top row = %q, expected #87ceeb", bg)
	}
	if bg := screen.GetCell(89, 29).Bg; bg != "#ffffff" {
		t.Errorf("bottom row = %q, expected #ffffff", bg)
	}
	mid := screen.GetCell(45, 15).Bg
	if mid == "#87ceeb" || mid == "#ffffff" || !mid.IsHex() {
		t.Errorf("middle row = %q, expected a blended hex colour", mid)
	}
}

func TestSurfaceGradientPalette(t *testing.T) {
	s, screen, _ := newTestSurface(t)
	s.FillGradient(0, 0, 900, 300, core.ColorBlue, core.ColorBlack)

	if bg := screen.GetCell(0, 0).Bg; bg != core.ColorBlue {
		t.Errorf("top = %q", bg)
	}
	if bg := screen.GetCell(0, 29).Bg; bg != core.ColorBlack {
		t.Errorf("bottom = %q", bg)
	}
}

func TestSurfaceFillRect(t *testing.T) {
	s, screen, _ := newTestSurface(t)
	s.FillRect(100, 100, 50, 30, core.ColorRed)

	for y := 10; y < 13; y++ {
		for x := 10; x < 15; x++ {
			if c := screen.GetCell(x, y); c.Bg != core.ColorRed {
				t.Fatalf("cell (%d,%d) = %+v, expected red background", x, y, c)
			}
		}
	}
	if c := screen.GetCell(15, 10); c.Bg == core.ColorRed {
		t.Error("fill leaked past the right edge")
	}
}

func TestSurfaceDrawImage(t *testing.T) {
	s, screen, atlas := newTestSurface(t)
	s.FillGradient(0, 0, 900, 300, "#87ceeb", "#ffffff")

	img := atlas.Image("cactus1")
	s.DrawImage(img, 100, 200, img.W, img.H)

	color := core.Color(atlas.Sprite("cactus1").Color)
	painted := 0
	for y := 20; y < 25; y++ {
		for x := 10; x < 13; x++ {
			c := screen.GetCell(x, y)
			if c.Rune != ' ' {
				painted++
				if c.Fg != color {
					t.Errorf("cell (%d,%d) fg = %q, expected %q", x, y, c.Fg, color)
				}
				if !c.Bg.IsHex() {
					t.Errorf("sprite should keep the sky behind it, bg = %q", c.Bg)
				}
			}
		}
	}
	if painted == 0 {
		t.Error("cactus drew nothing")
	}

	// Outside the sprite stays untouched
	if c := screen.GetCell(40, 20); c.Rune != ' ' {
		t.Errorf("unexpected glyph %q outside the sprite", c.Rune)
	}
}

func TestSurfaceDrawImageUnknown(t *testing.T) {
	s, screen, _ := newTestSurface(t)
	s.DrawImage(runner.Image{Name: "nope", W: 10, H: 10}, 0, 0, 100, 100)

	if strings.TrimSpace(screen.String()) != "" {
		t.Error("unknown image should draw nothing")
	}
}

func TestSurfaceDrawText(t *testing.T) {
	s, screen, _ := newTestSurface(t)

	s.DrawText("Score: 7", 10, 20, core.ColorBlack, 20)
	if got := strings.TrimRight(screen.Row(2), " "); got != " Score: 7" {
		t.Errorf("row 2 = %q", got)
	}
	if c := screen.GetCell(1, 2); c.Fg != core.ColorBlack {
		t.Errorf("text colour = %q", c.Fg)
	}

	// Shifted left to stay on screen
	s.DrawText("High Score: 12345", 880, 50, core.ColorBlack, 20)
	if got := screen.Row(5); !strings.HasSuffix(got, "High Score: 12345") {
		t.Errorf("row 5 = %q, expected right-aligned text", got)
	}
}

func TestSurfaceRunsGameFrame(t *testing.T) {
	s, screen, atlas := newTestSurface(t)
	game := runner.New(config.DefaultRunnerConfig(), atlas, nil, 1)

	game.Tick(s)

	out := screen.String()
	if !strings.Contains(out, "Score: 0") || !strings.Contains(out, "High Score: 0") {
		t.Errorf("HUD missing from frame:\n%s", out)
	}
	if out := RenderScreen(screen); !strings.Contains(out, "Score") {
		t.Error("rendered output lost the HUD")
	}
}
