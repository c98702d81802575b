package tui

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/dino-runner/internal/assets"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/runner"
)

// TermSurface rasterises the logical play-field onto a character grid.
// Play-field units are scaled independently on each axis to fill the screen.
type TermSurface struct {
	screen *core.Screen
	atlas  *assets.Atlas
	fieldW float64
	fieldH float64
}

var _ runner.Surface = (*TermSurface)(nil)

// NewTermSurface draws onto screen using sprites from atlas.
func NewTermSurface(screen *core.Screen, atlas *assets.Atlas, fieldW, fieldH float64) *TermSurface {
	return &TermSurface{screen: screen, atlas: atlas, fieldW: fieldW, fieldH: fieldH}
}

// Screen returns the backing cell buffer.
func (s *TermSurface) Screen() *core.Screen {
	return s.screen
}

func (s *TermSurface) col(x float64) int {
	return int(math.Floor(x * float64(s.screen.Width()) / s.fieldW))
}

func (s *TermSurface) row(y float64) int {
	return int(math.Floor(y * float64(s.screen.Height()) / s.fieldH))
}

// span converts a logical rectangle into a cell rectangle covering at
// least one cell.
func (s *TermSurface) span(x, y, w, h float64) core.Rect {
	c0, r0 := s.col(x), s.row(y)
	c1, r1 := s.col(x+w), s.row(y+h)
	if c1 <= c0 {
		c1 = c0 + 1
	}
	if r1 <= r0 {
		r1 = r0 + 1
	}
	return core.NewRect(c0, r0, c1-c0, r1-r0)
}

func (s *TermSurface) Clear() {
	s.screen.Clear()
}

// FillRect paints a solid background over the rectangle.
func (s *TermSurface) FillRect(x, y, w, h float64, c core.Color) {
	r := s.span(x, y, w, h)
	for cy := r.Y; cy < r.Bottom(); cy++ {
		for cx := r.X; cx < r.Right(); cx++ {
			s.screen.SetCell(cx, cy, core.Cell{Rune: ' ', Bg: c})
		}
	}
}

// FillGradient paints a vertical gradient, one colour per cell row.
// Palette colours cannot be blended; the top colour fills the upper half.
func (s *TermSurface) FillGradient(x, y, w, h float64, top, bottom core.Color) {
	r := s.span(x, y, w, h)
	rows := r.H

	from, errTop := colorful.Hex(string(top))
	to, errBottom := colorful.Hex(string(bottom))
	blend := errTop == nil && errBottom == nil

	for i := 0; i < rows; i++ {
		var c core.Color
		switch {
		case blend:
			t := 0.0
			if rows > 1 {
				t = float64(i) / float64(rows-1)
			}
			c = core.Color(from.BlendRgb(to, t).Hex())
		case i < rows/2:
			c = top
		default:
			c = bottom
		}
		for cx := r.X; cx < r.Right(); cx++ {
			s.screen.SetCell(cx, r.Y+i, core.Cell{Rune: ' ', Bg: c})
		}
	}
}

// DrawImage samples the sprite's glyph art nearest-neighbour into the
// destination cells. Spaces are transparent.
func (s *TermSurface) DrawImage(img runner.Image, x, y, w, h float64) {
	sp := s.atlas.Sprite(img.Name)
	if sp == nil || sp.Cols() == 0 {
		return
	}

	r := s.span(x, y, w, h)
	cols, rows := sp.Cols(), sp.Rows()
	fg := core.Color(sp.Color)

	for j := 0; j < r.H; j++ {
		ar := j * rows / r.H
		for i := 0; i < r.W; i++ {
			g := sp.At(i*cols/r.W, ar)
			if g == ' ' {
				continue
			}
			s.screen.SetFg(r.X+i, r.Y+j, g, fg)
		}
	}
}

// DrawText writes text at the scaled anchor. Terminal glyphs have one size,
// so size is ignored. Text that would run off the right edge is shifted left.
func (s *TermSurface) DrawText(text string, x, y float64, c core.Color, _ float64) {
	cx, cy := s.col(x), s.row(y)
	if over := cx + len([]rune(text)) - s.screen.Width(); over > 0 {
		cx = core.Max(0, cx-over)
	}
	s.screen.DrawTextColor(cx, cy, text, c)
}
