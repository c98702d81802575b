package runner

import "github.com/vovakirdan/dino-runner/internal/core"

// Image is an opaque drawable handle with its size in play-field units.
type Image struct {
	Name string
	W, H float64
}

// Assets provides decoded images by logical name.
type Assets interface {
	Image(name string) Image
}

// Surface is the drawable play-field. Coordinates are logical units with
// the origin at the top-left corner.
type Surface interface {
	Clear()
	FillRect(x, y, w, h float64, c core.Color)
	FillGradient(x, y, w, h float64, top, bottom core.Color)
	DrawImage(img Image, x, y, w, h float64)
	DrawText(text string, x, y float64, c core.Color, size float64)
}

// HighScoreStore persists the best score across sessions. Writes are
// best-effort: implementations must not block the loop on failures.
type HighScoreStore interface {
	HighScore() float64
	SetHighScore(score float64)
}

// MemoryHighScore keeps the high score in process memory.
type MemoryHighScore struct {
	value float64
}

// HighScore returns the stored value.
func (m *MemoryHighScore) HighScore() float64 {
	return m.value
}

// SetHighScore replaces the stored value.
func (m *MemoryHighScore) SetHighScore(score float64) {
	m.value = score
}

// NopSurface discards all drawing. Useful for headless simulation.
type NopSurface struct{}

// Clear does nothing.
func (NopSurface) Clear() {}

// FillRect does nothing.
func (NopSurface) FillRect(_, _, _, _ float64, _ core.Color) {}

// FillGradient does nothing.
func (NopSurface) FillGradient(_, _, _, _ float64, _, _ core.Color) {}

// DrawImage does nothing.
func (NopSurface) DrawImage(_ Image, _, _, _, _ float64) {}

// DrawText does nothing.
func (NopSurface) DrawText(_ string, _, _ float64, _ core.Color, _ float64) {}
