// Package assets provides the embedded sprite atlas used by the game.
package assets

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/dino-runner/internal/runner"
)

//go:embed manifest.yaml
var manifestYAML []byte

// Required lists every logical image the game asks for.
var Required = []string{
	"dino-run1", "dino-run2",
	"dino-duck1", "dino-duck2",
	"dino-jump",
	"cactus1", "cactus2",
	"bird1", "bird2",
	"crow1", "crow2",
	"tumbleweed",
	"ground",
	"cloud",
	"moon",
}

// Sprite is one decoded image: its logical size and glyph art.
type Sprite struct {
	Name   string   `yaml:"name"`
	Width  float64  `yaml:"width"`
	Height float64  `yaml:"height"`
	Color  string   `yaml:"color"`
	Art    []string `yaml:"art"`

	rows [][]rune
}

// Cols returns the width of the art grid.
func (s *Sprite) Cols() int {
	cols := 0
	for _, r := range s.rows {
		if len(r) > cols {
			cols = len(r)
		}
	}
	return cols
}

// Rows returns the height of the art grid.
func (s *Sprite) Rows() int {
	return len(s.rows)
}

// At returns the glyph at art position (col, row); spaces are transparent.
func (s *Sprite) At(col, row int) rune {
	if row < 0 || row >= len(s.rows) || col < 0 || col >= len(s.rows[row]) {
		return ' '
	}
	return s.rows[row][col]
}

type manifest struct {
	Sprites []Sprite `yaml:"sprites"`
}

// Atlas is a name-indexed set of sprites. It implements runner.Assets.
type Atlas struct {
	sprites map[string]*Sprite
}

// Load parses the embedded manifest.
func Load() (*Atlas, error) {
	return Parse(manifestYAML)
}

// Parse decodes a manifest and checks that every required sprite is present.
func Parse(data []byte) (*Atlas, error) {
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("assets: cannot parse manifest: %w", err)
	}

	a := &Atlas{sprites: make(map[string]*Sprite, len(m.Sprites))}
	for i := range m.Sprites {
		s := m.Sprites[i]
		if s.Width <= 0 || s.Height <= 0 {
			return nil, fmt.Errorf("assets: sprite %q has non-positive size", s.Name)
		}
		if len(s.Art) == 0 {
			return nil, fmt.Errorf("assets: sprite %q has no art", s.Name)
		}
		if _, dup := a.sprites[s.Name]; dup {
			return nil, fmt.Errorf("assets: duplicate sprite %q", s.Name)
		}
		s.rows = make([][]rune, len(s.Art))
		for r, line := range s.Art {
			s.rows[r] = []rune(line)
		}
		a.sprites[s.Name] = &s
	}

	for _, name := range Required {
		if _, ok := a.sprites[name]; !ok {
			return nil, fmt.Errorf("assets: missing sprite %q", name)
		}
	}
	return a, nil
}

// Image returns the logical size of a sprite. Unknown names yield a
// zero-sized image.
func (a *Atlas) Image(name string) runner.Image {
	s, ok := a.sprites[name]
	if !ok {
		return runner.Image{Name: name}
	}
	return runner.Image{Name: name, W: s.Width, H: s.Height}
}

// Sprite returns the full sprite for rendering, or nil if unknown.
func (a *Atlas) Sprite(name string) *Sprite {
	return a.sprites[name]
}

var _ runner.Assets = (*Atlas)(nil)
