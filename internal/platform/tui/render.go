package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dino-runner/internal/core"
)

type styleKey struct {
	fg, bg core.Color
}

// styles caches one lipgloss style per colour pair. Shared by every SSH
// session, hence the lock.
var styles = struct {
	sync.RWMutex
	m map[styleKey]lipgloss.Style
}{m: make(map[styleKey]lipgloss.Style)}

func styleFor(fg, bg core.Color) lipgloss.Style {
	k := styleKey{fg, bg}

	styles.RLock()
	st, ok := styles.m[k]
	styles.RUnlock()
	if ok {
		return st
	}

	st = lipgloss.NewStyle()
	if fg != core.ColorDefault {
		st = st.Foreground(lipgloss.Color(fg))
	}
	if bg != core.ColorDefault {
		st = st.Background(lipgloss.Color(bg))
	}

	styles.Lock()
	styles.m[k] = st
	styles.Unlock()
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.Fg == core.ColorDefault && start.Bg == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
