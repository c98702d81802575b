// Package tui provides the Bubble Tea host for the runner: the frame loop,
// spawn timers, input mapping, the terminal render surface, and the menu,
// scoreboard and SSH front ends.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dino-runner/internal/runner"
)

// generation tags the timers of one play model so that messages from a
// previous game are dropped instead of re-armed.
var generation atomic.Uint64

func nextGeneration() uint64 {
	return generation.Add(1)
}

// TickMsg is sent to trigger a game simulation tick.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// SpawnMsg asks the game to spawn one entity of Kind.
type SpawnMsg struct {
	Gen  uint64
	Kind runner.Kind
}

// duckReleaseMsg ends a duck when no duck key arrived for the hold window.
type duckReleaseMsg struct {
	Gen uint64
	Seq int
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(gen uint64, tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// spawnCmd fires one SpawnMsg after interval. The receiver re-arms it.
func spawnCmd(gen uint64, kind runner.Kind, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return SpawnMsg{Gen: gen, Kind: kind}
	})
}

// duckReleaseCmd fires after hold unless superseded by a newer seq.
func duckReleaseCmd(gen uint64, seq int, hold time.Duration) tea.Cmd {
	return tea.Tick(hold, func(time.Time) tea.Msg {
		return duckReleaseMsg{Gen: gen, Seq: seq}
	})
}
