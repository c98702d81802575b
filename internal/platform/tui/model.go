package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-runner/internal/assets"
	"github.com/vovakirdan/dino-runner/internal/audio"
	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/runner"
	"github.com/vovakirdan/dino-runner/internal/storage"
)

// DefaultDuckHold is how long a duck lasts after the last duck key event.
// Terminals report key repeats but not releases.
const DefaultDuckHold = 180 * time.Millisecond

// Deps are the collaborators shared by every play session.
type Deps struct {
	Runner   config.RunnerConfig
	Atlas    *assets.Atlas
	Store    *storage.Store // Optional
	Sound    *audio.Player  // Optional; nil is silent
	Logger   *log.Logger    // Optional
	DuckHold time.Duration
}

func (d Deps) logger() *log.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return log.New(io.Discard)
}

// Model is the Bubble Tea model for one play session.
type Model struct {
	deps    Deps
	game    *runner.Game
	screen  *core.Screen
	surface *TermSurface
	config  core.RuntimeConfig
	keys    *KeyMapper
	player  string
	gen     uint64

	last       runner.Result
	runTicks   int
	runSaved   bool
	duckSeq    int
	paused     bool
	standalone bool // Quit the program on back instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewModel creates a play model. player names the run in the history.
func NewModel(deps Deps, cfg core.RuntimeConfig, player string) Model {
	cfg = cfg.Normalize()
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if deps.DuckHold <= 0 {
		deps.DuckHold = DefaultDuckHold
	}

	var hs runner.HighScoreStore
	if deps.Store != nil {
		hs = storage.NewHighScoreSlot(deps.Store, deps.Runner.Scoring.HighScoreKey, deps.logger())
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	game := runner.New(deps.Runner, deps.Atlas, hs, cfg.Seed)

	return Model{
		deps:    deps,
		game:    game,
		screen:  screen,
		surface: NewTermSurface(screen, deps.Atlas, deps.Runner.Field.Width, deps.Runner.Field.Height),
		config:  cfg,
		keys:    NewKeyMapper(),
		player:  player,
		gen:     nextGeneration(),
		last:    runner.Result{State: game.State()},
	}
}

// Init starts the frame loop and one spawn timer per entity kind.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.gen, m.config.TickRate)}
	for _, k := range runner.Kinds {
		cmds = append(cmds, spawnCmd(m.gen, k, m.game.SpawnInterval(k)))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()

	case SpawnMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		if !m.paused {
			m.game.Spawn(msg.Kind)
		}
		return m, spawnCmd(m.gen, msg.Kind, m.game.SpawnInterval(msg.Kind))

	case duckReleaseMsg:
		if msg.Gen == m.gen && msg.Seq == m.duckSeq && m.game.Player().Ducking {
			m.game.Duck(false)
		}
		return m, nil
	}

	return m, nil
}

// handleKey applies input immediately; the next tick sees its effect.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionJump:
		if m.paused {
			return m, nil
		}
		wasOver := m.game.State().GameOver
		if m.game.Jump() {
			m.deps.Sound.Play(audio.CueJump)
		} else if wasOver {
			m.newRun()
		}

	case core.ActionDuck:
		if m.paused {
			return m, nil
		}
		if !m.game.Player().Ducking {
			m.game.Duck(true)
		}
		m.duckSeq++
		return m, duckReleaseCmd(m.gen, m.duckSeq, m.deps.DuckHold)

	case core.ActionRestart:
		if m.game.State().GameOver {
			m.game.Reset()
			m.newRun()
		}

	case core.ActionPause:
		if !m.game.State().GameOver {
			m.paused = !m.paused
		}

	case core.ActionBack:
		m.backToMenu = true
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}

	case core.ActionScreenshot:
		m.saveScreenshot()
	}

	return m, nil
}

func (m *Model) newRun() {
	m.runTicks = 0
	m.runSaved = false
	m.last = runner.Result{State: m.game.State()}
}

// handleTick advances the game one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.gen, m.config.TickRate)
	}

	res := m.game.Tick(m.surface)
	if !res.State.GameOver {
		m.runTicks++
	}
	if res.NewHighScore {
		m.deps.Sound.Play(audio.CueBest)
	}
	if res.Collided {
		m.deps.Sound.Play(audio.CueCrash)
		m.saveRun(res.State)
	}
	m.last = res

	return m, tickCmd(m.gen, m.config.TickRate)
}

// saveRun records the finished run once.
func (m *Model) saveRun(st runner.State) {
	if m.runSaved {
		return
	}
	m.runSaved = true

	m.deps.logger().Info("Run ended",
		"player", m.player,
		"score", int(st.Score),
		"ticks", m.runTicks,
		"best", int(st.HighScore),
	)

	if m.deps.Store == nil {
		return
	}
	if _, err := m.deps.Store.SaveRun(m.player, st.Score, m.runTicks); err != nil {
		m.deps.logger().Warn("Failed to save run", "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".dinorun", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("dinorun_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the last drawn frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.paused {
		m.drawPause()
	}
	return RenderScreen(m.screen)
}

// drawPause overlays a banner in the middle of the field.
func (m Model) drawPause() {
	f := m.deps.Runner.Field
	m.surface.FillRect(f.Width/2-120, f.Height/2-30, 240, 60, core.ColorDarkGray)
	m.surface.DrawText("PAUSED - P to resume", f.Width/2-100, f.Height/2-5, core.ColorBrightWhite, 20)
}

// State returns the state after the last tick.
func (m Model) State() runner.State {
	return m.last.State
}

// Paused reports whether the simulation is paused.
func (m Model) Paused() bool {
	return m.paused
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone play session.
func Run(deps Deps, cfg core.RuntimeConfig, player string) error {
	model := NewModel(deps, cfg, player)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
