package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/storage"
)

func newTestSession(t *testing.T, store *storage.Store) SessionModel {
	t.Helper()
	deps := Deps{
		Runner: config.DefaultRunnerConfig(),
		Atlas:  loadAtlas(t),
		Store:  store,
	}
	return NewSessionModel(deps, core.RuntimeConfig{ScreenW: 90, ScreenH: 30}, "guest")
}

func sendSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out, cmd
}

func TestSessionPlayAndBack(t *testing.T) {
	m := newTestSession(t, nil)
	if m.current != screenMenu {
		t.Fatal("session should open on the menu")
	}

	m, cmd := sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.current != screenGame {
		t.Fatalf("enter on Play should start a game, screen = %v", m.current)
	}
	if cmd == nil {
		t.Error("starting a game should arm its timers")
	}
	if m.game.player != "guest" {
		t.Errorf("run player = %q", m.game.player)
	}

	m, _ = sendSession(t, m, TickMsg{Gen: m.game.gen})
	if m.game.State().Score <= 0 {
		t.Error("session should forward ticks to the game")
	}

	oldGen := m.game.gen
	m, _ = sendSession(t, m, runeKey('b'))
	if m.current != screenMenu {
		t.Fatal("b should return to the menu")
	}

	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.game.gen == oldGen {
		t.Error("a new game should take a new generation")
	}
}

func TestSessionScoresAndBack(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	if _, err := store.SaveRun("rex", 321, 6420); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if err := store.SetHighScore(321); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}

	m := newTestSession(t, store)
	if v := m.View(); !strings.Contains(v, "Best: 321") {
		t.Errorf("menu should show the best score:\n%s", v)
	}

	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.current != screenScores {
		t.Fatal("tab should open the scoreboard")
	}
	if v := m.View(); !strings.Contains(v, "rex") {
		t.Errorf("scoreboard should list the saved run:\n%s", v)
	}

	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.current != screenMenu {
		t.Error("esc should return to the menu")
	}
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession(t, nil)

	// Move to Quit and select it
	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.quitting || cmd == nil {
		t.Error("selecting Quit should end the session")
	}
	if m.View() != "" {
		t.Error("quitting view should be empty")
	}
}
