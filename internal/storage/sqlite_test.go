package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandPath("~/.dinorun/scores.db")
	if err != nil {
		t.Fatalf("ExpandPath() failed: %v", err)
	}
	if want := filepath.Join(home, ".dinorun", "scores.db"); got != want {
		t.Errorf("ExpandPath() = %q, expected %q", got, want)
	}

	if got, _ := ExpandPath("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path should be unchanged, got %q", got)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for a fresh database, got %v", high)
	}

	if err := store.SetHighScore(120.4); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}
	if err := store.SetHighScore(121.05); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 121.05 {
		t.Errorf("Expected 121.05, got %v", high)
	}
}

func TestStoreHighScoreSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SetHighScore(42.5)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if high, _ := store.HighScore(); high != 42.5 {
		t.Errorf("Expected 42.5 after reopen, got %v", high)
	}
}

func TestStoreValues(t *testing.T) {
	store := openTestStore(t)

	store.SetValue("a", 1)
	store.SetValue("b", 2)
	store.SetValue("a", 3)

	tests := []struct {
		key  string
		want float64
	}{
		{"a", 3},
		{"b", 2},
		{"missing", 0},
	}
	for _, tc := range tests {
		got, err := store.Value(tc.key)
		if err != nil {
			t.Fatalf("Value(%q) failed: %v", tc.key, err)
		}
		if got != tc.want {
			t.Errorf("Value(%q) = %v, expected %v", tc.key, got, tc.want)
		}
	}
}

func TestStoreTopRuns(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []float64{100.5, 50, 200.25, 10, 150} {
		if _, err := store.SaveRun("rex", score, int(score*20)); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 200.25 || runs[1].Score != 150 || runs[2].Score != 100.5 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
	if runs[0].Player != "rex" || runs[0].Ticks != 4005 {
		t.Errorf("Unexpected run fields: %+v", runs[0])
	}
	if runs[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("", 1, 20)
	store.SaveRun("alice", 2, 40)
	store.SaveRun("bob", 3, 60)

	runs, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 || runs[0].Player != "bob" || runs[1].Player != "alice" {
		t.Errorf("Expected newest first, got %+v", runs)
	}

	all, _ := store.RecentRuns(0)
	if all[len(all)-1].Player != "local" {
		t.Errorf("Empty player should be stored as local, got %q", all[len(all)-1].Player)
	}
}

func TestStoreStatsAndClear(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveRun("a", 10, 200)
	store.SaveRun("a", 30, 600)
	store.SetHighScore(30)

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.Best != 30 || stats.Average != 20 || stats.TotalTicks != 800 {
		t.Errorf("Unexpected stats: %+v", stats)
	}

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if runs, _ := store.TopRuns(10); len(runs) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(runs))
	}
	if high, _ := store.HighScore(); high != 30 {
		t.Errorf("ClearRuns should keep the high score, got %v", high)
	}
}

func TestHighScoreSlot(t *testing.T) {
	store := openTestStore(t)
	var buf bytes.Buffer
	slot := NewHighScoreSlot(store, "", log.New(&buf))

	if v := slot.HighScore(); v != 0 {
		t.Errorf("Expected 0, got %v", v)
	}
	slot.SetHighScore(77.7)
	if v := slot.HighScore(); v != 77.7 {
		t.Errorf("Expected 77.7, got %v", v)
	}

	// Failures are logged, not returned
	store.Close()
	slot.SetHighScore(80)
	if v := slot.HighScore(); v != 0 {
		t.Errorf("Expected 0 from a closed store, got %v", v)
	}
	if !strings.Contains(buf.String(), "Failed to save high score") {
		t.Errorf("Expected a logged warning, got %q", buf.String())
	}
}

func TestHighScoreSlotCustomKey(t *testing.T) {
	store := openTestStore(t)
	if err := store.SetHighScore(10); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}

	slot := NewHighScoreSlot(store, "dinoBest", nil)
	if slot.Key() != "dinoBest" {
		t.Errorf("Key() = %q", slot.Key())
	}
	if v := slot.HighScore(); v != 0 {
		t.Errorf("Expected 0 from an unused key, got %v", v)
	}

	slot.SetHighScore(55.5)
	if v, err := store.Value("dinoBest"); err != nil || v != 55.5 {
		t.Errorf("Value(dinoBest) = %v, %v; expected 55.5", v, err)
	}
	if v, _ := store.HighScore(); v != 10 {
		t.Errorf("default row should be untouched, got %v", v)
	}

	if k := NewHighScoreSlot(store, "", nil).Key(); k != HighScoreKey {
		t.Errorf("empty key should fall back to %q, got %q", HighScoreKey, k)
	}
}
