package storage

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-runner/internal/runner"
)

// HighScoreSlot exposes a Store as the game's high-score collaborator.
// The game never sees storage errors; they are logged and dropped.
type HighScoreSlot struct {
	store  *Store
	key    string
	logger *log.Logger
}

var _ runner.HighScoreStore = (*HighScoreSlot)(nil)

// NewHighScoreSlot wraps the kv row named key. An empty key uses
// HighScoreKey and a nil logger uses the default logger.
func NewHighScoreSlot(store *Store, key string, logger *log.Logger) *HighScoreSlot {
	if key == "" {
		key = HighScoreKey
	}
	if logger == nil {
		logger = log.Default()
	}
	return &HighScoreSlot{store: store, key: key, logger: logger}
}

// Key returns the kv key the slot reads and writes.
func (h *HighScoreSlot) Key() string {
	return h.key
}

// HighScore returns the persisted best, or 0 on failure.
func (h *HighScoreSlot) HighScore() float64 {
	v, err := h.store.Value(h.key)
	if err != nil {
		h.logger.Warn("Failed to load high score", "key", h.key, "err", err)
		return 0
	}
	return v
}

// SetHighScore persists the best score.
func (h *HighScoreSlot) SetHighScore(score float64) {
	if err := h.store.SetValue(h.key, score); err != nil {
		h.logger.Warn("Failed to save high score", "key", h.key, "score", score, "err", err)
	}
}
