package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-runner/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start running immediately.

Controls:
  Space/Up/W  - Jump (restarts after game over)
  Down/S      - Duck (hold)
  P           - Pause
  R           - Restart (after game over)
  Ctrl+S      - Save a screenshot to ~/.dinorun/screenshots
  Esc/B       - Leave
  Q/Ctrl+C    - Quit

Difficulty presets:
  easy   - Slower scroll, sparser obstacles
  normal - The default tuning
  hard   - Faster scroll, faster acceleration, denser obstacles

Examples:
  dinorun play
  dinorun play --difficulty hard
  dinorun play --seed 42 --fps 30
  dinorun play --config ./my-runner.yaml --log ./dinorun.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The alternate screen owns the terminal, so logs go nowhere unless --log is set
	deps, cleanup, err := buildDeps(io.Discard)
	if err != nil {
		return err
	}
	defer cleanup()

	return tui.Run(deps, runtimeConfig(), playerName())
}
