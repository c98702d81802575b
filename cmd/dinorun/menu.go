package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-runner/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the title menu",
	Long: `Open the title menu to start runs and browse the high scores
without leaving the program.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	deps, cleanup, err := buildDeps(io.Discard)
	if err != nil {
		return err
	}
	defer cleanup()

	return tui.RunSession(deps, runtimeConfig(), playerName())
}
