package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-runner/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective runner configuration",
	Long: `Print the configuration a run would use, after resolving --config
and applying --difficulty. Redirect it to a file to start a custom config:

  dinorun config > ~/.dinorun/configs/runner.yaml

Search order when --config is not given:
  ~/.dinorun/configs/runner.yaml
  ./configs/runner.yaml
  built-in defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadRunnerConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
