// dinorun is an endless runner for the terminal: jump over cacti, duck
// under crows, and chase the high score.
//
// Usage:
//
//	dinorun play             - Start a run immediately
//	dinorun menu             - Title menu with play and high scores
//	dinorun serve            - Start SSH server for remote play
//	dinorun scores           - Print the run history
//	dinorun config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible spawns
//	--db <path>           - Set database path (default: ~/.dinorun/scores.db)
//	--config <path>       - Custom runner config YAML
//	--difficulty <name>   - Preset: easy, normal, hard
//	--sound               - Play sound cues
//	--log <path>          - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagSound      bool
	flagLogPath    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dinorun",
	Short: "Dino Runner - an endless runner in your terminal",
	Long: `Dino Runner is a terminal endless runner. The dinosaur runs on its own;
jump over cacti and crows, duck under low flyers, and beat your high score.

Available commands:
  play     - Start a run immediately
  menu     - Title menu with play and high scores
  serve    - Start SSH server for remote play
  scores   - Print the run history
  config   - Print the effective configuration

Examples:
  dinorun play
  dinorun play --difficulty hard --sound
  dinorun menu
  dinorun serve --ssh :2222
  dinorun scores --recent`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dinorun/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Play sound cues")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
