package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-runner/internal/platform/tui"
	"github.com/vovakirdan/dino-runner/internal/storage"
)

var (
	flagRecent      bool
	flagLimit       int
	flagClear       bool
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the best runs, or the latest ones with --recent.

Examples:
  dinorun scores
  dinorun scores --recent --limit 20
  dinorun scores -i
  dinorun scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the latest runs instead of the best")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to list")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history (the high score is kept)")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the interactive scoreboard")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagInteractive {
		cfg := runtimeConfig()
		return tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
	}

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	var runs []storage.Run
	title := "Best Runs"
	if flagRecent {
		title = "Recent Runs"
		runs, err = store.RecentRuns(flagLimit)
	} else {
		runs, err = store.TopRuns(flagLimit)
	}
	if err != nil {
		return err
	}

	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dinorun play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-12s  %-8s  %s\n", "Rank", "Score", "Player", "Ticks", "Date")
	fmt.Printf("  %-4s  %-8s  %-12s  %-8s  %s\n", "----", "-----", "------", "-----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-12s  %-8d  %s\n",
			i+1, int(r.Score), r.Player, r.Ticks, r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	fmt.Println()
	key := storage.HighScoreKey
	if cfg, err := loadRunnerConfig(); err == nil {
		key = cfg.Scoring.HighScoreKey
	}
	if best, err := store.Value(key); err == nil {
		fmt.Printf("High score: %d\n", int(best))
	}
	if stats, err := store.Stats(); err == nil && stats.Runs > 0 {
		fmt.Printf("Runs: %d  Average: %.1f\n", stats.Runs, stats.Average)
	}
	return nil
}
