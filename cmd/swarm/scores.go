package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-swarm/internal/config"
	"github.com/vovakirdan/tui-swarm/internal/platform/tui"
	"github.com/vovakirdan/tui-swarm/internal/storage"
)

var (
	flagLimit       int
	flagRecent      bool
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show the best runs",
	Long: `Display the best runs, optionally for one difficulty.

Examples:
  swarm scores
  swarm scores hard
  swarm scores --recent --limit 5
  swarm scores --interactive
  swarm scores normal --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest runs instead of the best")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the runs of the difficulty (all if none given)")
}

func runScores(_ *cobra.Command, args []string) {
	difficulty := ""
	if len(args) == 1 {
		p, ok := config.ParsePreset(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Use one of: easy, normal, hard, fixed.")
			os.Exit(1)
		}
		difficulty = string(p)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearRuns(difficulty); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Runs cleared.")
		return

	case flagInteractive:
		rc := runtimeConfig()
		if _, err := tui.RunScoreboard(store, difficulty, rc.ScreenW, rc.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var runs []storage.RunEntry
	if flagRecent {
		runs, err = store.RecentRuns(flagLimit)
	} else {
		runs, err = store.TopRuns(difficulty, flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	title := "all difficulties"
	if difficulty != "" {
		title = difficulty
	}
	if flagRecent {
		fmt.Println("Recent Runs")
	} else {
		fmt.Printf("High Scores - %s\n", title)
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'swarm play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-3s  %-8s  %-6s  %-6s  %-8s  %s\n", "Rank", "Who", "Score", "Kills", "Time", "Diff", "Date")
	fmt.Printf("  %-4s  %-3s  %-8s  %-6s  %-6s  %-8s  %s\n", "----", "---", "-----", "-----", "----", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-3s  %-8d  %-6d  %-6.0f  %-8s  %s\n",
			i+1, r.Initials, r.Score, r.Kills, r.Survived, r.Difficulty, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if highScore, err := store.HighScore(difficulty); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
