package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-swarm/internal/config"
	"github.com/vovakirdan/tui-swarm/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagInitials   string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play swarm",
	Long: `Start a swarm session in the terminal.

Controls:
  WASD/Arrows  - Move
  Space        - Fire laser
  Enter        - Start / continue
  P            - Pause
  Esc/B        - Back to the main menu (leaves from the menu)
  Ctrl+S       - Screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Without --difficulty or --initials the saved preferences are used
(see 'swarm settings').

Examples:
  swarm play
  swarm play --difficulty hard
  swarm play --initials ACE
  swarm play --config ./my-swarm.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom swarm config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagInitials, "initials", "", "Initials stored with your runs (1-3 letters)")
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom swarm config YAML")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closer, err := newLogger("swarm")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	cfg, err := config.LoadSwarm(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	prefs := loadPreferences(logger)
	if err := prefs.SetDifficulty(flagDifficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := prefs.SetInitials(flagInitials); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	g := newGame(cfg, prefs.Preset(), prefs.Preferences().Initials, store, logger)

	logger.Info("play started", "difficulty", g.Difficulty(), "seed", flagSeed)
	_, runErr := tui.Run(g, runtimeConfig())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
