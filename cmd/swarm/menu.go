package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-swarm/internal/config"
	"github.com/vovakirdan/tui-swarm/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start swarm with the difficulty launcher",
	Long: `Start swarm in interactive menu mode.

Use arrow keys or j/k to pick a difficulty, Enter to play, Tab for the
scoreboard. Leaving a game from its main menu returns to the launcher.
The last difficulty played is remembered.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  Tab          - Scoreboard
  Q            - Quit

Examples:
  swarm menu
  swarm menu --fps 30
  swarm menu --db ./runs.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
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
	store := openStore(logger)
	rc := runtimeConfig()
	difficulty := prefs.Preset()

	for {
		menuResult, err := tui.RunMenu(store, rc, difficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		rc = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, string(difficulty), rc.ScreenW, rc.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		difficulty = menuResult.Difficulty
		if err := prefs.SetDifficulty(string(difficulty)); err == nil {
			if err := prefs.Save(); err != nil {
				logger.Warn("could not save settings", "error", err)
			}
		}

		// A fixed --seed replays the same run; otherwise every game differs.
		if flagSeed == 0 {
			rc.Seed = time.Now().UnixNano()
		}

		g := newGame(cfg, difficulty, prefs.Preferences().Initials, store, logger)
		logger.Info("game started", "difficulty", g.Difficulty(), "seed", rc.Seed)

		backToMenu, err := tui.Run(g, rc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if !backToMenu {
			break
		}
	}

	if store != nil {
		store.Close()
	}
}
