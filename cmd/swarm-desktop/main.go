// swarm-desktop runs swarm in a desktop window.
//
// Usage:
//
//	swarm-desktop [--difficulty hard] [--config ./swarm.yaml] [--seed 42]
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-swarm/internal/config"
	"github.com/vovakirdan/tui-swarm/internal/core"
	"github.com/vovakirdan/tui-swarm/internal/game"
	"github.com/vovakirdan/tui-swarm/internal/platform/desktop"
	"github.com/vovakirdan/tui-swarm/internal/settings"
	"github.com/vovakirdan/tui-swarm/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "swarm-desktop",
	Short: "Swarm in a desktop window",
	Long: `Play swarm in a window. Controls match the terminal version:
WASD/Arrows move, Space fires, Enter starts, P pauses, Esc backs out, Q quits.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	rootCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagDBPath, "db", "~/.swarm/runs.db", "Path to runs database")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom swarm config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func run(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "swarm-desktop",
		Level:           level,
	})

	cfg, err := config.LoadSwarm(flagConfig)
	if err != nil {
		return err
	}

	prefs, err := settings.Open()
	if err != nil {
		logger.Warn("could not load settings", "error", err)
	}
	if err := prefs.SetDifficulty(flagDifficulty); err != nil {
		return err
	}

	opts := []game.Option{
		game.WithPreset(prefs.Preset()),
		game.WithInitials(prefs.Preferences().Initials),
		game.WithLogger(logger),
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
	} else {
		defer store.Close()
		opts = append(opts, game.WithRecorder(store))
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rc := core.RuntimeConfig{TickRate: flagFPS, Seed: seed}

	return desktop.Run(game.New(cfg, opts...), rc, logger)
}
