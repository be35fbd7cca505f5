package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-swarm/internal/config"
	"github.com/vovakirdan/tui-swarm/internal/core"
	"github.com/vovakirdan/tui-swarm/internal/game"
	"github.com/vovakirdan/tui-swarm/internal/settings"
	"github.com/vovakirdan/tui-swarm/internal/storage"
)

// expandHome resolves a leading ~ against the home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// newLogger builds the logger from the global flags. Terminal modes own
// the screen, so logs go to a file unless "-" asks for stderr. The returned
// closer releases the file.
func newLogger(prefix string) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var out io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}
	if flagLogFile != "-" && flagLogFile != "" {
		path := expandHome(flagLogFile)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closer = f, f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// runtimeConfig sizes the simulation to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// loadPreferences opens the saved settings. Failures fall back to the
// defaults with a warning.
func loadPreferences(logger *log.Logger) *settings.Manager {
	prefs, err := settings.Open()
	if err != nil {
		logger.Warn("could not load settings", "error", err)
	}
	return prefs
}

// openStore opens the runs database. Play continues without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		logger.Warn("could not open runs database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// newGame assembles a game for the chosen difficulty.
func newGame(cfg config.SwarmConfig, preset config.DifficultyPreset, initials string,
	store *storage.Store, logger *log.Logger,
) *game.Game {
	opts := []game.Option{
		game.WithPreset(preset),
		game.WithInitials(initials),
		game.WithLogger(logger),
	}
	if store != nil {
		opts = append(opts, game.WithRecorder(store))
	}
	return game.New(cfg, opts...)
}
