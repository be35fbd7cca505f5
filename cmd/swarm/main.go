// swarm is a terminal arcade shooter: survive the swarm, collect power-ups,
// and fire back.
//
// Usage:
//
//	swarm play               - Play at your preferred difficulty
//	swarm menu               - Pick a difficulty from the launcher
//	swarm serve              - Start SSH server for remote play
//	swarm scores [diff]      - Show the best runs
//	swarm settings           - Show or change saved preferences
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.swarm/runs.db)
//	--log-level <level>  - debug, info, warn, error (default: info)
//	--log-file <path>    - Log destination (default: ~/.swarm/swarm.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "swarm",
	Short: "Swarm - survive the swarm in your terminal",
	Long: `Swarm is a terminal arcade shooter. Enemies spawn in waves and
formations and hunt you down; pick up shields, bombs, lightning and slow
fields, and fire your laser to thin the swarm.

Available commands:
  play      - Play directly at your preferred difficulty
  menu      - Launcher with difficulty picker and scoreboard
  serve     - Start SSH server for remote play
  scores    - View the best runs
  settings  - Show or change saved preferences

Examples:
  swarm play
  swarm play --difficulty hard
  swarm menu
  swarm serve --ssh :2222
  swarm scores normal`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.swarm/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.swarm/swarm.log", "Log file (\"-\" for stderr)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(settingsCmd)
}
