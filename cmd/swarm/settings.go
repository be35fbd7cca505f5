package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-swarm/internal/config"
	"github.com/vovakirdan/tui-swarm/internal/settings"
)

var (
	flagSetDifficulty string
	flagSetInitials   string
	flagDumpConfig    bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change saved preferences",
	Long: `Show the saved preferences, or change them with flags.

Preferences are stored per user and used by 'swarm play' and 'swarm menu'
when no flag overrides them.

Examples:
  swarm settings
  swarm settings --difficulty hard
  swarm settings --initials ACE
  swarm settings --dump > ~/.swarm/configs/swarm.yaml`,
	Args: cobra.NoArgs,
	Run:  runSettings,
}

func init() {
	settingsCmd.Flags().StringVar(&flagSetDifficulty, "difficulty", "", "Preferred difficulty: easy, normal, hard, fixed")
	settingsCmd.Flags().StringVar(&flagSetInitials, "initials", "", "Initials stored with your runs (1-3 letters)")
	settingsCmd.Flags().BoolVar(&flagDumpConfig, "dump", false, "Print the default game config as YAML and exit")
}

func runSettings(_ *cobra.Command, _ []string) {
	if flagDumpConfig {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	prefs, err := settings.Open()
	if err != nil {
		log.Warn("could not load settings, showing defaults", "error", err)
	}

	if flagSetDifficulty != "" || flagSetInitials != "" {
		if err := prefs.SetDifficulty(flagSetDifficulty); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := prefs.SetInitials(flagSetInitials); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := prefs.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Settings saved.")
	}

	p := prefs.Preferences()
	fmt.Printf("  difficulty: %s\n", p.Difficulty)
	fmt.Printf("  initials:   %s\n", p.Initials)
}
