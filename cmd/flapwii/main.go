// flapwii is Flapwii Bird, a one-button side-scroller, for the terminal.
//
// Usage:
//
//	flapwii                  - Play (same as "flapwii play")
//	flapwii play             - Play in this terminal
//	flapwii serve            - Start SSH server for remote play
//	flapwii scores           - Show the run history
//	flapwii config           - Print the effective tuning table as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gap placement
//	--config <path>       - Load a YAML or TOML tuning table
//	--store file|sqlite   - Where the best score lives (default: file)
//	--save <path>         - Best score file (default: ~/.flapwii/game.sav)
//	--db <path>           - Run history database (default: ~/.flapwii/flapwii.db)
//	--sounds <dir>        - Directory with sfx_*.wav assets
//	--mute                - Disable audio
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flapwii/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagStore    string
	flagSavePath string
	flagDBPath   string
	flagSounds   string
	flagMute     bool
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flapwii",
	Short: "Flapwii Bird - flap through the pipes in your terminal",
	Long: `Flapwii Bird is a one-button side-scroller. Press A to flap, dodge the
pipes, and beat your highscore.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  scores   - View the run history
  config   - Print the effective tuning table

Examples:
  flapwii
  flapwii play --seed 42 --mute
  flapwii serve --ssh :2222
  flapwii scores --recent
  flapwii config > ~/.flapwii/configs/flapwii.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML tuning table")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "file", "Best score store: file or sqlite")
	rootCmd.PersistentFlags().StringVar(&flagSavePath, "save", storage.DefaultSavePath, "Path to the best score file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultDBPath, "Path to the run history database")
	rootCmd.PersistentFlags().StringVar(&flagSounds, "sounds", "", "Directory with sfx_*.wav assets (synthesized if empty)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable audio")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
