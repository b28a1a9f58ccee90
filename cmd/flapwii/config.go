package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flapwii/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective tuning table as YAML",
	Long: `Print the tuning table the game would run with, after applying
--config or the search path:

  --config <path>
  ~/.flapwii/configs/flapwii.yaml
  ./configs/flapwii.yaml
  built-in defaults

Examples:
  flapwii config
  flapwii config --config ./my-tuning.toml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	out, err := config.Encode(cfg)
	if err != nil {
		fail("encoding config: %v", err)
	}
	os.Stdout.Write(out)
}
