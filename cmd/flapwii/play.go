package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flapwii/internal/audio"
	"github.com/vovakirdan/flapwii/internal/core"
	"github.com/vovakirdan/flapwii/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Flapwii Bird",
	Long: `Start playing in this terminal.

Controls:
  Space/A/Up/Click - Flap (start from the menu)
  Mouse            - Move the menu cursor
  ?                - Toggle key help
  Q/Esc/Ctrl+C     - Quit

The best score is saved when you quit. Logs go to ~/.flapwii/flapwii.log.

Examples:
  flapwii play
  flapwii play --seed 42
  flapwii play --sounds ./assets --fps 30
  flapwii play --config ./my-tuning.toml --store sqlite`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	if flagFPS <= 0 {
		fail("--fps must be positive, got %d", flagFPS)
	}

	logFile, err := openLogFile()
	if err != nil {
		fail("%v", err)
	}
	defer logFile.Close()

	logger, err := newLogger(logFile, "flapwii")
	if err != nil {
		fail("%v", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	// Get terminal size
	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW, rt.ScreenH = w, h
	}
	rt.TickRate = flagFPS
	rt.Seed = flagSeed

	st, err := openStores(logger)
	if err != nil {
		fail("cannot open score storage: %v", err)
	}
	defer st.Close()

	player, closeAudio := audio.Open(flagSounds, flagMute, logger)
	defer closeAudio()

	logger.Info("starting", "fps", rt.TickRate, "seed", rt.Seed, "store", flagStore)
	err = tui.Play(tui.Options{
		Config:  cfg,
		Runtime: rt,
		Journal: tui.NewJournal(st.best, st.runs, logger),
		Player:  player,
		Logger:  logger,
	})
	if err != nil {
		logger.Error("game exited with error", "err", err)
		closeAudio()
		st.Close()
		fail("%v", err)
	}
	logger.Info("bye")
}
