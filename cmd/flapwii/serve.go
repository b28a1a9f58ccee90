package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flapwii/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Flapwii Bird SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game. All sessions share the best score
and the run history; scores are saved when a session ends. Audio is not
sent over SSH.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.flapwii/host_key

Examples:
  flapwii serve                           # Listen on :23234 with auto-generated key
  flapwii serve --ssh :2222               # Listen on port 2222
  flapwii serve --host-key ./my_host_key  # Use specific host key
  flapwii serve --store sqlite            # Keep the best score in the database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	logger, err := newLogger(os.Stderr, "flapwii-ssh")
	if err != nil {
		fail("%v", err)
	}

	game, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	st, err := openStores(logger)
	if err != nil {
		fail("cannot open score storage: %v", err)
	}
	defer st.Close()

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		FPS:         flagFPS,
		Seed:        flagSeed,
		Game:        game,
		Best:        st.best,
		Runs:        st.runs,
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting Flapwii Bird SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		st.Close()
		fail("server: %v", err)
	}
}
