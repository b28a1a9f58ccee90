package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flapwii/internal/config"
	"github.com/vovakirdan/flapwii/internal/storage"
)

// DefaultLogPath is where local play logs go; stderr belongs to the game.
const DefaultLogPath = "~/.flapwii/flapwii.log"

// newLogger builds the process logger at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// openLogFile opens the play log for appending, creating its directory.
func openLogFile() (*os.File, error) {
	path, err := storage.ExpandHome(DefaultLogPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}

// loadConfig loads the tuning table named by --config, or the search path.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("cannot load config: %w", err)
	}
	return cfg, nil
}

// stores holds the persistence backends picked by --store.
type stores struct {
	best storage.BestScoreStore
	runs storage.RunRecorder
	db   *storage.Store
}

func (s stores) Close() {
	if s.db != nil {
		s.db.Close()
	}
}

// openStores opens the best score store and, when available, the run history.
// In file mode a broken database only disables the history.
func openStores(logger *log.Logger) (stores, error) {
	switch flagStore {
	case "sqlite":
		db, err := storage.Open(flagDBPath)
		if err != nil {
			return stores{}, err
		}
		return stores{best: db, runs: db, db: db}, nil

	case "file":
		fs, err := storage.NewFileStore(flagSavePath)
		if err != nil {
			return stores{}, err
		}
		s := stores{best: fs}
		db, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("run history disabled", "db", flagDBPath, "err", err)
			return s, nil
		}
		s.runs, s.db = db, db
		return s, nil
	}
	return stores{}, fmt.Errorf("unknown --store %q (want file or sqlite)", flagStore)
}
