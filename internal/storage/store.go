// Package storage persists the best score and the run history.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// GameID keys every record this package writes.
const GameID = "flapwii"

// ErrCorrupt is returned when a stored best score cannot be used.
var ErrCorrupt = errors.New("storage: corrupt best score")

// BestScoreStore loads and saves the persisted best score.
// LoadBestScore returns 0 alongside any error.
type BestScoreStore interface {
	LoadBestScore() (int, error)
	SaveBestScore(score int) error
}

// RunRecorder stores finished runs.
type RunRecorder interface {
	RecordRuns(runs []Run) error
}

// Run is one finished life.
type Run struct {
	ID        string
	Score     int
	CreatedAt time.Time
}

// NewRun stamps a finished life with a fresh id and the current time.
func NewRun(score int) Run {
	return Run{
		ID:        uuid.NewString(),
		Score:     score,
		CreatedAt: time.Now().UTC(),
	}
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
