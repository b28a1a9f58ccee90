package tui

import (
	"errors"
	"io"
	"io/fs"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flapwii/internal/storage"
)

// Journal buffers finished runs in memory and persists them, along with the
// best score, when the owning program exits. Nothing touches disk mid-frame.
type Journal struct {
	mu      sync.Mutex
	best    storage.BestScoreStore
	runs    storage.RunRecorder
	logger  *log.Logger
	pending []storage.Run
	closed  bool
}

// NewJournal creates a journal. Either store may be nil.
func NewJournal(best storage.BestScoreStore, runs storage.RunRecorder, logger *log.Logger) *Journal {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Journal{best: best, runs: runs, logger: logger}
}

// LoadBest returns the persisted best score. Load failures are logged and
// read as 0; a missing save is the normal first-run case.
func (j *Journal) LoadBest() int {
	if j.best == nil {
		return 0
	}
	best, err := j.best.LoadBestScore()
	switch {
	case err == nil:
		return best
	case errors.Is(err, fs.ErrNotExist):
		j.logger.Debug("no saved best score yet", "err", err)
	default:
		j.logger.Warn("could not load best score", "err", err)
	}
	return 0
}

// Record buffers one finished life. Records after Close are dropped.
func (j *Journal) Record(score int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.closed {
		return
	}
	j.pending = append(j.pending, storage.NewRun(score))
}

// Pending returns the number of buffered runs.
func (j *Journal) Pending() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.pending)
}

// Closed reports whether Close has run.
func (j *Journal) Closed() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.closed
}

// Close saves best and flushes the buffered runs. Only the first call writes.
func (j *Journal) Close(best int) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.closed {
		return nil
	}
	j.closed = true

	var errs []error
	if j.best != nil {
		if err := j.best.SaveBestScore(best); err != nil {
			errs = append(errs, err)
		}
	}
	if j.runs != nil && len(j.pending) > 0 {
		if err := j.runs.RecordRuns(j.pending); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		j.logger.Debug("scores saved", "best", best, "runs", len(j.pending))
	}
	j.pending = nil
	return errors.Join(errs...)
}
