package tui

import (
	"fmt"
	"io/fs"

	"github.com/vovakirdan/flapwii/internal/audio"
	"github.com/vovakirdan/flapwii/internal/storage"
)

type recordingPlayer struct {
	played []audio.Sound
}

func (r *recordingPlayer) Play(s audio.Sound) {
	r.played = append(r.played, s)
}

func (r *recordingPlayer) count(s audio.Sound) int {
	n := 0
	for _, p := range r.played {
		if p == s {
			n++
		}
	}
	return n
}

// memoryStore is a BestScoreStore and RunRecorder kept in memory.
type memoryStore struct {
	best    int
	has     bool
	loadErr error
	saveErr error
	saves   int
	runs    []storage.Run
	batches int
}

func (m *memoryStore) LoadBestScore() (int, error) {
	if m.loadErr != nil {
		return 0, m.loadErr
	}
	if !m.has {
		return 0, fmt.Errorf("memory: %w", fs.ErrNotExist)
	}
	return m.best, nil
}

func (m *memoryStore) SaveBestScore(score int) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	if !m.has || score > m.best {
		m.best = score
	}
	m.has = true
	return nil
}

func (m *memoryStore) RecordRuns(runs []storage.Run) error {
	m.batches++
	m.runs = append(m.runs, runs...)
	return nil
}
