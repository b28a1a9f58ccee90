package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// DefaultSavePath is where the best score is kept unless told otherwise.
const DefaultSavePath = "~/.flapwii/game.sav"

// FileStore keeps the best score as ASCII decimal text in a single file.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store for path. The file need not exist yet.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		path = DefaultSavePath
	}
	expanded, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}
	return &FileStore{path: expanded}, nil
}

// Path returns the save file location.
func (f *FileStore) Path() string {
	return f.path
}

// LoadBestScore reads the stored best score.
func (f *FileStore) LoadBestScore() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.read()
}

func (f *FileStore) read() (int, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read save %s: %w", f.path, err)
	}
	text := strings.TrimSpace(string(data))
	score, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q in %s", ErrCorrupt, text, f.path)
	}
	if score < 0 {
		return 0, fmt.Errorf("%w: negative value %d in %s", ErrCorrupt, score, f.path)
	}
	return score, nil
}

// SaveBestScore writes score unless the file already holds a higher one.
// The write goes through a temporary file so a crash never leaves a torn save.
func (f *FileStore) SaveBestScore(score int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if current, err := f.read(); err == nil && current >= score {
		return nil
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".game.sav-*")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp save: %w", err)
	}
	_, werr := tmp.WriteString(strconv.Itoa(score))
	cerr := tmp.Close()
	if err := errors.Join(werr, cerr); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: cannot write save: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: cannot replace save %s: %w", f.path, err)
	}
	return nil
}
