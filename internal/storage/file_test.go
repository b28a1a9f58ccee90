package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	fs, err := NewFileStore(filepath.Join(t.TempDir(), "save", "game.sav"))
	if err != nil {
		t.Fatalf("NewFileStore() failed: %v", err)
	}
	return fs
}

func TestFileStoreMissing(t *testing.T) {
	fs := newTestFileStore(t)

	best, err := fs.LoadBestScore()
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected a not-exist error, got %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for a missing save, got %d", best)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	fs := newTestFileStore(t)

	if err := fs.SaveBestScore(17); err != nil {
		t.Fatalf("SaveBestScore() failed: %v", err)
	}

	data, err := os.ReadFile(fs.Path())
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if string(data) != "17" {
		t.Errorf("Expected ASCII decimal content, got %q", data)
	}

	best, err := fs.LoadBestScore()
	if err != nil || best != 17 {
		t.Errorf("LoadBestScore() = %d, %v, expected 17", best, err)
	}
}

func TestFileStoreNeverLowers(t *testing.T) {
	fs := newTestFileStore(t)

	for _, score := range []int{5, 30, 12, 0} {
		if err := fs.SaveBestScore(score); err != nil {
			t.Fatalf("SaveBestScore(%d) failed: %v", score, err)
		}
	}
	if best, _ := fs.LoadBestScore(); best != 30 {
		t.Errorf("Expected 30, got %d", best)
	}
}

func TestFileStoreCorrupt(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"text", "banana"},
		{"negative", "-4"},
		{"empty", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fs := newTestFileStore(t)
			if err := os.MkdirAll(filepath.Dir(fs.Path()), 0o755); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(fs.Path(), []byte(tc.content), 0o600); err != nil {
				t.Fatal(err)
			}

			best, err := fs.LoadBestScore()
			if !errors.Is(err, ErrCorrupt) {
				t.Errorf("Expected ErrCorrupt, got %v", err)
			}
			if best != 0 {
				t.Errorf("Expected 0 for corrupt save, got %d", best)
			}

			// A corrupt save is overwritten by the next save.
			if err := fs.SaveBestScore(3); err != nil {
				t.Fatalf("SaveBestScore() failed: %v", err)
			}
			if best, err := fs.LoadBestScore(); err != nil || best != 3 {
				t.Errorf("LoadBestScore() = %d, %v, expected 3", best, err)
			}
		})
	}
}

func TestFileStoreTrimsWhitespace(t *testing.T) {
	fs := newTestFileStore(t)
	if err := os.MkdirAll(filepath.Dir(fs.Path()), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(fs.Path(), []byte("42\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if best, err := fs.LoadBestScore(); err != nil || best != 42 {
		t.Errorf("LoadBestScore() = %d, %v, expected 42", best, err)
	}
}

func TestFileStoreConcurrentSaves(t *testing.T) {
	fs := newTestFileStore(t)

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			if err := fs.SaveBestScore(score); err != nil {
				t.Errorf("SaveBestScore(%d) failed: %v", score, err)
			}
		}(i)
	}
	wg.Wait()

	if best, _ := fs.LoadBestScore(); best != 20 {
		t.Errorf("Expected 20 after concurrent saves, got %d", best)
	}

	entries, err := os.ReadDir(filepath.Dir(fs.Path()))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected only the save file, found %d entries", len(entries))
	}
}

func TestNewRun(t *testing.T) {
	a, b := NewRun(4), NewRun(4)
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("Expected unique ids, got %q and %q", a.ID, b.ID)
	}
	if a.Score != 4 || a.CreatedAt.IsZero() {
		t.Errorf("unexpected run: %+v", a)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandHome("~/.flapwii/game.sav")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if !strings.HasPrefix(got, home) {
		t.Errorf("Expected %q to start with %q", got, home)
	}

	if got, _ := ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("absolute path changed: %q", got)
	}
}
