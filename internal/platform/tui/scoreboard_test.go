package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flapwii/internal/storage"
)

type fakeRuns struct {
	top    []storage.Run
	recent []storage.Run
	err    error
}

func (f fakeRuns) TopRuns(int) ([]storage.Run, error)    { return f.top, f.err }
func (f fakeRuns) RecentRuns(int) ([]storage.Run, error) { return f.recent, f.err }
func (f fakeRuns) Stats() (*storage.Stats, error) {
	return &storage.Stats{Runs: len(f.top), HighScore: 42, AvgScore: 21}, nil
}

func TestScoreboardRows(t *testing.T) {
	at := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	src := fakeRuns{
		top:    []storage.Run{{ID: "a", Score: 42, CreatedAt: at}, {ID: "b", Score: 7, CreatedAt: at}},
		recent: []storage.Run{{ID: "b", Score: 7, CreatedAt: at}},
	}
	m := NewScoreboardModel(src, 80, 24)

	rows := m.Rows()
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "#1" || rows[0][1] != "42" {
		t.Errorf("first row = %v", rows[0])
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("top view should be titled HIGH SCORES")
	}
	if !strings.Contains(m.View(), "best 42") {
		t.Error("view should show stats")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.Listing() != ViewRecent {
		t.Fatalf("tab should switch to recent runs")
	}
	if len(m.Rows()) != 1 || m.Rows()[0][1] != "7" {
		t.Errorf("recent rows = %v", m.Rows())
	}
	if !strings.Contains(m.View(), "RECENT RUNS") {
		t.Error("recent view should be titled RECENT RUNS")
	}
}

func TestScoreboardEmptyAndErrors(t *testing.T) {
	m := NewScoreboardModel(fakeRuns{}, 80, 24)
	if !strings.Contains(m.View(), "No runs recorded yet.") {
		t.Error("empty history should say so")
	}

	m = NewScoreboardModel(fakeRuns{err: errors.New("db locked")}, 80, 24)
	if !strings.Contains(m.View(), "db locked") {
		t.Error("load errors should be shown")
	}

	m = NewScoreboardModel(nil, 80, 24)
	if len(m.Rows()) != 0 {
		t.Error("no source means no rows")
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(fakeRuns{}, 80, 24)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit should quit the program")
	}
	if next.(ScoreboardModel).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("overlong text should be left alone, got %q", got)
	}
}
