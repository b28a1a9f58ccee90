package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func runAt(id string, score int, at time.Time) Run {
	return Run{ID: id, Score: score, CreatedAt: at}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.LoadBestScore()
	if err != nil {
		t.Fatalf("LoadBestScore() on empty store failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 on empty store, got %d", best)
	}

	for _, score := range []int{12, 40, 7} {
		if err := store.SaveBestScore(score); err != nil {
			t.Fatalf("SaveBestScore(%d) failed: %v", score, err)
		}
	}

	best, err = store.LoadBestScore()
	if err != nil {
		t.Fatalf("LoadBestScore() failed: %v", err)
	}
	if best != 40 {
		t.Errorf("Expected best score 40, got %d", best)
	}
}

func TestStoreBestScoreSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveBestScore(33); err != nil {
		t.Fatalf("SaveBestScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if best, err := store.LoadBestScore(); err != nil || best != 33 {
		t.Errorf("LoadBestScore() = %d, %v, expected 33", best, err)
	}
}

func TestStoreTopRuns(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	runs := []Run{
		runAt("a", 100, base),
		runAt("b", 50, base.Add(time.Minute)),
		runAt("c", 200, base.Add(2*time.Minute)),
		runAt("d", 100, base.Add(3*time.Minute)),
	}
	if err := store.RecordRuns(runs); err != nil {
		t.Fatalf("RecordRuns() failed: %v", err)
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	wantIDs := []string{"c", "a", "d", "b"}
	if len(top) != len(wantIDs) {
		t.Fatalf("Expected %d runs, got %d", len(wantIDs), len(top))
	}
	for i, id := range wantIDs {
		if top[i].ID != id {
			t.Errorf("top[%d] = %s, expected %s", i, top[i].ID, id)
		}
	}
	if !top[0].CreatedAt.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("CreatedAt = %v, expected %v", top[0].CreatedAt, base.Add(2*time.Minute))
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	var runs []Run
	for i := 0; i < 20; i++ {
		runs = append(runs, NewRun(i*10))
	}
	if err := store.RecordRuns(runs); err != nil {
		t.Fatalf("RecordRuns() failed: %v", err)
	}

	top, err := store.TopRuns(5)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 5 {
		t.Errorf("Expected 5 runs with limit, got %d", len(top))
	}
	if top[0].Score != 190 {
		t.Errorf("Expected highest score 190, got %d", top[0].Score)
	}

	// Non-positive limits fall back to 10
	top, err = store.TopRuns(0)
	if err != nil {
		t.Fatalf("TopRuns(0) failed: %v", err)
	}
	if len(top) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(top))
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	if err := store.RecordRuns([]Run{
		runAt("old", 90, base),
		runAt("mid", 10, base.Add(time.Hour)),
		runAt("new", 50, base.Add(2*time.Hour)),
	}); err != nil {
		t.Fatalf("RecordRuns() failed: %v", err)
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].ID != "new" || recent[1].ID != "mid" {
		t.Errorf("unexpected recent runs: %+v", recent)
	}
}

func TestStoreRecordRunsAtomic(t *testing.T) {
	store := openTestStore(t)
	now := time.Now().UTC()

	if err := store.RecordRuns([]Run{runAt("dup", 1, now)}); err != nil {
		t.Fatalf("RecordRuns() failed: %v", err)
	}

	// The duplicate id fails the batch, so "fresh" must not land either.
	err := store.RecordRuns([]Run{runAt("fresh", 2, now), runAt("dup", 3, now)})
	if err == nil {
		t.Fatal("Expected duplicate id to fail")
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != "dup" {
		t.Errorf("Expected only the first run, got %+v", runs)
	}

	if err := store.RecordRuns(nil); err != nil {
		t.Errorf("RecordRuns(nil) failed: %v", err)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() on empty store failed: %v", err)
	}
	if stats.Runs != 0 || stats.HighScore != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("unexpected empty stats: %+v", stats)
	}

	last := time.Date(2026, 5, 2, 8, 30, 0, 0, time.UTC)
	if err := store.RecordRuns([]Run{
		runAt("a", 10, last.Add(-time.Hour)),
		runAt("b", 30, last),
		runAt("c", 20, last.Add(-2*time.Hour)),
	}); err != nil {
		t.Fatalf("RecordRuns() failed: %v", err)
	}

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 {
		t.Errorf("Expected 3 runs, got %d", stats.Runs)
	}
	if stats.HighScore != 30 {
		t.Errorf("Expected high score 30, got %d", stats.HighScore)
	}
	if stats.TotalScore != 60 {
		t.Errorf("Expected total 60, got %d", stats.TotalScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("Expected average 20, got %v", stats.AvgScore)
	}
	if !stats.LastPlayed.Equal(last) {
		t.Errorf("LastPlayed = %v, expected %v", stats.LastPlayed, last)
	}
}

func TestStoreClearRunsKeepsBest(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveBestScore(25); err != nil {
		t.Fatalf("SaveBestScore() failed: %v", err)
	}
	if err := store.RecordRuns([]Run{NewRun(25), NewRun(3)}); err != nil {
		t.Fatalf("RecordRuns() failed: %v", err)
	}

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(runs))
	}
	if best, _ := store.LoadBestScore(); best != 25 {
		t.Errorf("Expected best score to survive clear, got %d", best)
	}
}

func TestParseTime(t *testing.T) {
	want := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	cases := []struct {
		name string
		in   any
		want time.Time
	}{
		{"time", want, want},
		{"string", "2026-01-02 03:04:05", want},
		{"bytes", []byte("2026-01-02 03:04:05"), want},
		{"garbage", "yesterday", time.Time{}},
		{"nil", nil, time.Time{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseTime(tc.in); !got.Equal(tc.want) {
				t.Errorf("parseTime(%v) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}
}
