package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-swarm/internal/core"
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

func run(id, difficulty string, score int) core.RunRecord {
	return core.RunRecord{
		ID:         id,
		Difficulty: difficulty,
		Initials:   "AAA",
		Score:      score,
		Kills:      score / 10,
		Survived:   float64(score) / 2,
		Seed:       42,
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for i, score := range []int{100, 50, 200} {
		if _, err := store.SaveRun(run(fmt.Sprintf("n%d", i), "normal", score)); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	if _, err := store.SaveRun(run("h0", "hard", 500)); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.TopRuns("normal", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	if runs[0].Score != 200 || runs[1].Score != 100 || runs[2].Score != 50 {
		t.Errorf("Runs not sorted descending: %v", runs)
	}
	if runs[0].Kills != 20 || runs[0].Survived != 100 || runs[0].Initials != "AAA" || runs[0].Seed != 42 {
		t.Errorf("Run fields not round-tripped: %+v", runs[0])
	}

	all, err := store.TopRuns("", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(all) != 4 || all[0].Difficulty != "hard" {
		t.Errorf("Expected 4 runs led by hard, got %v", all)
	}
}

func TestStoreDuplicateRunID(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(run("same", "normal", 10)); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun(run("same", "normal", 99)); err != nil {
		t.Fatalf("SaveRun() duplicate failed: %v", err)
	}

	r, err := store.RunByID("same")
	if err != nil || r == nil {
		t.Fatalf("RunByID() = %v, %v", r, err)
	}
	if r.Score != 10 {
		t.Errorf("Duplicate overwrote the run: score %d", r.Score)
	}

	if _, err := store.SaveRun(core.RunRecord{}); err == nil {
		t.Error("Expected error for run without id")
	}
}

func TestStoreRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	r, err := store.RunByID("nope")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if r != nil {
		t.Errorf("Expected nil for unknown run, got %+v", r)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(run(fmt.Sprintf("r%d", i), "normal", (i+1)*100))
	}

	runs, err := store.TopRuns("normal", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].RunID != "r4" {
		t.Errorf("Recent runs = %v", recent)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty store, got %d", high)
	}

	store.SaveRun(run("a", "normal", 100))
	store.SaveRun(run("b", "normal", 300))
	store.SaveRun(run("c", "easy", 900))

	high, err = store.HighScore("normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
	if overall, _ := store.HighScore(""); overall != 900 {
		t.Errorf("Expected overall high score of 900, got %d", overall)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(run("a", "normal", 100))
	store.SaveRun(run("b", "normal", 200))
	store.SaveRun(run("c", "hard", 300))

	if err := store.ClearRuns("normal"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	normal, _ := store.TopRuns("normal", 10)
	if len(normal) != 0 {
		t.Errorf("Expected 0 normal runs after clear, got %d", len(normal))
	}
	hard, _ := store.TopRuns("hard", 10)
	if len(hard) != 1 {
		t.Errorf("Hard runs should not be affected by clearing normal")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(run("a", "normal", 100))
	store.SaveRun(run("b", "normal", 300))
	store.SaveRun(run("c", "hard", 50))

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	n := stats["normal"]
	if n == nil {
		t.Fatal("Missing normal stats")
	}
	if n.Runs != 2 || n.HighScore != 300 || n.AvgScore != 200 || n.TotalKills != 40 || n.BestSurvival != 150 {
		t.Errorf("Normal stats = %+v", *n)
	}
	if stats["hard"] == nil || stats["hard"].Runs != 1 {
		t.Errorf("Hard stats = %+v", stats["hard"])
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
