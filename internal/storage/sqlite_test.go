package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
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

func save(t *testing.T, store *Store, r Result) string {
	t.Helper()
	if r.Outcome == "" {
		r.Outcome = "topped_out"
	}
	id, err := store.SaveResult(r)
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	return id
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

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

	save(t, store, Result{GameID: "tetris", Score: 1200, Lines: 10})
	save(t, store, Result{GameID: "tetris", Score: 400, Lines: 4})
	save(t, store, Result{GameID: "tetris", Score: 8000, Lines: 31})
	save(t, store, Result{GameID: "tetris_sprint", Score: 500, Lines: 40, Outcome: "cleared"})

	scores, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{8000, 1200, 400}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d].Score = %d, expected %d", i, scores[i].Score, w)
		}
	}
	if scores[0].Lines != 31 {
		t.Errorf("scores[0].Lines = %d, expected 31", scores[0].Lines)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	sprint, err := store.TopScores("tetris_sprint", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(sprint) != 1 {
		t.Errorf("Expected 1 sprint score, got %d", len(sprint))
	}
}

func TestStoreRunIDs(t *testing.T) {
	store := openTestStore(t)

	generated := save(t, store, Result{GameID: "tetris", Score: 100})
	if _, err := uuid.Parse(generated); err != nil {
		t.Errorf("generated run id %q is not a UUID: %v", generated, err)
	}

	fixed := uuid.NewString()
	if got := save(t, store, Result{RunID: fixed, GameID: "tetris", Score: 100}); got != fixed {
		t.Errorf("SaveResult() = %q, expected caller run id %q", got, fixed)
	}

	if _, err := store.SaveResult(Result{RunID: fixed, GameID: "tetris", Outcome: "exited"}); err == nil {
		t.Error("duplicate run id should be rejected")
	}
}

func TestStoreResultByRunID(t *testing.T) {
	store := openTestStore(t)

	id := save(t, store, Result{
		GameID:  "tetris",
		Score:   2760,
		Lines:   14,
		Level:   1,
		Frames:  7200,
		Clears:  [4]int{3, 1, 1, 1},
		Outcome: "topped_out",
	})

	r, err := store.ResultByRunID(id)
	if err != nil {
		t.Fatalf("ResultByRunID() failed: %v", err)
	}
	if r == nil {
		t.Fatal("ResultByRunID() returned nil for a saved run")
	}
	if r.Score != 2760 || r.Frames != 7200 || r.Clears != [4]int{3, 1, 1, 1} {
		t.Errorf("ResultByRunID() = %+v", r)
	}

	missing, err := store.ResultByRunID(uuid.NewString())
	if err != nil || missing != nil {
		t.Errorf("unknown run id: got %+v, %v; expected nil, nil", missing, err)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		save(t, store, Result{GameID: "test", Score: (i + 1) * 100})
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreFastestRuns(t *testing.T) {
	store := openTestStore(t)

	save(t, store, Result{GameID: "tetris_sprint", Lines: 40, Frames: 9000, Outcome: "cleared"})
	save(t, store, Result{GameID: "tetris_sprint", Lines: 40, Frames: 6100, Outcome: "cleared"})
	save(t, store, Result{GameID: "tetris_sprint", Lines: 12, Frames: 1000, Outcome: "topped_out"})

	runs, err := store.FastestRuns("tetris_sprint", 10)
	if err != nil {
		t.Fatalf("FastestRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 finished runs, got %d", len(runs))
	}
	if runs[0].Frames != 6100 || runs[1].Frames != 9000 {
		t.Errorf("runs not ordered by time: %d, %d", runs[0].Frames, runs[1].Frames)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	save(t, store, Result{GameID: "tetris", Score: 100})
	save(t, store, Result{GameID: "tetris", Score: 300})
	save(t, store, Result{GameID: "tetris", Score: 200})

	high, err = store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	save(t, store, Result{GameID: "tetris", Score: 100})
	save(t, store, Result{GameID: "tetris", Score: 200})
	save(t, store, Result{GameID: "tetris_sprint", Score: 300})

	if err := store.ClearScores("tetris"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	marathon, _ := store.TopScores("tetris", 10)
	if len(marathon) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(marathon))
	}

	sprint, _ := store.TopScores("tetris_sprint", 10)
	if len(sprint) != 1 {
		t.Errorf("Sprint scores should not be affected by clearing marathon")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	save(t, store, Result{GameID: "tetris", Score: 100, Lines: 2})
	save(t, store, Result{GameID: "tetris", Score: 300, Lines: 8, Clears: [4]int{0, 0, 0, 2}})
	save(t, store, Result{GameID: "tetris_sprint", Score: 50, Lines: 40, Outcome: "cleared"})

	stats, err := store.GetGameStats("tetris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("GetGameStats() = %+v", stats)
	}
	if stats.TotalLines != 10 || stats.Tetrises != 2 {
		t.Errorf("TotalLines = %d, Tetrises = %d; expected 10, 2", stats.TotalLines, stats.Tetrises)
	}

	empty, err := store.GetGameStats("nothing")
	if err != nil {
		t.Fatalf("GetGameStats() on empty game failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["tetris_sprint"].TotalLines != 40 {
		t.Errorf("GetAllGamesStats() = %v", all)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
