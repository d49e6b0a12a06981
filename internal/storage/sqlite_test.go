package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	// Save some scores
	if _, err := store.SaveScore("barrier", "alice", 100); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("barrier", "bob", 50); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("barrier", "carol", 200); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	if _, err := store.SaveScore("blockfall", "alice", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for barrier
	scores, err := store.TopScores("barrier", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[0].Player != "carol" {
		t.Errorf("Expected carol at 200 on top, got %s at %d", scores[0].Player, scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Retrieve top scores for blockfall
	blockfallScores, err := store.TopScores("blockfall", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(blockfallScores) != 1 {
		t.Errorf("Expected 1 blockfall score, got %d", len(blockfallScores))
	}
}

func TestStoreEmptyPlayerDefaults(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore("barrier", "   ", 10); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("barrier", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Player != DefaultPlayer {
		t.Errorf("Expected player %q, got %v", DefaultPlayer, scores)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("girders", "p", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("girders", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("barrier")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("barrier", "a", 100)
	store.SaveScore("barrier", "b", 300)
	store.SaveScore("barrier", "c", 200)

	high, err = store.HighScore("barrier")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreIsHighScore(t *testing.T) {
	store := openTestStore(t)

	// Empty table: any positive score qualifies
	ok, err := store.IsHighScore("minigolf", 10, 3)
	if err != nil {
		t.Fatalf("IsHighScore() failed: %v", err)
	}
	if !ok {
		t.Error("Any positive score should qualify on an empty table")
	}

	// Zero never qualifies
	ok, _ = store.IsHighScore("minigolf", 0, 3)
	if ok {
		t.Error("Zero score should never qualify")
	}

	store.SaveScore("minigolf", "a", 300)
	store.SaveScore("minigolf", "b", 200)
	store.SaveScore("minigolf", "c", 100)

	ok, _ = store.IsHighScore("minigolf", 150, 3)
	if !ok {
		t.Error("150 should displace the 100 entry in a top-3 table")
	}

	ok, _ = store.IsHighScore("minigolf", 50, 3)
	if ok {
		t.Error("50 should not enter a full top-3 table of higher scores")
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("barrier", "a", 100)
	store.SaveScore("barrier", "b", 200)
	store.SaveScore("blockfall", "c", 300)

	// Clear only barrier scores
	if err := store.ClearScores("barrier"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	barrierScores, _ := store.TopScores("barrier", 10)
	if len(barrierScores) != 0 {
		t.Errorf("Expected 0 barrier scores after clear, got %d", len(barrierScores))
	}

	blockfallScores, _ := store.TopScores("blockfall", 10)
	if len(blockfallScores) != 1 {
		t.Errorf("Blockfall scores should not be affected by clearing barrier")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	// Add many scores
	for i := 0; i < 20; i++ {
		store.SaveScore("girders", "p", i*10)
	}

	scores, err := store.AllScores("girders")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("barrier", "a", 100)
	store.SaveScore("barrier", "b", 300)

	stats, err := store.GetGameStats("barrier")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("TotalScore = %d, want 400", stats.TotalScore)
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

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
