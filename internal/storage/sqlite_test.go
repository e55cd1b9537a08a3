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
	dbPath := filepath.Join(tmpDir, "scores.db")

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

func TestStoreCreatesParentDirs(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "deep", "nested", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() should create parent directories: %v", err)
	}
	defer store.Close()
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("colordash", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	// The relaxed mode keeps a separate board
	if _, err := store.SaveScore("colordash_relaxed", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("colordash", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}

	relaxed, err := store.TopScores("colordash_relaxed", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(relaxed) != 1 {
		t.Errorf("Expected 1 relaxed score, got %d", len(relaxed))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("colordash", (i+1)*10)
	}

	scores, err := store.TopScores("colordash", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 50 || scores[1].Score != 40 || scores[2].Score != 30 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// Empty table: no scores means 0, not an error
	hs, err := store.HighScore("colordash")
	if err != nil {
		t.Fatalf("HighScore() on empty table failed: %v", err)
	}
	if hs != 0 {
		t.Errorf("Expected high score 0 with no rows, got %d", hs)
	}

	store.SaveScore("colordash", 7)
	store.SaveScore("colordash", 42)
	store.SaveScore("colordash", 13)

	hs, err = store.HighScore("colordash")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if hs != 42 {
		t.Errorf("Expected high score 42, got %d", hs)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("colordash", 10)
	store.SaveScore("colordash", 20)
	store.SaveScore("colordash_relaxed", 30)

	if err := store.ClearScores("colordash"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, err := store.AllScores("colordash")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("Expected no scores after clear, got %d", len(scores))
	}

	// Other games are untouched
	relaxed, err := store.AllScores("colordash_relaxed")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(relaxed) != 1 {
		t.Errorf("Clear must not touch other games, got %d scores", len(relaxed))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{10, 20, 30} {
		store.SaveScore("colordash", score)
	}

	stats, err := store.GetGameStats("colordash")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 3 {
		t.Errorf("Expected 3 games, got %d", stats.GamesCount)
	}
	if stats.HighScore != 30 {
		t.Errorf("Expected high score 30, got %d", stats.HighScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("Expected average 20, got %v", stats.AvgScore)
	}
	if stats.TotalScore != 60 {
		t.Errorf("Expected total 60, got %d", stats.TotalScore)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("Expected stats for 1 game, got %d", len(all))
	}
	if all["colordash"].HighScore != 30 {
		t.Errorf("Expected high score 30 in aggregate, got %d", all["colordash"].HighScore)
	}
}
