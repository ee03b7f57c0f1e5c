package storage

import (
	"os"
	"path/filepath"
	"testing"
)

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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveScore("blocks", 1200, 2, 12); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("blocks", 500, 1, 5); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("blocks", 3600, 4, 31); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("blocks", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 3600 || scores[1].Score != 1200 || scores[2].Score != 500 {
		t.Errorf("Scores not in descending order: %v", scores)
	}

	// Level and lines ride along with each record
	if scores[0].Level != 4 || scores[0].Lines != 31 {
		t.Errorf("Top entry lost level/lines: %+v", scores[0])
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		store.SaveScore("blocks", (i+1)*100, 1, i)
	}

	scores, err := store.TopScores("blocks", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("blocks")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("blocks", 100, 1, 1)
	store.SaveScore("blocks", 300, 1, 3)
	store.SaveScore("blocks", 200, 1, 2)

	high, err = store.HighScore("blocks")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("blocks", 100, 1, 1)
	store.SaveScore("blocks", 200, 1, 2)
	store.SaveScore("other", 300, 1, 3)

	if err := store.ClearScores("blocks"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	blockScores, _ := store.TopScores("blocks", 10)
	if len(blockScores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(blockScores))
	}

	// Other game IDs are untouched
	otherScores, _ := store.TopScores("other", 10)
	if len(otherScores) != 1 {
		t.Errorf("Clearing one game should not affect another")
	}
}

func TestStoreAllScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 20; i++ {
		store.SaveScore("blocks", i*10, 1, i)
	}

	scores, err := store.AllScores("blocks")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("blocks", 100, 1, 2)
	store.SaveScore("blocks", 700, 2, 11)
	store.SaveScore("blocks", 400, 1, 7)

	stats, err := store.GetGameStats("blocks")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, want 3", stats.GamesCount)
	}
	if stats.HighScore != 700 {
		t.Errorf("HighScore = %d, want 700", stats.HighScore)
	}
	if stats.TotalLines != 20 {
		t.Errorf("TotalLines = %d, want 20", stats.TotalLines)
	}
	if stats.BestLevel != 2 {
		t.Errorf("BestLevel = %d, want 2", stats.BestLevel)
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
