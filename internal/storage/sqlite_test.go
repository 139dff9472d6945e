package storage

import (
	"os"
	"path/filepath"
	"testing"
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

func TestStoreOpenCreatesFile(t *testing.T) {
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveResult("xonix", 45, 45.2, OutcomeLost)
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if _, err := store.SaveResult("xonix", 78, 78.3, OutcomeWon); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if _, err := store.SaveResult("xonix", 12, 12.0, OutcomeLost); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	// Different game keeps its own ladder
	if _, err := store.SaveResult("other", 99, 99.9, OutcomeWon); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	results, err := store.TopResults("xonix", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	// Ordered by claimed percentage descending
	if results[0].Percent != 78.3 || results[1].Percent != 45.2 || results[2].Percent != 12.0 {
		t.Errorf("Results not in expected order: %v", results)
	}
	if results[0].Outcome != OutcomeWon || results[0].Score != 78 {
		t.Errorf("Top result = %+v, expected the winning run", results[0])
	}
}

func TestStoreTopResultsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveResult("xonix", (i+1)*10, float64((i+1)*10), OutcomeLost)
	}

	results, err := store.TopResults("xonix", 3)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("Expected 3 results with limit, got %d", len(results))
	}
	if results[0].Score != 50 || results[1].Score != 40 || results[2].Score != 30 {
		t.Errorf("Results not in expected order: %v", results)
	}
}

func TestStoreHighScoreAndBestPercent(t *testing.T) {
	store := openTestStore(t)

	// Empty game
	high, err := store.HighScore("xonix")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}
	best, err := store.BestPercent("xonix")
	if err != nil {
		t.Fatalf("BestPercent() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best percent of 0 for empty game, got %v", best)
	}

	store.SaveResult("xonix", 30, 30.4, OutcomeLost)
	store.SaveResult("xonix", 81, 80.6, OutcomeWon)
	store.SaveResult("xonix", 55, 55.0, OutcomeLost)

	high, err = store.HighScore("xonix")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 81 {
		t.Errorf("Expected high score of 81, got %d", high)
	}

	best, err = store.BestPercent("xonix")
	if err != nil {
		t.Fatalf("BestPercent() failed: %v", err)
	}
	if best != 80.6 {
		t.Errorf("Expected best percent of 80.6, got %v", best)
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult("xonix", 10, 10, OutcomeLost)
	store.SaveResult("xonix", 20, 20, OutcomeLost)
	store.SaveResult("other", 30, 30, OutcomeLost)

	if err := store.ClearResults("xonix"); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	results, _ := store.TopResults("xonix", 10)
	if len(results) != 0 {
		t.Errorf("Expected 0 results after clear, got %d", len(results))
	}

	other, _ := store.TopResults("other", 10)
	if len(other) != 1 {
		t.Errorf("Other game's results should not be affected by the clear")
	}
}

func TestStoreAllResults(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveResult("xonix", i, float64(i), OutcomeLost)
	}

	results, err := store.AllResults("xonix")
	if err != nil {
		t.Fatalf("AllResults() failed: %v", err)
	}

	if len(results) != 20 {
		t.Errorf("Expected 20 results, got %d", len(results))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult("xonix", 80, 79.5, OutcomeWon)
	store.SaveResult("xonix", 40, 40.5, OutcomeLost)
	store.SaveResult("xonix", 90, 90.0, OutcomeWon)

	stats, err := store.GetGameStats("xonix")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, expected 3", stats.GamesCount)
	}
	if stats.Wins != 2 {
		t.Errorf("Wins = %d, expected 2", stats.Wins)
	}
	if stats.HighScore != 90 {
		t.Errorf("HighScore = %d, expected 90", stats.HighScore)
	}
	if stats.BestPercent != 90.0 {
		t.Errorf("BestPercent = %v, expected 90.0", stats.BestPercent)
	}
	want := (79.5 + 40.5 + 90.0) / 3
	if diff := stats.AvgPercent - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("AvgPercent = %v, expected %v", stats.AvgPercent, want)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set after saving results")
	}
}

func TestStoreGameStatsEmpty(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("xonix")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 0 || stats.Wins != 0 || stats.HighScore != 0 || stats.BestPercent != 0 {
		t.Errorf("Empty game stats = %+v, expected zeros", stats)
	}
	if !stats.LastPlayed.IsZero() {
		t.Errorf("LastPlayed = %v for empty game, expected zero time", stats.LastPlayed)
	}
}
