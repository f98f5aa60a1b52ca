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

func TestStoreSaveAndTopResults(t *testing.T) {
	store := openTestStore(t)

	results := []Result{
		{Player: "ann", FoodEaten: 4, Outcome: "lost", Ticks: 120, Rows: 40, Cols: 50},
		{Player: "bob", FoodEaten: 9, Outcome: "lost", Ticks: 300, Rows: 40, Cols: 50},
		{Player: "ann", FoodEaten: 9, Outcome: "won", Ticks: 410, Rows: 40, Cols: 50},
		{Player: "cid", FoodEaten: 1, Outcome: "lost", Ticks: 20, Rows: 20, Cols: 20},
	}
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	top, err := store.TopResults(3)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(top))
	}

	// Ties keep insertion order.
	if top[0].Player != "bob" || top[1].Player != "ann" || top[2].FoodEaten != 4 {
		t.Errorf("Unexpected ordering: %+v", top)
	}
	if top[1].Outcome != "won" || top[1].Ticks != 410 {
		t.Errorf("Fields not round-tripped: %+v", top[1])
	}
	for _, r := range top {
		if r.SessionID == "" {
			t.Error("SaveResult() should generate a session ID")
		}
		if r.CreatedAt.IsZero() {
			t.Error("CreatedAt should be populated")
		}
	}
}

func TestStoreDuplicateSessionRejected(t *testing.T) {
	store := openTestStore(t)

	r := Result{SessionID: "abc", FoodEaten: 2, Outcome: "lost", Rows: 10, Cols: 10}
	if _, err := store.SaveResult(r); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if _, err := store.SaveResult(r); err == nil {
		t.Error("Saving the same session twice should fail")
	}

	top, err := store.TopResults(10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(top) != 1 || top[0].SessionID != "abc" || top[0].FoodEaten != 2 {
		t.Errorf("TopResults() = %+v, expected the single first save", top)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No results yet
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty store, got %d", high)
	}

	for _, food := range []int{3, 11, 7} {
		store.SaveResult(Result{FoodEaten: food, Outcome: "lost", Rows: 40, Cols: 50})
	}

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 11 {
		t.Errorf("Expected high score of 11, got %d", high)
	}
}

func TestStorePlayerResults(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveResult(Result{Player: "ann", FoodEaten: i, Outcome: "lost", Rows: 40, Cols: 50})
	}
	store.SaveResult(Result{Player: "bob", FoodEaten: 50, Outcome: "lost", Rows: 40, Cols: 50})

	results, err := store.PlayerResults("ann", 3)
	if err != nil {
		t.Fatalf("PlayerResults() failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
	// Most recent first
	if results[0].FoodEaten != 4 {
		t.Errorf("Expected newest result first, got %+v", results[0])
	}
	for _, r := range results {
		if r.Player != "ann" {
			t.Errorf("Unexpected player %q", r.Player)
		}
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Games != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveResult(Result{FoodEaten: 2, Outcome: "lost", Rows: 40, Cols: 50})
	store.SaveResult(Result{FoodEaten: 6, Outcome: "won", Rows: 40, Cols: 50})
	store.SaveResult(Result{FoodEaten: 4, Outcome: "lost", Rows: 40, Cols: 50})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Games != 3 {
		t.Errorf("Games = %d, expected 3", stats.Games)
	}
	if stats.Wins != 1 {
		t.Errorf("Wins = %d, expected 1", stats.Wins)
	}
	if stats.BestFood != 6 {
		t.Errorf("BestFood = %d, expected 6", stats.BestFood)
	}
	if stats.TotalFood != 12 {
		t.Errorf("TotalFood = %d, expected 12", stats.TotalFood)
	}
	if stats.AvgFood != 4 {
		t.Errorf("AvgFood = %v, expected 4", stats.AvgFood)
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{FoodEaten: 1, Outcome: "lost", Rows: 40, Cols: 50})
	store.SaveResult(Result{FoodEaten: 2, Outcome: "lost", Rows: 40, Cols: 50})

	if err := store.ClearResults(); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	top, _ := store.TopResults(10)
	if len(top) != 0 {
		t.Errorf("Expected 0 results after clear, got %d", len(top))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
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
