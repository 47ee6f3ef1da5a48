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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

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

	entries := []ScoreEntry{
		{SessionID: "a", Board: "6x5c5m5p1", Score: 12, MovesUsed: 5},
		{SessionID: "b", Board: "6x5c5m5p1", Score: 30, MovesUsed: 5},
		{SessionID: "c", Board: "6x5c5m5p1", Score: 7, MovesUsed: 5},
		{SessionID: "d", Board: "3x3c1m1p1", Score: 9, MovesUsed: 1},
	}
	for _, e := range entries {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("6x5c5m5p1", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	wantOrder := []string{"b", "a", "c"}
	for i, sid := range wantOrder {
		if scores[i].SessionID != sid {
			t.Errorf("rank %d: expected session %s, got %s", i+1, sid, scores[i].SessionID)
		}
	}
	if scores[0].Score != 30 || scores[0].MovesUsed != 5 {
		t.Errorf("unexpected top entry: %+v", scores[0])
	}

	other, err := store.TopScores("3x3c1m1p1", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 || other[0].Score != 9 {
		t.Errorf("boards should be kept apart, got %+v", other)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.SaveScore(ScoreEntry{SessionID: "s", Board: "b", Score: i}); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("b", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 || scores[0].Score != 14 {
		t.Errorf("expected 5 scores topped by 14, got %+v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("b")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty board history, got %d", high)
	}

	for _, s := range []int{4, 40, 19} {
		if _, err := store.SaveScore(ScoreEntry{SessionID: "s", Board: "b", Score: s}); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	high, err = store.HighScore("b")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 40 {
		t.Errorf("Expected high score 40, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(ScoreEntry{SessionID: "s", Board: "keep", Score: 1})
	store.SaveScore(ScoreEntry{SessionID: "s", Board: "drop", Score: 2})

	if err := store.ClearScores("drop"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	dropped, _ := store.TopScores("drop", 10)
	kept, _ := store.TopScores("keep", 10)
	if len(dropped) != 0 || len(kept) != 1 {
		t.Errorf("expected drop cleared and keep intact, got %d/%d", len(dropped), len(kept))
	}
}
