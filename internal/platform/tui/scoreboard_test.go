package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-collapse/internal/storage"
)

func TestLeaderboardLoad(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	var ids []int64
	for _, score := range []int{40, 90, 10, 70, 20, 50, 30} {
		id, err := store.SaveScore(storage.ScoreEntry{SessionID: "s", Board: "6x5c5m5p1", Score: score, MovesUsed: 5})
		if err != nil {
			t.Fatalf("SaveScore failed: %v", err)
		}
		ids = append(ids, id)
	}
	// Noise on another board.
	if _, err := store.SaveScore(storage.ScoreEntry{SessionID: "s", Board: "3x3c2m1p1", Score: 999, MovesUsed: 1}); err != nil {
		t.Fatalf("SaveScore failed: %v", err)
	}

	l := newLeaderboard()
	if err := l.load(store, "6x5c5m5p1", ids[3]); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if l.Len() != leaderboardSize {
		t.Fatalf("expected %d rows, got %d", leaderboardSize, l.Len())
	}
	if l.entries[0].Score != 90 || l.entries[leaderboardSize-1].Score != 30 {
		t.Errorf("unexpected order: first=%d last=%d", l.entries[0].Score, l.entries[leaderboardSize-1].Score)
	}
	if got := l.table.Cursor(); got != 1 {
		t.Errorf("expected highlighted row 1 (score 70), got %d", got)
	}
	if view := l.View(); !strings.Contains(view, "90") {
		t.Errorf("expected best score in view:\n%s", view)
	}
}

func TestLeaderboardEmpty(t *testing.T) {
	l := newLeaderboard()
	if err := l.load(nil, "6x5c5m5p1", 0); err != nil {
		t.Fatalf("load with nil store failed: %v", err)
	}
	if l.Len() != 0 {
		t.Errorf("expected no rows, got %d", l.Len())
	}
	if !strings.Contains(l.View(), "No scores recorded yet.") {
		t.Errorf("unexpected empty view: %q", l.View())
	}
}
