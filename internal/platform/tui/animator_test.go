package tui

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-collapse/internal/config"
	"github.com/vovakirdan/tui-collapse/internal/grid"
	"github.com/vovakirdan/tui-collapse/internal/session"
)

// newTestSession returns a 3x3 session whose two bottom rows are color 0
// and whose top row is color 1.
func newTestSession(t *testing.T, moves int) *session.Controller {
	t.Helper()
	cfg := config.Config{Width: 3, Height: 3, ColorCount: 2, TotalMoves: moves, PointsPerBlock: 1}
	g, err := grid.FromRows(cfg.ColorCount,
		[]int{1, 1, 1},
		[]int{0, 0, 0},
		[]int{0, 0, 0},
	)
	if err != nil {
		t.Fatalf("FromRows failed: %v", err)
	}
	c, err := session.NewWithGrid(cfg, g, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("NewWithGrid failed: %v", err)
	}
	return c
}

func TestAnimatorCopiesBoard(t *testing.T) {
	c := newTestSession(t, 2)
	a := NewAnimator(c, 10)

	if a.Busy() {
		t.Error("new animator should be idle")
	}
	if a.Moves() != 2 || a.Score() != 0 {
		t.Errorf("expected moves 2 score 0, got %d/%d", a.Moves(), a.Score())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			p := grid.P(x, y)
			got, fresh := a.Cell(p)
			if got != c.Cell(p) || fresh {
				t.Errorf("cell %v: got %+v fresh=%v, want %+v", p, got, fresh, c.Cell(p))
			}
		}
	}
}

func TestAnimatorStagesResolution(t *testing.T) {
	c := newTestSession(t, 2)
	a := NewAnimator(c, 10) // removal pause 10 ticks, one tick per spawn

	if _, err := c.SelectBlock(0, 0); err != nil {
		t.Fatalf("SelectBlock failed: %v", err)
	}

	// Counters update at once, the board waits for ticks.
	if a.Score() != 6 || a.Moves() != 1 {
		t.Errorf("expected score 6 moves 1, got %d/%d", a.Score(), a.Moves())
	}
	if got, _ := a.Cell(grid.P(0, 0)); got != grid.Occupied(0) {
		t.Errorf("board changed before first tick: %+v", got)
	}

	a.Advance()
	if got, _ := a.Cell(grid.P(0, 0)); got.Filled {
		t.Error("removed block still shown after first tick")
	}
	if got, _ := a.Cell(grid.P(0, 2)); got != grid.Occupied(1) {
		t.Errorf("top block moved too early: %+v", got)
	}

	for i := 0; i < 10; i++ {
		a.Advance()
	}
	if got, _ := a.Cell(grid.P(0, 0)); got != grid.Occupied(1) {
		t.Errorf("expected top block to have fallen to the bottom, got %+v", got)
	}
	if got, _ := a.Cell(grid.P(0, 2)); got.Filled {
		t.Error("expected top row empty before spawns")
	}

	for i := 0; i < 6; i++ {
		if !a.Busy() {
			t.Fatalf("animator idle after %d spawn ticks", i)
		}
		a.Advance()
	}
	if a.Busy() {
		t.Error("expected animation to be finished")
	}

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			p := grid.P(x, y)
			got, fresh := a.Cell(p)
			if got != c.Cell(p) {
				t.Errorf("cell %v: shown %+v, session has %+v", p, got, c.Cell(p))
			}
			if wantFresh := y > 0; fresh != wantFresh {
				t.Errorf("cell %v: fresh=%v, want %v", p, fresh, wantFresh)
			}
		}
	}
}

func TestAnimatorFlush(t *testing.T) {
	c := newTestSession(t, 1)
	a := NewAnimator(c, 60)

	if _, err := c.SelectBlock(2, 2); err != nil {
		t.Fatalf("SelectBlock failed: %v", err)
	}
	if a.GameOverShown() {
		t.Error("game over shown before animation reached it")
	}

	a.Flush()
	if a.Busy() {
		t.Error("Flush should drain the queue")
	}
	if !a.GameOverShown() {
		t.Error("expected game over after flush")
	}
	if a.Score() != 3 {
		t.Errorf("expected score 3, got %d", a.Score())
	}

	c.Replay()
	if a.GameOverShown() || a.Moves() != 1 || a.Score() != 0 {
		t.Errorf("replay not reflected: gameOver=%v moves=%d score=%d", a.GameOverShown(), a.Moves(), a.Score())
	}
}

func TestAnimatorCellOutOfBounds(t *testing.T) {
	a := NewAnimator(newTestSession(t, 2), 60)
	if got, fresh := a.Cell(grid.P(3, 0)); got.Filled || fresh {
		t.Errorf("expected empty cell outside the board, got %+v", got)
	}
}

func TestAnimatorMinimumTimings(t *testing.T) {
	a := NewAnimator(newTestSession(t, 2), 1)
	if a.removalPause != 1 || a.spawnInterval != 1 {
		t.Errorf("expected timings clamped to 1, got %d/%d", a.removalPause, a.spawnInterval)
	}
}
