package tui

import (
	"github.com/vovakirdan/tui-collapse/internal/grid"
	"github.com/vovakirdan/tui-collapse/internal/session"
)

// step is one staged change to the displayed board.
type step struct {
	delay int // Ticks to wait before applying
	apply func()
}

// Animator keeps the board as shown to the player and replays session
// deltas onto it over several ticks. The session itself resolves instantly.
type Animator struct {
	w, h  int
	cells []grid.Cell
	fresh []bool // Spawned since the last selection, drawn highlighted

	score    int
	moves    int
	gameOver bool

	queue []step

	removalPause  int // Ticks between removal and falling
	spawnInterval int // Ticks between two spawned blocks
}

var _ session.Observer = (*Animator)(nil)

// NewAnimator copies the current board of c and subscribes to it.
// Timings follow the tick rate: one second after removal, a tenth of a
// second per spawned block.
func NewAnimator(c *session.Controller, tickRate int) *Animator {
	cfg := c.Config()
	a := &Animator{
		w:             cfg.Width,
		h:             cfg.Height,
		cells:         make([]grid.Cell, cfg.Width*cfg.Height),
		fresh:         make([]bool, cfg.Width*cfg.Height),
		removalPause:  max(tickRate, 1),
		spawnInterval: max(tickRate/10, 1),
	}
	for y := 0; y < a.h; y++ {
		for x := 0; x < a.w; x++ {
			a.cells[a.index(grid.P(x, y))] = c.Cell(grid.P(x, y))
		}
	}
	c.Subscribe(a)
	return a
}

func (a *Animator) index(p grid.Pos) int {
	return p.Y*a.w + p.X
}

func (a *Animator) push(delay int, apply func()) {
	a.queue = append(a.queue, step{delay: delay, apply: apply})
}

// Advance moves the animation forward by one tick and applies every step
// that became due.
func (a *Animator) Advance() {
	if len(a.queue) == 0 {
		return
	}
	if a.queue[0].delay > 0 {
		a.queue[0].delay--
	}
	for len(a.queue) > 0 && a.queue[0].delay == 0 {
		s := a.queue[0]
		a.queue = a.queue[1:]
		s.apply()
	}
}

// Flush applies all pending steps immediately.
func (a *Animator) Flush() {
	for len(a.queue) > 0 {
		s := a.queue[0]
		a.queue = a.queue[1:]
		s.apply()
	}
}

// Busy reports whether staged changes are still pending.
func (a *Animator) Busy() bool {
	return len(a.queue) > 0
}

// Cell returns the displayed cell at p and whether it was just spawned.
func (a *Animator) Cell(p grid.Pos) (grid.Cell, bool) {
	if p.X < 0 || p.X >= a.w || p.Y < 0 || p.Y >= a.h {
		return grid.Empty(), false
	}
	i := a.index(p)
	return a.cells[i], a.fresh[i]
}

// Score returns the displayed score.
func (a *Animator) Score() int { return a.score }

// Moves returns the displayed moves remaining.
func (a *Animator) Moves() int { return a.moves }

// GameOverShown reports whether the game-over notice has been reached.
func (a *Animator) GameOverShown() bool { return a.gameOver }

func (a *Animator) ScoreChanged(score int) {
	a.score = score
}

func (a *Animator) MovesChanged(moves int) {
	a.moves = moves
	if moves > 0 {
		a.gameOver = false
	}
}

func (a *Animator) GameOver() {
	a.push(0, func() { a.gameOver = true })
}

func (a *Animator) BlocksRemoved(positions []grid.Pos) {
	a.push(0, func() {
		clear(a.fresh)
		for _, p := range positions {
			a.cells[a.index(p)] = grid.Empty()
		}
	})
}

func (a *Animator) BlocksFell(moves []grid.Move) {
	a.push(a.removalPause, func() {
		for _, m := range moves {
			from, to := a.index(m.From), a.index(m.To)
			a.cells[to] = a.cells[from]
			a.cells[from] = grid.Empty()
		}
	})
}

func (a *Animator) BlocksSpawned(spawns []grid.Spawn) {
	for _, s := range spawns {
		s := s
		a.push(a.spawnInterval, func() {
			i := a.index(s.Pos)
			a.cells[i] = grid.Occupied(s.Color)
			a.fresh[i] = true
		})
	}
}
