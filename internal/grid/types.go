// Package grid implements the block grid of the collapse puzzle: connected
// group search, removal, gravity and refill.
// This package is UI-agnostic and deterministic for a given RandomSource.
package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration is returned when a grid is created with
	// non-positive dimensions or color count.
	ErrInvalidConfiguration = errors.New("grid: invalid configuration")

	// ErrInvalidPosition is returned when a position outside the grid is
	// passed to a grid operation.
	ErrInvalidPosition = errors.New("grid: invalid position")
)

// RandomSource supplies colors for new blocks.
// *math/rand.Rand satisfies it.
type RandomSource interface {
	// Intn returns a uniform value in [0, n).
	Intn(n int) int
}

// Pos is a cell position. X grows to the right, Y grows upward:
// row 0 is the bottom of the grid.
type Pos struct {
	X int
	Y int
}

// P is a convenience constructor for Pos.
func P(x, y int) Pos {
	return Pos{X: x, Y: y}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Neighbors returns the four orthogonal neighbours: up, down, left, right.
// Some of them may lie outside the grid.
func (p Pos) Neighbors() [4]Pos {
	return [4]Pos{
		{X: p.X, Y: p.Y + 1},
		{X: p.X, Y: p.Y - 1},
		{X: p.X - 1, Y: p.Y},
		{X: p.X + 1, Y: p.Y},
	}
}

// Cell is a single grid position. Color is only meaningful when Filled.
type Cell struct {
	Filled bool
	Color  int
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{}
}

// Occupied returns a cell holding a block of the given color.
func Occupied(color int) Cell {
	return Cell{Filled: true, Color: color}
}

// Move records one block relocated by gravity.
type Move struct {
	From Pos
	To   Pos
}

// Spawn records one block created by refill.
type Spawn struct {
	Pos   Pos
	Color int
}
