package grid

import (
	"fmt"
	"strings"
)

// Grid is the board of blocks.
// Cells are stored in row-major order with row 0 at the bottom: index = y*W + x.
type Grid struct {
	w      int
	h      int
	colors int
	cells  []Cell
}

// New creates a width x height grid and fills every cell with a uniformly
// random color in [0, colorCount).
func New(width, height, colorCount int, rng RandomSource) (*Grid, error) {
	if width <= 0 || height <= 0 || colorCount <= 0 {
		return nil, fmt.Errorf("%w: width=%d height=%d colors=%d",
			ErrInvalidConfiguration, width, height, colorCount)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfiguration)
	}

	g := &Grid{
		w:      width,
		h:      height,
		colors: colorCount,
		cells:  make([]Cell, width*height),
	}
	g.Regenerate(rng)
	return g, nil
}

// FromRows builds a grid from explicit colors. Rows are given top first, the
// way a board is drawn; a negative value marks an empty cell.
func FromRows(colorCount int, rows ...[]int) (*Grid, error) {
	if colorCount <= 0 || len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty board or colors=%d", ErrInvalidConfiguration, colorCount)
	}

	h := len(rows)
	w := len(rows[0])
	g := &Grid{
		w:      w,
		h:      h,
		colors: colorCount,
		cells:  make([]Cell, w*h),
	}

	for i, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d",
				ErrInvalidConfiguration, i, len(row), w)
		}
		y := h - 1 - i
		for x, color := range row {
			if color >= colorCount {
				return nil, fmt.Errorf("%w: color %d at %v outside [0,%d)",
					ErrInvalidConfiguration, color, P(x, y), colorCount)
			}
			if color >= 0 {
				g.cells[g.index(P(x, y))] = Occupied(color)
			}
		}
	}
	return g, nil
}

// Regenerate gives every cell, occupied or not, a new random color.
// Spawns are returned in the same order as RefillEmptyCells uses.
func (g *Grid) Regenerate(rng RandomSource) []Spawn {
	spawns := make([]Spawn, 0, len(g.cells))
	for x := 0; x < g.w; x++ {
		for y := 0; y < g.h; y++ {
			color := rng.Intn(g.colors)
			g.set(P(x, y), Occupied(color))
			spawns = append(spawns, Spawn{Pos: P(x, y), Color: color})
		}
	}
	return spawns
}

func (g *Grid) index(p Pos) int {
	return p.Y*g.w + p.X
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// ColorCount returns the number of distinct block colors.
func (g *Grid) ColorCount() int { return g.colors }

// InBounds returns true if the position is within the grid.
func (g *Grid) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < g.w && p.Y >= 0 && p.Y < g.h
}

// Get returns the cell at p. Out of bounds positions read as empty.
func (g *Grid) Get(p Pos) Cell {
	if !g.InBounds(p) {
		return Empty()
	}
	return g.cells[g.index(p)]
}

func (g *Grid) set(p Pos, c Cell) {
	g.cells[g.index(p)] = c
}

// EmptyCount returns the number of empty cells.
func (g *Grid) EmptyCount() int {
	n := 0
	for _, c := range g.cells {
		if !c.Filled {
			n++
		}
	}
	return n
}

// Settled reports whether no occupied cell has an empty cell beneath it.
func (g *Grid) Settled() bool {
	for x := 0; x < g.w; x++ {
		for y := 1; y < g.h; y++ {
			if g.Get(P(x, y)).Filled && !g.Get(P(x, y-1)).Filled {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		w:      g.w,
		h:      g.h,
		colors: g.colors,
		cells:  cells,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.w != other.w || g.h != other.h || g.colors != other.colors {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid top row first, one digit per color and '.' for
// empty cells.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := g.h - 1; y >= 0; y-- {
		for x := 0; x < g.w; x++ {
			c := g.Get(P(x, y))
			if !c.Filled {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(fmt.Sprint(c.Color))
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
