package grid

import "fmt"

// RemoveGroup empties every given position. Positions are validated before
// anything is changed, so an error leaves the grid untouched.
func (g *Grid) RemoveGroup(positions []Pos) error {
	for _, p := range positions {
		if !g.InBounds(p) {
			return fmt.Errorf("%w: %v outside %dx%d", ErrInvalidPosition, p, g.w, g.h)
		}
	}
	for _, p := range positions {
		g.set(p, Empty())
	}
	return nil
}

// ApplyGravity drops blocks down into the empty cells beneath them.
// Each column is compacted on its own: scanning bottom-up, every empty cell
// takes the nearest block above it. The returned moves are in column-major,
// bottom-up order.
func (g *Grid) ApplyGravity() []Move {
	var moves []Move
	for x := 0; x < g.w; x++ {
		moves = g.compactColumn(x, moves)
	}
	return moves
}

func (g *Grid) compactColumn(x int, moves []Move) []Move {
	for y := 0; y < g.h; y++ {
		if g.Get(P(x, y)).Filled {
			continue
		}
		above := y + 1
		for above < g.h && !g.Get(P(x, above)).Filled {
			above++
		}
		if above == g.h {
			// Nothing left to fall in this column.
			return moves
		}
		from, to := P(x, above), P(x, y)
		g.set(to, g.Get(from))
		g.set(from, Empty())
		moves = append(moves, Move{From: from, To: to})
	}
	return moves
}

// RefillEmptyCells gives every empty cell a random color, scanning column
// by column from the bottom row up. Spawns are returned in scan order.
func (g *Grid) RefillEmptyCells(rng RandomSource) []Spawn {
	var spawns []Spawn
	for x := 0; x < g.w; x++ {
		for y := 0; y < g.h; y++ {
			p := P(x, y)
			if g.Get(p).Filled {
				continue
			}
			color := rng.Intn(g.colors)
			g.set(p, Occupied(color))
			spawns = append(spawns, Spawn{Pos: p, Color: color})
		}
	}
	return spawns
}
