package grid

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// Group is a set of orthogonally connected cells sharing one color.
// The zero value is an empty group.
type Group struct {
	color   int
	members mapset.Set[Pos]
}

// Len returns the number of cells in the group.
func (g Group) Len() int {
	return g.members.Size()
}

// Color returns the color shared by the group. Meaningless for an empty group.
func (g Group) Color() int {
	return g.color
}

// Contains returns true if p belongs to the group.
func (g Group) Contains(p Pos) bool {
	return g.members.Has(p)
}

// Positions returns the members ordered column by column, bottom-up.
func (g Group) Positions() []Pos {
	out := make([]Pos, 0, g.Len())
	g.members.Each(func(p Pos) {
		out = append(out, p)
	})
	slices.SortFunc(out, comparePos)
	return out
}

// comparePos orders positions column-major, bottom-up.
func comparePos(a, b Pos) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Y, b.Y)
}

// FindConnectedGroup returns every cell reachable from start through
// same-colored orthogonal neighbours, start included. An empty start cell
// yields an empty group.
func (g *Grid) FindConnectedGroup(start Pos) (Group, error) {
	if !g.InBounds(start) {
		return Group{}, fmt.Errorf("%w: %v outside %dx%d", ErrInvalidPosition, start, g.w, g.h)
	}

	first := g.Get(start)
	if !first.Filled {
		return Group{}, nil
	}

	visited := mapset.New[Pos]()
	frontier := queue.New[Pos]()

	visited.Put(start)
	frontier.Enqueue(start)

	for !frontier.Empty() {
		current := frontier.Dequeue()
		for _, n := range current.Neighbors() {
			if visited.Has(n) {
				continue
			}
			if c := g.Get(n); c.Filled && c.Color == first.Color {
				visited.Put(n)
				frontier.Enqueue(n)
			}
		}
	}

	return Group{color: first.Color, members: visited}, nil
}
