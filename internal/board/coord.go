package board

import "fmt"

// Coord identifies a cell on the grid. Coordinates are signed so that
// neighbor arithmetic at x=0 or y=0 simply produces positions that fail the
// grid membership test; puzzle files only ever contain non-negative values.
type Coord struct {
	X int
	Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Neighbors returns the four orthogonally adjacent coordinates in a fixed
// order: left, right, below, above. Callers filter against the grid.
func (c Coord) Neighbors() [4]Coord {
	return [4]Coord{
		{c.X - 1, c.Y},
		{c.X + 1, c.Y},
		{c.X, c.Y - 1},
		{c.X, c.Y + 1},
	}
}

// Adjacent reports whether o shares an edge with c.
func (c Coord) Adjacent(o Coord) bool {
	dx := c.X - o.X
	dy := c.Y - o.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx+dy == 1
}
