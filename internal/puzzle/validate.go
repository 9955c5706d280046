package puzzle

import (
	"errors"
	"fmt"

	"github.com/mxovd/pips-solver/internal/board"
)

var (
	ErrPipRange      = errors.New("pip value out of range")
	ErrNegativeCoord = errors.New("negative cell coordinate")
)

// Check validates the structural properties the solver core does not
// enforce: pip values within 0..MaxPip and non-negative coordinates.
// Rule tokens are deliberately not checked; an unrecognized token is a
// legal, unconstrained region.
func (d *Document) Check() error {
	for i, p := range d.Dominoes {
		if p[0] < 0 || p[0] > board.MaxPip || p[1] < 0 || p[1] > board.MaxPip {
			return fmt.Errorf("%w: domino %d is [%d|%d]", ErrPipRange, i, p[0], p[1])
		}
	}
	for _, e := range d.Grid {
		for _, c := range e.Coords {
			if c[0] < 0 || c[1] < 0 {
				return fmt.Errorf("%w: (%d,%d) in region %q", ErrNegativeCoord, c[0], c[1], e.Rule)
			}
		}
	}
	return nil
}

// Balanced reports whether the grid has exactly two cells per domino.
// An unbalanced document still loads and solves: a short inventory is
// simply unsolvable, and extra dominoes are spare.
func (d *Document) Balanced() bool {
	cells := make(map[board.Coord]struct{})
	for _, e := range d.Grid {
		for _, c := range e.Coords {
			cells[board.Coord{X: c[0], Y: c[1]}] = struct{}{}
		}
	}
	return len(cells) == 2*len(d.Dominoes)
}
