package board

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCell  = errors.New("cell is not part of the grid")
	ErrCellOccupied = errors.New("cell already holds a pip")
	ErrNotAdjacent  = errors.New("cells are not orthogonally adjacent")
	ErrDominoIndex  = errors.New("domino index out of range")
	ErrDominoUsed   = errors.New("domino already placed")
)

// validateDomino checks that inventory index i refers to an available domino.
func (b *Board) validateDomino(i int) error {
	if i < 0 || i >= len(b.dominoes) {
		return fmt.Errorf("%w: %d must be in range [0, %d)", ErrDominoIndex, i, len(b.dominoes))
	}
	if b.used[i] {
		return fmt.Errorf("%w: %s at index %d", ErrDominoUsed, b.dominoes[i], i)
	}
	return nil
}

// validatePair checks that anchor and partner form a legal placement site:
// both on the grid, both empty, and sharing an edge.
func (b *Board) validatePair(anchor, partner Coord) error {
	for _, c := range []Coord{anchor, partner} {
		if !b.Has(c) {
			return fmt.Errorf("%w: %s", ErrUnknownCell, c)
		}
		if _, filled := b.pips[c]; filled {
			return fmt.Errorf("%w: %s", ErrCellOccupied, c)
		}
	}
	if !anchor.Adjacent(partner) {
		return fmt.Errorf("%w: %s and %s", ErrNotAdjacent, anchor, partner)
	}
	return nil
}
