package solver

import (
	"context"

	"github.com/mxovd/pips-solver/internal/board"
)

// Difficulty returns an integer measure of a board's difficulty: the
// number of placements tried before the first solution is found. A board
// with no solution scores -1.
func Difficulty(b *board.Board) int {
	s := New(b, nil)
	if _, err := s.Solve(context.Background()); err != nil {
		return -1
	}
	return s.stats.Placements
}

// Grade buckets a difficulty score into a coarse label.
func Grade(score int) string {
	switch {
	case score < 0:
		return "unsolvable"
	case score < 100:
		return "easy"
	case score < 1000:
		return "medium"
	default:
		return "hard"
	}
}
