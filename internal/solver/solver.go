package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mxovd/pips-solver/internal/board"
)

var (
	ErrNoSolution = errors.New("puzzle has no solution")
	ErrTimeout    = errors.New("solver timeout exceeded")
)

// Solver searches for a domino placement that fills every cell and
// satisfies every region rule.
type Solver struct {
	Board   *board.Board
	options *Options
	stats   Stats
}

// New creates a solver for the given board.
func New(b *board.Board, options *Options) *Solver {
	if options == nil {
		options = DefaultOptions()
	}

	return &Solver{
		Board:   b.Clone(),
		options: options,
	}
}

// Solve attempts to solve the puzzle.
// Returns the solved board, or ErrNoSolution if the search space is
// exhausted without one. An expired timeout surfaces as ErrTimeout;
// parent-context cancellation is returned wrapped.
func (s *Solver) Solve(ctx context.Context) (*board.Board, error) {
	ctx, cancel := s.makeContext(ctx)
	defer cancel()

	start := time.Now()
	solved, err := s.backtrack(ctx)
	s.stats.Duration = time.Since(start)

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("search interrupted: %w", err)
	}
	if !solved {
		return nil, ErrNoSolution
	}
	return s.Board, nil
}

// Stats returns effort counters for the last Solve call.
func (s *Solver) Stats() Stats {
	return s.stats
}

// backtrack implements recursive backtracking with forward checking.
// Each placement is kept only while no region touching its two cells is
// violated; failures are undone exactly before the next candidate.
func (s *Solver) backtrack(ctx context.Context) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
	}

	s.stats.Nodes++

	anchor, ok := s.Board.NextUnfilled()
	if !ok {
		// Every cell is covered; the answer rests on the rules alone.
		return s.Board.AllSatisfied(), nil
	}

	partners := s.Board.OpenNeighbors(anchor)
	if len(partners) == 0 {
		return false, nil
	}

	for i, n := 0, s.Board.DominoCount(); i < n; i++ {
		if s.Board.Used(i) {
			continue
		}
		d := s.Board.Domino(i)

		for _, partner := range partners {
			for _, flipped := range orientations(d) {
				s.Board.PlaceForce(i, anchor, partner, flipped)
				s.stats.Placements++

				if s.Board.Feasible(anchor, partner) {
					solved, err := s.backtrack(ctx)
					if err != nil {
						return false, err
					}
					if solved {
						return true, nil
					}
				}

				s.Board.Remove(anchor, partner)
			}
		}
	}

	return false, nil
}

// orientations lists the distinct ways a domino can straddle a cell pair.
// A double reads the same both ways, so it is tried once.
func orientations(d board.Domino) []bool {
	if d.Double() {
		return []bool{false}
	}
	return []bool{false, true}
}
