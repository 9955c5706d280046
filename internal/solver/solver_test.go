package solver_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mxovd/pips-solver/internal/board"
	"github.com/mxovd/pips-solver/internal/solver"
)

// easyBoard is a 2×2 grid: bottom row sums to 6, top row holds equal pips.
// Solvable by [2|4] across the bottom and the double [3|3] across the top.
func easyBoard() *board.Board {
	regions := []board.Region{
		board.NewRegion("6", []board.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}}),
		board.NewRegion("=", []board.Coord{{X: 0, Y: 1}, {X: 1, Y: 1}}),
	}
	return board.New(regions, []board.Domino{{A: 2, B: 4}, {A: 3, B: 3}})
}

// mediumBoard is a 3×2 grid mixing comparison, sum, and shared-column
// regions. Exactly one assignment works; the search has to undo several
// placements to find it.
func mediumBoard() *board.Board {
	regions := []board.Region{
		board.NewRegion("<5", []board.Coord{{X: 0, Y: 0}, {X: 0, Y: 1}}),
		board.NewRegion(">7", []board.Coord{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}}),
		board.NewRegion("3", []board.Coord{{X: 2, Y: 1}}),
	}
	return board.New(regions, []board.Domino{{A: 1, B: 2}, {A: 5, B: 4}, {A: 3, B: 6}})
}

func TestSolveUnconstrainedPair(t *testing.T) {
	regions := []board.Region{
		board.NewRegion("x", []board.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}}),
	}
	b := board.New(regions, []board.Domino{{A: 2, B: 5}})

	s := solver.New(b, nil)
	solved, err := s.Solve(context.Background())
	require.NoError(t, err)

	got := solved.Assignment()
	assert.Len(t, got, 2)
	assert.ElementsMatch(t, []int{2, 5}, []int{got[board.Coord{X: 0, Y: 0}], got[board.Coord{X: 1, Y: 0}]})
	assert.True(t, solved.AllSatisfied())
}

func TestSolveEasy(t *testing.T) {
	s := solver.New(easyBoard(), nil)
	solved, err := s.Solve(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[board.Coord]int{
		{X: 0, Y: 0}: 2, {X: 1, Y: 0}: 4,
		{X: 0, Y: 1}: 3, {X: 1, Y: 1}: 3,
	}, solved.Assignment())
	assert.Equal(t, 2, solved.UsedCount())
}

func TestSolveMediumBacktracks(t *testing.T) {
	s := solver.New(mediumBoard(), nil)
	solved, err := s.Solve(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[board.Coord]int{
		{X: 0, Y: 0}: 1, {X: 0, Y: 1}: 2,
		{X: 1, Y: 0}: 5, {X: 1, Y: 1}: 6,
		{X: 2, Y: 0}: 4, {X: 2, Y: 1}: 3,
	}, solved.Assignment())
	assert.Equal(t, map[board.Coord]int{
		{X: 0, Y: 0}: 0, {X: 0, Y: 1}: 0,
		{X: 1, Y: 0}: 1, {X: 2, Y: 0}: 1,
		{X: 1, Y: 1}: 2, {X: 2, Y: 1}: 2,
	}, solved.Placements())

	stats := s.Stats()
	assert.Greater(t, stats.Placements, 6, "search must try and undo dead ends first")
	assert.Greater(t, stats.Nodes, 0)
}

func TestSolveDeterministic(t *testing.T) {
	first, err := solver.New(mediumBoard(), nil).Solve(context.Background())
	require.NoError(t, err)
	second, err := solver.New(mediumBoard(), nil).Solve(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.Assignment(), second.Assignment())
	assert.Equal(t, first.Placements(), second.Placements())
}

func TestSolveNoSolution(t *testing.T) {
	regions := []board.Region{
		board.NewRegion("=", []board.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}}),
	}
	b := board.New(regions, []board.Domino{{A: 1, B: 2}})

	_, err := solver.New(b, nil).Solve(context.Background())
	assert.ErrorIs(t, err, solver.ErrNoSolution)
}

func TestSolveIsolatedCell(t *testing.T) {
	// (5,5) has no orthogonal neighbor in the grid, so no domino can
	// ever cover it.
	regions := []board.Region{
		board.NewRegion("x", []board.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 5, Y: 5}}),
	}
	b := board.New(regions, []board.Domino{{A: 1, B: 1}, {A: 2, B: 2}})

	_, err := solver.New(b, nil).Solve(context.Background())
	assert.ErrorIs(t, err, solver.ErrNoSolution)
}

func TestSolveEmptyPuzzle(t *testing.T) {
	b := board.New(nil, nil)
	solved, err := solver.New(b, nil).Solve(context.Background())
	require.NoError(t, err)
	assert.Empty(t, solved.Assignment())
}

func TestSolveLeavesInputUntouched(t *testing.T) {
	b := easyBoard()
	_, err := solver.New(b, nil).Solve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, b.FilledCount())
}

func TestSolveTimeout(t *testing.T) {
	s := solver.New(mediumBoard(), &solver.Options{Timeout: time.Nanosecond})
	_, err := s.Solve(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, solver.ErrTimeout)
	assert.NotErrorIs(t, err, solver.ErrNoSolution)
}

func TestSolveCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := solver.New(mediumBoard(), nil).Solve(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, solver.ErrNoSolution)
}

func TestDifficulty(t *testing.T) {
	easy := solver.Difficulty(easyBoard())
	medium := solver.Difficulty(mediumBoard())
	assert.GreaterOrEqual(t, easy, 0)
	assert.Greater(t, medium, easy, "the medium board needs more search")

	unsolvable := board.New(
		[]board.Region{board.NewRegion("=", []board.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}})},
		[]board.Domino{{A: 1, B: 2}},
	)
	assert.Equal(t, -1, solver.Difficulty(unsolvable))
}

func TestGrade(t *testing.T) {
	assert.Equal(t, "unsolvable", solver.Grade(-1))
	assert.Equal(t, "easy", solver.Grade(0))
	assert.Equal(t, "medium", solver.Grade(100))
	assert.Equal(t, "hard", solver.Grade(5000))
}
