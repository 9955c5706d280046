package puzzle_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mxovd/pips-solver/internal/board"
	"github.com/mxovd/pips-solver/internal/puzzle"
	"github.com/mxovd/pips-solver/internal/solver"
)

func TestLoadJSON(t *testing.T) {
	doc, err := puzzle.Load("testdata/easy_grid.json")
	require.NoError(t, err)

	require.Len(t, doc.Grid, 2)
	assert.Equal(t, "6", doc.Grid[0].Rule)
	assert.Equal(t, [][2]int{{0, 0}, {1, 0}}, doc.Grid[0].Coords)
	assert.Equal(t, [][2]int{{2, 4}, {3, 3}}, doc.Dominoes)
	assert.Empty(t, doc.Name)
}

func TestLoadYAML(t *testing.T) {
	doc, err := puzzle.Load("testdata/medium_grid.yaml")
	require.NoError(t, err)

	assert.Equal(t, "medium", doc.Name)
	assert.Equal(t, "medium", doc.Difficulty)
	require.Len(t, doc.Grid, 3)
	assert.Equal(t, ">7", doc.Grid[1].Rule)
	assert.Equal(t, [][2]int{{1, 0}, {1, 1}, {2, 0}}, doc.Grid[1].Coords)
	assert.Len(t, doc.Dominoes, 3)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := puzzle.Load("testdata/no_such_puzzle.json")
	assert.Error(t, err)
}

func TestLoadUnsolvable(t *testing.T) {
	// Loading has no opinion on solvability; only the search reports it.
	doc, err := puzzle.Load("testdata/unsolvable_grid.json")
	require.NoError(t, err)

	_, err = solver.New(doc.Board(), nil).Solve(context.Background())
	assert.ErrorIs(t, err, solver.ErrNoSolution)
}

func TestDecodeBadSyntax(t *testing.T) {
	_, err := puzzle.DecodeJSON(strings.NewReader(`{"grid": [`))
	assert.ErrorIs(t, err, puzzle.ErrBadFormat)

	_, err = puzzle.DecodeYAML(strings.NewReader("grid: [unclosed"))
	assert.ErrorIs(t, err, puzzle.ErrBadFormat)
}

func TestBuild(t *testing.T) {
	doc, err := puzzle.DecodeJSON(strings.NewReader(`{
		"grid": [
			{"rule": "=", "coords": [[0, 0], [1, 0]]},
			{"rule": "mystery", "coords": [[0, 1], [1, 1]]}
		],
		"dominoes": [[0, 6]]
	}`))
	require.NoError(t, err)

	regions, dominoes := doc.Build()
	require.Len(t, regions, 2)
	assert.Equal(t, board.RuleAllEqual, regions[0].Rule.Kind)
	assert.Equal(t, []board.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}}, regions[0].Cells)

	// Unknown rule tokens load without error and constrain nothing.
	assert.Equal(t, board.RuleUnrecognized, regions[1].Rule.Kind)
	assert.Equal(t, "mystery", regions[1].Raw)

	require.Len(t, dominoes, 1)
	assert.Equal(t, board.Domino{A: 0, B: 6}, dominoes[0])
}

func TestCheck(t *testing.T) {
	doc := &puzzle.Document{
		Grid:     []puzzle.Entry{{Rule: "x", Coords: [][2]int{{0, 0}, {1, 0}}}},
		Dominoes: [][2]int{{1, 2}},
	}
	require.NoError(t, doc.Check())

	bad := doc.Clone()
	bad.Dominoes = [][2]int{{1, 7}}
	assert.ErrorIs(t, bad.Check(), puzzle.ErrPipRange)

	bad = doc.Clone()
	bad.Grid[0].Coords = [][2]int{{0, 0}, {-1, 0}}
	assert.ErrorIs(t, bad.Check(), puzzle.ErrNegativeCoord)
}

func TestBalanced(t *testing.T) {
	doc, err := puzzle.Load("testdata/easy_grid.json")
	require.NoError(t, err)
	assert.True(t, doc.Balanced())

	doc.Dominoes = doc.Dominoes[:1]
	assert.False(t, doc.Balanced())

	// A cell listed by two regions counts once.
	shared := &puzzle.Document{
		Grid: []puzzle.Entry{
			{Rule: "3", Coords: [][2]int{{0, 0}, {1, 0}}},
			{Rule: "<9", Coords: [][2]int{{1, 0}}},
		},
		Dominoes: [][2]int{{1, 2}},
	}
	assert.True(t, shared.Balanced())
}

func TestSaveRoundTrip(t *testing.T) {
	doc, err := puzzle.Load("testdata/medium_grid.yaml")
	require.NoError(t, err)

	dir := t.TempDir()
	for _, name := range []string{"copy.json", "copy.yaml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, puzzle.Save(path, doc))

		got, err := puzzle.Load(path)
		require.NoError(t, err)
		assert.Equal(t, doc, got, name)
	}
}

func TestSampleClone(t *testing.T) {
	doc, ok := puzzle.Sample("easy")
	require.True(t, ok)

	// Mutating the returned copy must not leak into the shared sample.
	doc.Grid[0].Rule = "x"
	doc.Dominoes[0] = [2]int{0, 0}

	fresh, ok := puzzle.Sample("easy")
	require.True(t, ok)
	assert.Equal(t, "6", fresh.Grid[0].Rule)
	assert.Equal(t, [2]int{2, 4}, fresh.Dominoes[0])

	_, ok = puzzle.Sample("nope")
	assert.False(t, ok)
}

func TestSampleNames(t *testing.T) {
	assert.Equal(t, []string{"cross", "easy", "medium", "unsolvable"}, puzzle.SampleNames())
}

func TestSamplesSolve(t *testing.T) {
	for _, name := range puzzle.SampleNames() {
		t.Run(name, func(t *testing.T) {
			doc, ok := puzzle.Sample(name)
			require.True(t, ok)
			require.NoError(t, doc.Check())

			solved, err := solver.New(doc.Board(), nil).Solve(context.Background())
			if name == "unsolvable" {
				assert.ErrorIs(t, err, solver.ErrNoSolution)
				return
			}
			require.NoError(t, err)
			assert.True(t, solved.Complete())
			assert.True(t, solved.AllSatisfied())
		})
	}
}
