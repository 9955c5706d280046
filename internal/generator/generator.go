// Package generator creates solvable puzzles: it lays dominoes over a
// rectangle, partitions the cells into contiguous rule regions, and
// derives each region's rule from the values actually laid, so a
// solution exists by construction.
package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mxovd/pips-solver/internal/board"
	"github.com/mxovd/pips-solver/internal/puzzle"
	"github.com/mxovd/pips-solver/internal/solver"
)

var log = logrus.StandardLogger()

const (
	MinSide        = 2
	MaxSide        = 16
	DefaultWidth   = 4
	DefaultHeight  = 4
	DefaultRegions = 5
)

var (
	ErrGenerationFailed = errors.New("failed to generate valid puzzle")
	ErrInvalidSize      = errors.New("grid sides must be within range and cover an even cell count")
	ErrInvalidRegions   = errors.New("region count must be between 1 and the cell count")
)

// Generator creates puzzles.
type Generator struct {
	options *Options
	rng     *rand.Rand
}

// New creates a puzzle generator with the given options.
func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions()
	}

	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		options: options,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Generate creates a new puzzle.
// Returns the puzzle document and the solution board it was laid from,
// or an error if generation fails within the timeout.
func (g *Generator) Generate() (*puzzle.Document, *board.Board, error) {
	w, h := g.options.Width, g.options.Height
	if w < MinSide || w > MaxSide || h < MinSide || h > MaxSide || (w*h)%2 != 0 {
		return nil, nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	if g.options.Regions < 1 || g.options.Regions > w*h {
		return nil, nil, fmt.Errorf("%w: %d", ErrInvalidRegions, g.options.Regions)
	}

	start := time.Now()
	deadline := start.Add(g.options.Timeout)

	for attempt := 1; ; attempt++ {
		if time.Now().After(deadline) {
			return nil, nil, ErrGenerationFailed
		}

		doc, solution, err := g.tryGenerate()
		if err != nil {
			log.Debugf("generator: attempt %d: %v", attempt, err)
			continue
		}

		if g.options.EnsureSolvable {
			if err := g.verify(doc, deadline); err != nil {
				log.Debugf("generator: attempt %d: verify: %v", attempt, err)
				continue
			}
		}

		log.Debugf("generator: produced %dx%d puzzle after %d attempt(s) in %s",
			w, h, attempt, time.Since(start).Round(time.Millisecond))
		return doc, solution, nil
	}
}

// tryGenerate runs one generation attempt: tile, draw pips, partition,
// derive rules.
func (g *Generator) tryGenerate() (*puzzle.Document, *board.Board, error) {
	w, h := g.options.Width, g.options.Height

	pairs := g.tileRectangle(w, h)
	if pairs == nil {
		return nil, nil, errors.New("tiling failed")
	}

	// Draw a pip for every covered half-cell.
	values := make(map[board.Coord]int, w*h)
	dominoes := make([][2]int, 0, len(pairs))
	for _, p := range pairs {
		a, b := g.rng.Intn(board.MaxPip+1), g.rng.Intn(board.MaxPip+1)
		values[p[0]], values[p[1]] = a, b
		dominoes = append(dominoes, [2]int{a, b})
	}

	cellRegion, ok := partitionRegions(g.rng, w, h, g.options.Regions)
	if !ok {
		return nil, nil, errors.New("region partition failed")
	}

	// Collect each region's cells in scan order and derive a rule the
	// laid values satisfy.
	entries := make([]puzzle.Entry, g.options.Regions)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r := cellRegion[y*w+x]
			entries[r].Coords = append(entries[r].Coords, [2]int{x, y})
		}
	}
	for r := range entries {
		laid := make([]int, 0, len(entries[r].Coords))
		for _, c := range entries[r].Coords {
			laid = append(laid, values[board.Coord{X: c[0], Y: c[1]}])
		}
		entries[r].Rule = g.deriveRule(laid)
	}

	doc := &puzzle.Document{
		Name:     fmt.Sprintf("generated-%dx%d", w, h),
		Grid:     entries,
		Dominoes: dominoes,
	}

	// Replay the laid tiling onto a fresh board as the solution witness.
	solution := doc.Board()
	for i, p := range pairs {
		solution.PlaceForce(i, p[0], p[1], false)
	}
	if !solution.AllSatisfied() {
		return nil, nil, errors.New("derived rules reject their own witness")
	}
	return doc, solution, nil
}

// tileRectangle covers the w×h rectangle with dominoes. The walk always
// extends from the first uncovered cell in scan order, so only the
// rightward and upward pairings need to be tried; direction order is
// randomized to vary the tilings.
func (g *Generator) tileRectangle(w, h int) [][2]board.Coord {
	covered := make(map[board.Coord]bool, w*h)
	pairs := make([][2]board.Coord, 0, w*h/2)

	var fill func() bool
	fill = func() bool {
		cell, found := firstUncovered(covered, w, h)
		if !found {
			return true
		}

		partners := [2]board.Coord{
			{X: cell.X + 1, Y: cell.Y},
			{X: cell.X, Y: cell.Y + 1},
		}
		if g.rng.Intn(2) == 1 {
			partners[0], partners[1] = partners[1], partners[0]
		}

		for _, nb := range partners {
			if nb.X >= w || nb.Y >= h || covered[nb] {
				continue
			}
			covered[cell], covered[nb] = true, true
			pairs = append(pairs, [2]board.Coord{cell, nb})

			if fill() {
				return true
			}

			pairs = pairs[:len(pairs)-1]
			delete(covered, cell)
			delete(covered, nb)
		}
		return false
	}

	if !fill() {
		return nil
	}
	return pairs
}

func firstUncovered(covered map[board.Coord]bool, w, h int) (board.Coord, bool) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := board.Coord{X: x, Y: y}
			if !covered[c] {
				return c, true
			}
		}
	}
	return board.Coord{}, false
}

// deriveRule picks a rule token the laid values already satisfy, so the
// tiling remains a valid solution of the emitted puzzle.
func (g *Generator) deriveRule(laid []int) string {
	sum := 0
	allEqual := true
	for _, v := range laid {
		sum += v
		if v != laid[0] {
			allEqual = false
		}
	}

	kinds := []string{"sum", "sum", "gt", "lt", "any"}
	if allEqual {
		kinds = append(kinds, "eq", "eq")
	}

	switch kinds[g.rng.Intn(len(kinds))] {
	case "eq":
		return "="
	case "gt":
		if sum == 0 {
			return "0"
		}
		return fmt.Sprintf(">%d", g.rng.Intn(sum))
	case "lt":
		return fmt.Sprintf("<%d", sum+1+g.rng.Intn(board.MaxPip))
	case "any":
		return "x"
	default:
		return fmt.Sprintf("%d", sum)
	}
}

// verify re-solves the emitted document and stamps its difficulty.
func (g *Generator) verify(doc *puzzle.Document, deadline time.Time) error {
	remaining := time.Until(deadline)
	if remaining <= 0 {
		return context.DeadlineExceeded
	}
	s := solver.New(doc.Board(), &solver.Options{Timeout: remaining})
	if _, err := s.Solve(context.Background()); err != nil {
		return err
	}
	doc.Difficulty = solver.Grade(s.Stats().Placements)
	return nil
}

// GenerateWithSize is a convenience function to generate a puzzle with a
// specific grid size.
func GenerateWithSize(width, height int) (*puzzle.Document, *board.Board, error) {
	options := DefaultOptions()
	options.Width = width
	options.Height = height
	gen := New(options)
	return gen.Generate()
}
