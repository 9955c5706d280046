package puzzle

import "sort"

// samples is the collection of hand-crafted puzzles that ship with the
// binary. Each diagram shows the grid with one letter per region,
// origin at the bottom left, y growing upward.
//
// Invariants (verified by Check at package init):
//   - Pip values within 0..6.
//   - Coordinates non-negative.
var samples = map[string]*Document{

	// easy: a 2x2 grid, a sum row under an all-equal row.
	//   b b
	//   a a
	"easy": {
		Name:       "easy",
		Difficulty: "easy",
		Grid: []Entry{
			{Rule: "6", Coords: [][2]int{{0, 0}, {1, 0}}},
			{Rule: "=", Coords: [][2]int{{0, 1}, {1, 1}}},
		},
		Dominoes: [][2]int{{2, 4}, {3, 3}},
	},

	// medium: 3x2 with a region spanning both rows; the first few
	// placements the search tries are dead ends.
	//   a b c
	//   a b b
	"medium": {
		Name:       "medium",
		Difficulty: "medium",
		Grid: []Entry{
			{Rule: "<5", Coords: [][2]int{{0, 0}, {0, 1}}},
			{Rule: ">7", Coords: [][2]int{{1, 0}, {1, 1}, {2, 0}}},
			{Rule: "3", Coords: [][2]int{{2, 1}}},
		},
		Dominoes: [][2]int{{1, 2}, {5, 4}, {3, 6}},
	},

	// cross: a non-rectangular grid; the two gaps force the vertical
	// placement on the right.
	//   . . c
	//   b b c
	//   a a .
	"cross": {
		Name:       "cross",
		Difficulty: "easy",
		Grid: []Entry{
			{Rule: "4", Coords: [][2]int{{0, 0}, {1, 0}}},
			{Rule: "=", Coords: [][2]int{{0, 1}, {1, 1}}},
			{Rule: ">5", Coords: [][2]int{{2, 1}, {2, 2}}},
		},
		Dominoes: [][2]int{{1, 3}, {2, 2}, {4, 6}},
	},

	// unsolvable: an all-equal pair with no matching domino. Used to
	// demonstrate the no-solution exit path.
	"unsolvable": {
		Name:       "unsolvable",
		Difficulty: "unsolvable",
		Grid: []Entry{
			{Rule: "=", Coords: [][2]int{{0, 0}, {1, 0}}},
		},
		Dominoes: [][2]int{{1, 2}},
	},
}

func init() {
	// Validate all samples at startup so a broken entry surfaces immediately.
	for name, doc := range samples {
		if err := doc.Check(); err != nil {
			panic("samples: " + name + " failed validation: " + err.Error())
		}
	}
}

// Sample returns a copy of the named built-in puzzle.
func Sample(name string) (*Document, bool) {
	doc, ok := samples[name]
	if !ok {
		return nil, false
	}
	return doc.Clone(), true
}

// SampleNames lists the built-in puzzles in sorted order.
func SampleNames() []string {
	names := make([]string, 0, len(samples))
	for name := range samples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
