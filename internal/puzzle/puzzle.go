// Package puzzle reads, writes, and validates puzzle documents: the
// on-disk form of a grid of rule regions plus a domino inventory.
package puzzle

import (
	"slices"

	"github.com/mxovd/pips-solver/internal/board"
)

// Entry is one rule region in a puzzle document: a rule token and the
// cells the rule covers, as [x, y] pairs.
type Entry struct {
	Rule   string   `json:"rule" yaml:"rule"`
	Coords [][2]int `json:"coords" yaml:"coords"`
}

// Document is the wire form of a puzzle. Name and Difficulty are
// optional annotations; generated puzzles carry both.
type Document struct {
	Name       string   `json:"name,omitempty" yaml:"name,omitempty"`
	Difficulty string   `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	Grid       []Entry  `json:"grid" yaml:"grid"`
	Dominoes   [][2]int `json:"dominoes" yaml:"dominoes"`
}

// Build converts the document into board inputs, preserving file order.
func (d *Document) Build() ([]board.Region, []board.Domino) {
	regions := make([]board.Region, 0, len(d.Grid))
	for _, e := range d.Grid {
		cells := make([]board.Coord, 0, len(e.Coords))
		for _, c := range e.Coords {
			cells = append(cells, board.Coord{X: c[0], Y: c[1]})
		}
		regions = append(regions, board.NewRegion(e.Rule, cells))
	}

	dominoes := make([]board.Domino, 0, len(d.Dominoes))
	for _, p := range d.Dominoes {
		dominoes = append(dominoes, board.Domino{A: p[0], B: p[1]})
	}
	return regions, dominoes
}

// Board builds a fresh board from the document.
func (d *Document) Board() *board.Board {
	return board.New(d.Build())
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	clone := *d
	clone.Grid = make([]Entry, len(d.Grid))
	for i, e := range d.Grid {
		clone.Grid[i] = Entry{Rule: e.Rule, Coords: slices.Clone(e.Coords)}
	}
	clone.Dominoes = slices.Clone(d.Dominoes)
	return &clone
}
