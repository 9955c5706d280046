package board

import (
	"maps"
	"slices"
)

// Board holds the static description of a puzzle, regions and the domino
// inventory, together with the mutable solving state: which pip value each
// cell carries and which domino occupies it.
//
// The static part is built once and never changes: regions live in a slice
// and are cross-referenced from each coordinate by index, so a cell can
// belong to several regions without ownership cycles. The mutable part is
// only ever changed through Place/PlaceForce and Remove, which keep the pip
// assignment, the per-cell domino bookkeeping, and the inventory availability
// flags in sync.
type Board struct {
	// regions and the derived indexes are set at construction time and never
	// mutated; clones share them.
	regions     []Region
	cellRegions map[Coord][]int
	cellOrder   []Coord
	min, max    Coord

	// dominoes is the inventory in file order; used flags availability per
	// slot so indices stay stable across place/remove cycles.
	dominoes []Domino
	used     []bool

	// pips maps filled cells to their pip value; dominoAt maps the same
	// cells to the occupying domino's inventory index. The two maps always
	// hold exactly the same keys.
	pips     map[Coord]int
	dominoAt map[Coord]int
}

// New builds a Board from regions and a domino inventory. The slices are
// retained and must not be mutated by the caller afterwards.
//
// Cells are defined implicitly by appearing in some region. The board keeps a
// deterministic cell order (regions in input order, cells in listed order,
// first occurrence wins) so that searches over the same input always visit
// cells identically. No structural validation happens here; see the puzzle
// package for loader-side checks.
func New(regions []Region, dominoes []Domino) *Board {
	b := &Board{
		regions:     regions,
		cellRegions: make(map[Coord][]int),
		dominoes:    dominoes,
		used:        make([]bool, len(dominoes)),
		pips:        make(map[Coord]int),
		dominoAt:    make(map[Coord]int),
	}
	for i, region := range regions {
		for _, c := range region.Cells {
			if _, ok := b.cellRegions[c]; !ok {
				b.cellOrder = append(b.cellOrder, c)
			}
			b.cellRegions[c] = append(b.cellRegions[c], i)
		}
	}
	for i, c := range b.cellOrder {
		if i == 0 {
			b.min, b.max = c, c
			continue
		}
		b.min.X = min(b.min.X, c.X)
		b.min.Y = min(b.min.Y, c.Y)
		b.max.X = max(b.max.X, c.X)
		b.max.Y = max(b.max.Y, c.Y)
	}
	return b
}

// Clone creates an independent copy of the Board. The static description is
// shared — it is immutable after construction — while the assignment maps
// and availability flags are copied so the clone can be mutated freely.
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	clone := *b
	clone.used = slices.Clone(b.used)
	clone.pips = maps.Clone(b.pips)
	clone.dominoAt = maps.Clone(b.dominoAt)
	return &clone
}

// CellCount returns the number of distinct cells in the grid.
func (b *Board) CellCount() int {
	return len(b.cellOrder)
}

// FilledCount returns the number of cells currently holding a pip.
func (b *Board) FilledCount() int {
	return len(b.pips)
}

// Complete reports whether every cell has been assigned a pip.
func (b *Board) Complete() bool {
	return len(b.pips) == len(b.cellOrder)
}

// Has reports whether c belongs to the grid.
func (b *Board) Has(c Coord) bool {
	_, ok := b.cellRegions[c]
	return ok
}

// Pip returns the pip value at c and whether c is filled.
func (b *Board) Pip(c Coord) (int, bool) {
	v, ok := b.pips[c]
	return v, ok
}

// DominoAt returns the inventory index of the domino covering c and whether
// c is covered.
func (b *Board) DominoAt(c Coord) (int, bool) {
	i, ok := b.dominoAt[c]
	return i, ok
}

// Bounds returns the smallest and largest coordinates appearing in the grid.
// ok is false for an empty grid.
func (b *Board) Bounds() (lo, hi Coord, ok bool) {
	if len(b.cellOrder) == 0 {
		return Coord{}, Coord{}, false
	}
	return b.min, b.max, true
}

// NextUnfilled returns the first cell in the board's deterministic order that
// has no pip yet. ok is false once the board is complete.
func (b *Board) NextUnfilled() (Coord, bool) {
	for _, c := range b.cellOrder {
		if _, filled := b.pips[c]; !filled {
			return c, true
		}
	}
	return Coord{}, false
}

// OpenNeighbors returns the orthogonal neighbors of c that belong to the grid
// and are still unfilled, in c's fixed neighbor order.
func (b *Board) OpenNeighbors(c Coord) []Coord {
	open := make([]Coord, 0, 4)
	for _, n := range c.Neighbors() {
		if !b.Has(n) {
			continue
		}
		if _, filled := b.pips[n]; filled {
			continue
		}
		open = append(open, n)
	}
	return open
}

// DominoCount returns the size of the inventory.
func (b *Board) DominoCount() int {
	return len(b.dominoes)
}

// Domino returns the domino at inventory index i.
func (b *Board) Domino(i int) Domino {
	return b.dominoes[i]
}

// Used reports whether the domino at inventory index i is currently placed.
func (b *Board) Used(i int) bool {
	return b.used[i]
}

// UsedCount returns how many dominoes are currently placed.
func (b *Board) UsedCount() int {
	n := 0
	for _, u := range b.used {
		if u {
			n++
		}
	}
	return n
}

// Place puts domino i across the cells anchor and partner after validating
// the move: the index must be in range, the domino unused, both cells on the
// grid, empty, and orthogonally adjacent. flipped selects which half lands on
// the anchor: false assigns A to anchor and B to partner, true the reverse.
func (b *Board) Place(i int, anchor, partner Coord, flipped bool) error {
	if err := b.validateDomino(i); err != nil {
		return err
	}
	if err := b.validatePair(anchor, partner); err != nil {
		return err
	}
	b.PlaceForce(i, anchor, partner, flipped)
	return nil
}

// PlaceForce places without validation checks. Use only when certain the
// move is legal, as the search does after computing partner candidates.
func (b *Board) PlaceForce(i int, anchor, partner Coord, flipped bool) {
	d := b.dominoes[i]
	a, p := d.A, d.B
	if flipped {
		a, p = p, a
	}
	b.pips[anchor] = a
	b.pips[partner] = p
	b.dominoAt[anchor] = i
	b.dominoAt[partner] = i
	b.used[i] = true
}

// Remove undoes a placement made across anchor and partner, clearing both
// cells and restoring the occupying domino to the inventory slot it came
// from. Calling Remove on an empty anchor is a no-op.
func (b *Board) Remove(anchor, partner Coord) {
	i, ok := b.dominoAt[anchor]
	if !ok {
		return
	}
	b.used[i] = false
	delete(b.pips, anchor)
	delete(b.pips, partner)
	delete(b.dominoAt, anchor)
	delete(b.dominoAt, partner)
}

// RegionCount returns the number of regions.
func (b *Board) RegionCount() int {
	return len(b.regions)
}

// Region returns the region at index i.
func (b *Board) Region(i int) Region {
	return b.regions[i]
}

// RegionState evaluates region i against the current assignment.
func (b *Board) RegionState(i int) State {
	return b.regions[i].Evaluate(b.pips)
}

// RegionsTouching returns the indices of every region containing at least one
// of the given coordinates, deduplicated, in first-seen order.
func (b *Board) RegionsTouching(coords ...Coord) []int {
	seen := make(map[int]struct{}, 4)
	var out []int
	for _, c := range coords {
		for _, i := range b.cellRegions[c] {
			if _, dup := seen[i]; dup {
				continue
			}
			seen[i] = struct{}{}
			out = append(out, i)
		}
	}
	return out
}

// Feasible reports whether no region touching any of the given coordinates is
// Violated. Each touched region is evaluated once even when both coordinates
// fall inside it.
func (b *Board) Feasible(coords ...Coord) bool {
	for _, i := range b.RegionsTouching(coords...) {
		if b.RegionState(i) == Violated {
			return false
		}
	}
	return true
}

// AllSatisfied reports whether every region evaluates to Satisfied. On a
// complete board this is the final acceptance check; an empty region list is
// vacuously satisfied.
func (b *Board) AllSatisfied() bool {
	for i := range b.regions {
		if b.RegionState(i) != Satisfied {
			return false
		}
	}
	return true
}

// Assignment returns a copy of the cell-to-pip mapping.
func (b *Board) Assignment() map[Coord]int {
	return maps.Clone(b.pips)
}

// Placements returns a copy of the cell-to-domino-index bookkeeping mapping.
func (b *Board) Placements() map[Coord]int {
	return maps.Clone(b.dominoAt)
}
