package board

// State is the three-valued result of evaluating a region against a partial
// assignment.
type State int

const (
	// Incomplete means open cells remain and no rule is provably broken.
	Incomplete State = iota
	// Satisfied means the rule holds; for most rules this requires every
	// cell in the region to be filled.
	Satisfied
	// Violated means no completion of the region can satisfy the rule.
	Violated
)

func (s State) String() string {
	switch s {
	case Incomplete:
		return "incomplete"
	case Satisfied:
		return "satisfied"
	case Violated:
		return "violated"
	}
	return "unknown"
}

// Region is a group of cells governed by one rule. Raw preserves the token
// from the puzzle file; Cells keeps the file's order. A cell may belong to
// more than one region.
type Region struct {
	Raw   string
	Rule  Rule
	Cells []Coord
}

// NewRegion parses token and builds a region over the given cells.
func NewRegion(token string, cells []Coord) Region {
	return Region{Raw: token, Rule: ParseRule(token), Cells: cells}
}

// Evaluate computes the region's state under the partial assignment pips.
// It is a pure function: repeated calls with the same inputs return the same
// state and nothing is mutated.
//
// Violated is returned as soon as the rule is provably unsatisfiable, even
// with empty cells remaining: a sum already over its target, or a maximum
// achievable sum (current sum plus MaxPip per empty cell) that cannot reach
// it. This early detection is what lets the search abandon a placement before
// the region is full.
func (r Region) Evaluate(pips map[Coord]int) State {
	sum := 0
	empty := 0
	first := 0
	seen := false
	mismatch := false
	for _, c := range r.Cells {
		v, ok := pips[c]
		if !ok {
			empty++
			continue
		}
		sum += v
		if !seen {
			first, seen = v, true
		} else if v != first {
			mismatch = true
		}
	}

	switch r.Rule.Kind {
	case RuleUnconstrained, RuleUnrecognized:
		if empty == 0 {
			return Satisfied
		}
		return Incomplete

	case RuleAllEqual:
		if mismatch {
			return Violated
		}
		if empty == 0 {
			return Satisfied
		}
		return Incomplete

	case RuleSumEquals:
		target := r.Rule.Target
		if sum > target {
			return Violated
		}
		if sum+empty*MaxPip < target {
			return Violated
		}
		if empty > 0 {
			return Incomplete
		}
		if sum == target {
			return Satisfied
		}
		return Violated

	case RuleSumGreaterThan:
		k := r.Rule.Target
		if sum+empty*MaxPip <= k {
			return Violated
		}
		if empty > 0 {
			return Incomplete
		}
		if sum > k {
			return Satisfied
		}
		return Violated

	case RuleSumLessThan:
		k := r.Rule.Target
		if sum >= k {
			return Violated
		}
		if empty > 0 {
			return Incomplete
		}
		return Satisfied
	}
	return Incomplete
}
