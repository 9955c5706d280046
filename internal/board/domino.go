package board

import "fmt"

// MaxPip is the largest pip value a domino half can show. The region
// evaluator's achievable-sum bounds rely on every pip being in [0, MaxPip].
const MaxPip = 6

// Domino is an unordered pair of pip values. Placing a domino assigns one
// value to each of two adjacent cells; a non-double domino can be placed in
// either orientation.
type Domino struct {
	A int
	B int
}

// Double reports whether both halves show the same value, in which case the
// two orientations are indistinguishable.
func (d Domino) Double() bool {
	return d.A == d.B
}

func (d Domino) String() string {
	return fmt.Sprintf("[%d|%d]", d.A, d.B)
}
