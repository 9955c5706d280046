// Package render draws solved and partial boards as text or HTML.
package render

import (
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/mxovd/pips-solver/internal/board"
)

// paletteCodes are the 256-color codes cycled through by domino index,
// chosen so adjacent indices contrast strongly.
var paletteCodes = [...]int{196, 202, 226, 46, 51, 27, 129, 201, 208, 118, 99, 244}

// palette holds one bold foreground color per code. Each color is
// force-enabled so rendering obeys the caller's flag rather than TTY
// detection.
var palette = func() []*color.Color {
	colors := make([]*color.Color, len(paletteCodes))
	for i, code := range paletteCodes {
		c := color.New(color.Bold, 38, 5, color.Attribute(code))
		c.EnableColor()
		colors[i] = c
	}
	return colors
}()

// Text renders the board as rows of two-character cells with the origin
// at the bottom left, y growing upward. Unfilled in-grid cells show a
// dot, coordinates outside the grid render blank, and every row ends
// with a newline. An empty board renders as an empty string.
//
// In colored mode each pip takes the color of its domino, so the two
// halves of a placement can be told apart from their neighbors.
func Text(b *board.Board, colored bool) string {
	lo, hi, ok := b.Bounds()
	if !ok {
		return ""
	}

	var sb strings.Builder
	for y := hi.Y; y >= lo.Y; y-- {
		for x := lo.X; x <= hi.X; x++ {
			c := board.Coord{X: x, Y: y}
			if !b.Has(c) {
				sb.WriteString("  ")
				continue
			}

			pip, filled := b.Pip(c)
			if !filled {
				sb.WriteString(". ")
				continue
			}

			digit := strconv.Itoa(pip)
			if colored {
				if idx, ok := b.DominoAt(c); ok {
					digit = palette[idx%len(palette)].Sprint(digit)
				}
			}
			sb.WriteString(digit)
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
