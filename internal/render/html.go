package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mxovd/pips-solver/internal/board"
)

// dominoCSS maps each palette slot to a background color matching the
// terminal palette's 256-color codes.
var dominoCSS = [...]string{
	"#ff0000", "#ff5f00", "#ffff00", "#00ff00", "#00ffff", "#005fff",
	"#af00ff", "#ff00ff", "#ff8700", "#87ff00", "#875fff", "#808080",
}

// Section pairs a heading with a board on an HTML page.
type Section struct {
	Title string
	Board *board.Board
}

// WriteHTML writes a standalone page with one section per board. Cells
// covered by the same domino share a background color.
func WriteHTML(w io.Writer, title string, sections []Section) error {
	if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
            background-color: #f5f5f5;
        }
        .page {
            page-break-after: always;
            background-color: white;
            padding: 40px;
            margin-bottom: 20px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        .page:last-child {
            page-break-after: auto;
        }
        h1 {
            color: #333;
            margin-bottom: 30px;
            text-align: center;
        }
        .pips-grid {
            display: inline-block;
            margin: 20px auto;
            font-family: 'Courier New', monospace;
            font-size: 24px;
        }
        .pips-grid table {
            border-collapse: collapse;
            margin: 0 auto;
        }
        .pips-grid td {
            width: 40px;
            height: 40px;
            text-align: center;
            vertical-align: middle;
            border: 1px solid #333;
            padding: 0;
            font-weight: bold;
        }
        .pips-grid td.empty {
            color: #ccc;
        }
        .pips-grid td.void {
            border: none;
        }
%s        @media print {
            body {
                background-color: white;
            }
            .page {
                margin-bottom: 0;
                box-shadow: none;
            }
        }
    </style>
</head>
<body>
`, title, dominoStyles()); err != nil {
		return err
	}

	for _, s := range sections {
		if _, err := fmt.Fprintf(w, `    <div class="page">
        <h1>%s</h1>
        %s
    </div>
`, s.Title, boardToHTML(s.Board)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(w, "</body>\n</html>\n")
	return err
}

// dominoStyles emits one CSS class per palette slot.
func dominoStyles() string {
	var sb strings.Builder
	for i, bg := range dominoCSS {
		fmt.Fprintf(&sb, "        .pips-grid td.d%d {\n            background-color: %s;\n        }\n", i, bg)
	}
	return sb.String()
}

// boardToHTML converts a board to an HTML table, bottom row last.
func boardToHTML(b *board.Board) string {
	lo, hi, ok := b.Bounds()
	if !ok {
		return `<div class="pips-grid"><table></table></div>`
	}

	var sb strings.Builder
	sb.WriteString(`<div class="pips-grid"><table>`)

	for y := hi.Y; y >= lo.Y; y-- {
		sb.WriteString("<tr>")
		for x := lo.X; x <= hi.X; x++ {
			c := board.Coord{X: x, Y: y}
			switch {
			case !b.Has(c):
				sb.WriteString(`<td class="void"></td>`)
			default:
				pip, filled := b.Pip(c)
				if !filled {
					sb.WriteString(`<td class="empty">&middot;</td>`)
					continue
				}
				class := ""
				if idx, ok := b.DominoAt(c); ok {
					class = fmt.Sprintf("d%d", idx%len(dominoCSS))
				}
				fmt.Fprintf(&sb, `<td class="%s">%d</td>`, class, pip)
			}
		}
		sb.WriteString("</tr>")
	}

	sb.WriteString("</table></div>")
	return sb.String()
}
