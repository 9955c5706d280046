package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mxovd/pips-solver/internal/puzzle"
	"github.com/mxovd/pips-solver/internal/render"
	"github.com/mxovd/pips-solver/internal/solver"
)

var (
	noColor      bool
	htmlFile     string
	solveTimeout time.Duration
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve <puzzle-file>",
		Short: "Solve a puzzle file",
		Long: `Solve reads a puzzle from a JSON or YAML file, searches for a
placement of every domino, and prints the solved grid.

Examples:
  pips-solver solve puzzle.json
  pips-solver solve --no-color puzzle.yaml
  pips-solver solve --html solution.html --timeout 30s puzzle.json`,
		Args: cobra.ExactArgs(1),
		RunE: runSolve,
	}

	solveCmd.Flags().BoolVarP(&noColor, "no-color", "n", false, "Disable ANSI colors in the output")
	solveCmd.Flags().StringVar(&htmlFile, "html", "", "Also write the solution to an HTML file")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 0, "Abort the search after this long (0 = no limit)")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	doc, err := puzzle.Load(args[0])
	if err != nil {
		return err
	}
	if err := doc.Check(); err != nil {
		return err
	}
	if !doc.Balanced() {
		log.Warnf("solve: %s: cell and domino counts do not match, the grid may be uncoverable", args[0])
	}

	s := solver.New(doc.Board(), &solver.Options{Timeout: solveTimeout})
	solved, err := s.Solve(cmd.Context())
	if err != nil {
		return err
	}

	stats := s.Stats()
	log.Debugf("solve: %d nodes, %d placements in %s",
		stats.Nodes, stats.Placements, stats.Duration.Round(time.Microsecond))

	fmt.Fprint(cmd.OutOrStdout(), render.Text(solved, !noColor))

	if htmlFile != "" {
		title := doc.Name
		if title == "" {
			title = args[0]
		}
		if err := writeHTMLFile(htmlFile, title, []render.Section{
			{Title: "Solution", Board: solved},
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeHTMLFile(path, title string, sections []render.Section) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create HTML file: %w", err)
	}
	defer f.Close()

	return render.WriteHTML(f, title, sections)
}
