package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mxovd/pips-solver/internal/generator"
	"github.com/mxovd/pips-solver/internal/puzzle"
	"github.com/mxovd/pips-solver/internal/render"
)

var (
	genWidth    int
	genHeight   int
	genRegions  int
	genSeed     int64
	genTimeout  time.Duration
	genSolvable bool
	genOut      string
	genShow     bool
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a puzzle",
		Long: `Generate a solvable puzzle: dominoes are laid over the grid, the
cells are split into contiguous regions, and each region's rule is
derived from the values actually laid.

Examples:
  pips-solver gen
  pips-solver gen --width 6 --height 4 --regions 7
  pips-solver gen --seed 42 --out puzzle.yaml --show`,
		RunE: runGen,
	}

	genCmd.Flags().IntVar(&genWidth, "width", generator.DefaultWidth, "Grid width in cells")
	genCmd.Flags().IntVar(&genHeight, "height", generator.DefaultHeight, "Grid height in cells")
	genCmd.Flags().IntVar(&genRegions, "regions", generator.DefaultRegions, "Number of rule regions")
	genCmd.Flags().Int64Var(&genSeed, "seed", 0, "Random seed (0 = time-based)")
	genCmd.Flags().DurationVar(&genTimeout, "timeout", 10*time.Second, "Generation timeout")
	genCmd.Flags().BoolVar(&genSolvable, "solvable", true, "Re-solve the puzzle before emitting it")
	genCmd.Flags().StringVarP(&genOut, "out", "o", "", "Output file, .json or .yaml (stdout JSON when empty)")
	genCmd.Flags().BoolVar(&genShow, "show", false, "Print the generating solution to stderr")

	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	gen := generator.New(&generator.Options{
		Width:          genWidth,
		Height:         genHeight,
		Regions:        genRegions,
		Seed:           genSeed,
		Timeout:        genTimeout,
		EnsureSolvable: genSolvable,
	})

	doc, solution, err := gen.Generate()
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if genShow {
		fmt.Fprint(cmd.ErrOrStderr(), render.Text(solution, false))
	}

	if genOut == "" {
		return puzzle.EncodeJSON(cmd.OutOrStdout(), doc)
	}
	if err := puzzle.Save(genOut, doc); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Generated %dx%d puzzle in %s\n", genWidth, genHeight, genOut)
	return nil
}
