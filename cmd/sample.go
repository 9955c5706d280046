package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mxovd/pips-solver/internal/puzzle"
)

var listSamples bool

func init() {
	sampleCmd := &cobra.Command{
		Use:   "sample [name]",
		Short: "Print a built-in sample puzzle",
		Long: `Sample prints one of the built-in puzzles as JSON, ready to save
and solve. Without a name it lists the available puzzles.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSample,
	}

	sampleCmd.Flags().BoolVarP(&listSamples, "list", "l", false, "List sample names")

	rootCmd.AddCommand(sampleCmd)
}

func runSample(cmd *cobra.Command, args []string) error {
	if listSamples || len(args) == 0 {
		for _, name := range puzzle.SampleNames() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	}

	doc, ok := puzzle.Sample(args[0])
	if !ok {
		return fmt.Errorf("unknown sample %q (run with --list for names)", args[0])
	}
	return puzzle.EncodeJSON(cmd.OutOrStdout(), doc)
}
