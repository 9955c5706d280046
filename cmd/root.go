// Package cmd implements the pips-solver command line interface.
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.StandardLogger()

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "pips-solver",
	Short: "Solve and generate domino placement puzzles",
	Long: `pips-solver works with grid puzzles where dominoes cover pairs of
orthogonally adjacent cells and every rule region must hold: sums,
comparisons, or all-equal groups.

Puzzles load from JSON or YAML files; the sample command prints
ready-made examples of the format.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
