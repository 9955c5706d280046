package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mxovd/pips-solver/cmd"
	"github.com/mxovd/pips-solver/internal/solver"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, solver.ErrNoSolution) {
			fmt.Fprintln(os.Stderr, "No solution found.")
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
