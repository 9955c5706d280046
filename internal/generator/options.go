package generator

import "time"

// Options configures puzzle generation behavior.
type Options struct {
	Width          int           // Width of the grid in cells
	Height         int           // Height of the grid in cells
	Regions        int           // Number of rule regions to partition the grid into
	Seed           int64         // Seed for reproducible puzzles (0 = random)
	Timeout        time.Duration // Timeout limits generation time
	EnsureSolvable bool          // EnsureSolvable re-solves the emitted puzzle
}

// DefaultOptions returns standard generator options.
func DefaultOptions() *Options {
	return &Options{
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		Regions:        DefaultRegions,
		Seed:           0,
		Timeout:        10 * time.Second,
		EnsureSolvable: true,
	}
}
