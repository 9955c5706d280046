package solver

import (
	"context"
	"time"
)

// Options configures solver behavior.
type Options struct {
	Timeout time.Duration // Timeout limits search time (0 = no limit)
}

// DefaultOptions returns standard solver options.
func DefaultOptions() *Options {
	return &Options{
		Timeout: 0,
	}
}

// Stats reports the work a solve performed.
type Stats struct {
	Nodes      int           // Nodes counts search tree nodes visited
	Placements int           // Placements counts domino placements tried
	Duration   time.Duration // Duration is wall time spent searching
}

// makeContext derives the search context, applying the configured timeout.
func (s *Solver) makeContext(parent context.Context) (context.Context, context.CancelFunc) {
	if s.options.Timeout > 0 {
		return context.WithTimeout(parent, s.options.Timeout)
	}
	return context.WithCancel(parent)
}
