// Package astar provides tunable options and error definitions
// for A* search over a grid.PathMap.
package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrOptionViolation is returned by New when an invalid Option is supplied.
var ErrOptionViolation = errors.New("astar: invalid option supplied")

// Option configures a Pathfinder via functional arguments.
// If an Option is invalid (e.g. negative capacity), it is recorded
// internally and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds parameters and callbacks to customize a Pathfinder.
type Options struct {
	// Heuristic, if non-nil, overrides the map's own grid.Estimator.
	Heuristic grid.Heuristic

	// Capacity pre-sizes the scratch buffers for grids of this many cells.
	Capacity int

	// OnExpand is called each time a cell is closed, with its cost from start.
	OnExpand func(p grid.Position, g float64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - no heuristic override (the map's Estimator, or grid.Zero)
//   - no pre-sized buffers (they grow on first use)
//   - no-op OnExpand hook.
func DefaultOptions() Options {
	return Options{
		Heuristic: nil,
		Capacity:  0,
		OnExpand:  func(grid.Position, float64) {},
		err:       nil,
	}
}

// WithHeuristic forces h as the A* heuristic. h must be admissible for the
// maps it is used with, otherwise returned paths may be suboptimal.
func WithHeuristic(h grid.Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic is nil", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithCapacity pre-allocates scratch buffers for grids of n cells.
//
//	n > 0: allocate up front
//	n == 0: allocate lazily on first search
//	n < 0: invalid option → ErrOptionViolation
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: capacity cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Capacity = n
	}
}

// WithOnExpand registers a callback run whenever a cell is closed.
func WithOnExpand(fn func(p grid.Position, g float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
