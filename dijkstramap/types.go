// Package dijkstramap defines core types and configuration options
// for multi-goal distance fields over grid maps.
package dijkstramap

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// Unreached is the distance of every cell no goal can reach. It is larger
// than any achievable cost.
const Unreached = math.MaxFloat64

// Sentinel errors returned by the Dijkstra map implementation.
var (
	// ErrEmptyGrid indicates a non-positive field width or height.
	ErrEmptyGrid = errors.New("dijkstramap: field must have at least one row and one column")

	// ErrBadGoalCost indicates a NaN or infinite goal base cost.
	ErrBadGoalCost = errors.New("dijkstramap: goal cost must be finite")

	// ErrOptionViolation indicates an invalid functional option passed to New.
	ErrOptionViolation = errors.New("dijkstramap: invalid option supplied")
)

// Goal is a weighted goal cell: Cost is the distance value the field takes
// at Pos. Lower-cost goals read as closer.
type Goal struct {
	Pos  grid.Position
	Cost float64
}

// Step is a neighboring cell and its distance in the field.
type Step struct {
	Pos      grid.Position
	Distance float64
}

// Options configures the behavior of a Map.
//
// MaxDistance – cells whose distance would exceed this value are left Unreached.
//
//	Must be ≥ 0. Default is Unreached (no cap).
//
// OnSettle – called each time a cell's distance is finalized during a flood.
type Options struct {
	MaxDistance float64
	OnSettle    func(p grid.Position, distance float64)

	err error
}

// Option represents a functional option for configuring a Map.
type Option func(*Options)

// DefaultOptions returns an Options struct initialized with no distance cap
// and a no-op OnSettle hook.
func DefaultOptions() Options {
	return Options{
		MaxDistance: Unreached,
		OnSettle:    func(grid.Position, float64) {},
	}
}

// WithMaxDistance caps the flood: cells farther than d from every goal stay
// Unreached. Negative or NaN values cause ErrOptionViolation.
func WithMaxDistance(d float64) Option {
	return func(o *Options) {
		if d < 0 || math.IsNaN(d) {
			o.err = fmt.Errorf("%w: MaxDistance must be non-negative (%v)", ErrOptionViolation, d)
			return
		}
		o.MaxDistance = d
	}
}

// WithOnSettle registers a callback run whenever a cell's distance is finalized.
func WithOnSettle(fn func(p grid.Position, distance float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}
