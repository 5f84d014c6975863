// Package gridmap defines core types, options, and sentinel errors
// for the gridmap subpackage of github.com/katalvlaran/gridpath.
package gridmap

import (
	"errors"
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for gridmap operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridmap: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridmap: all rows must have the same length")
	// ErrBadCost indicates a non-positive or non-finite move cost, or an invalid terrain weight.
	ErrBadCost = errors.New("gridmap: invalid move cost or weight")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for movement on the grid.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// OrthogonalCost is the base cost of an axis-aligned step.
	OrthogonalCost float64
	// DiagonalCost is the base cost of a diagonal step (Conn8 only).
	DiagonalCost float64
	// CutCorners allows a diagonal step past an obstacle on either side.
	CutCorners bool
	// ObstacleThreshold is the minimum From2D value treated as an obstacle.
	ObstacleThreshold int
}

// DefaultGridOptions returns GridOptions with default settings:
// Conn8, OrthogonalCost=1, DiagonalCost=√2, CutCorners=true, ObstacleThreshold=1.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn:              Conn8,
		OrthogonalCost:    1,
		DiagonalCost:      math.Sqrt2,
		CutCorners:        true,
		ObstacleThreshold: 1,
	}
}

// GridMap is a dense, mutable grid implementing grid.PathMap and grid.Estimator.
//
// Entering a cell costs the step's base cost (orthogonal or diagonal)
// multiplied by the cell's terrain weight (default 1). Obstacles are never
// entered. GridMap is not safe for concurrent mutation.
type GridMap struct {
	Width, Height int

	opts      GridOptions
	obstacles []bool
	weights   []float64
	minWeight float64
	offsets   []grid.Position
	estimate  grid.Heuristic

	// region labels, rebuilt lazily after any obstacle change
	labels []int
}

var (
	_ grid.PathMap   = (*GridMap)(nil)
	_ grid.Estimator = (*GridMap)(nil)
)
