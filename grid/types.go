package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the search engines.
var (
	// ErrInvalidEndpoint indicates a start or goal that is out of bounds or an obstacle.
	ErrInvalidEndpoint = errors.New("grid: endpoint is out of bounds or an obstacle")

	// ErrUnreachable indicates that no path connects start to goal.
	ErrUnreachable = errors.New("grid: goal is unreachable from start")

	// ErrNoImprovement indicates that no neighbor has a lower distance than the queried cell.
	ErrNoImprovement = errors.New("grid: no neighbor improves on the current distance")

	// ErrDimensionMismatch indicates that an engine and a map disagree on grid size.
	ErrDimensionMismatch = errors.New("grid: engine and map dimensions differ")

	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")

	// ErrNilMap indicates that a nil PathMap was supplied.
	ErrNilMap = errors.New("grid: path map is nil")

	// ErrNegativeCost indicates a negative or NaN step cost reported by a PathMap.
	ErrNegativeCost = errors.New("grid: negative step cost")

	// ErrInvalidStep indicates two consecutive path cells that are not neighbors.
	ErrInvalidStep = errors.New("grid: invalid path step")
)

// Neighbor is a cell reachable in one move together with the cost of that move.
type Neighbor struct {
	Pos  Position
	Cost float64
}

// PathMap is the navigability capability consumed by the search engines.
//
// Size must stay fixed for the duration of a query. IsObstacle may assume p
// is in bounds. Neighbors appends the valid moves out of p to buf[:0] and
// returns the extended slice; it must never yield obstacles or cells outside
// the grid.
type PathMap interface {
	Size() (width, height int)
	IsObstacle(p Position) bool
	Neighbors(p Position, buf []Neighbor) []Neighbor
}

// Estimator is implemented by maps that can estimate the remaining cost
// between two cells. The estimate must never exceed the true cost.
type Estimator interface {
	Estimate(a, b Position) float64
}

// InBounds reports whether p lies inside m.
func InBounds(m PathMap, p Position) bool {
	w, h := m.Size()
	return p.In(w, h)
}

// CheckSize returns ErrDimensionMismatch unless m is width×height.
func CheckSize(m PathMap, width, height int) error {
	w, h := m.Size()
	if w != width || h != height {
		return fmt.Errorf("%w: want %dx%d, map is %dx%d", ErrDimensionMismatch, width, height, w, h)
	}
	return nil
}
