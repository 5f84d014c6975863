package grid

import (
	"fmt"
	"math"
)

// StepCost returns the cost of moving from a to b on m.
// Returns ErrInvalidStep if b is not among a's neighbors.
func StepCost(m PathMap, a, b Position) (float64, error) {
	var buf [8]Neighbor
	for _, n := range m.Neighbors(a, buf[:0]) {
		if n.Pos == b {
			return n.Cost, nil
		}
	}
	return 0, fmt.Errorf("%w: %v→%v", ErrInvalidStep, a, b)
}

// PathCost validates path against m and returns its total cost.
//
// Every cell must be in bounds and passable, and every consecutive pair must
// be a neighbor transition of m with a finite cost. A single-cell path costs 0.
//
// Complexity: O(len(path)·d), d = neighbors per cell.
func PathCost(m PathMap, path []Position) (float64, error) {
	if m == nil {
		return 0, ErrNilMap
	}
	if len(path) == 0 {
		return 0, fmt.Errorf("%w: empty path", ErrInvalidStep)
	}
	for _, p := range path {
		if !InBounds(m, p) {
			return 0, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
		}
		if m.IsObstacle(p) {
			return 0, fmt.Errorf("%w: %v is an obstacle", ErrInvalidStep, p)
		}
	}
	total := 0.0
	for i := 1; i < len(path); i++ {
		c, err := StepCost(m, path[i-1], path[i])
		if err != nil {
			return 0, err
		}
		if math.IsInf(c, 1) {
			return 0, fmt.Errorf("%w: %v→%v is impassable", ErrInvalidStep, path[i-1], path[i])
		}
		total += c
	}
	return total, nil
}
