// Package grid defines the shared data model of gridpath: integer cell
// positions, the PathMap capability consumed by every search engine,
// admissible heuristics and the sentinel error taxonomy.
//
// What:
//
//   - Position is a 2D integer coordinate (X = column, Y = row) with a
//     row-major linear index, Index(width) = Y*width + X.
//   - PathMap is the read-only navigability interface: grid size, obstacle
//     test and neighbor enumeration with traversal costs.
//   - Estimator is an optional PathMap extension supplying a heuristic
//     matched to the map's own cost model.
//   - Heuristic functions: Zero, Manhattan, Chebyshev, Octile, Euclidean.
//   - PathCost validates a path step by step and sums its cost.
//
// Neighbor enumeration:
//
//	Neighbors(p, buf) appends into buf[:0] and returns the result, so an
//	engine can reuse one buffer for a whole search. Obstacles and
//	out-of-bounds cells are never yielded. A Cost of +Inf marks a move as
//	impassable; a negative or NaN Cost is reported as ErrNegativeCost.
//
// Errors:
//
//   - ErrInvalidEndpoint:   start or goal is out of bounds or an obstacle.
//   - ErrUnreachable:       the search exhausted without connecting start to goal.
//   - ErrNoImprovement:     no neighbor lowers the distance (or the cell is unreached).
//   - ErrDimensionMismatch: engine and map were sized inconsistently.
//   - ErrOutOfBounds:       a position lies outside the grid.
//   - ErrNilMap:            a nil PathMap was passed.
//   - ErrNegativeCost:      the map reported a negative or NaN step cost.
//   - ErrInvalidStep:       two consecutive path cells are not neighbors.
package grid
