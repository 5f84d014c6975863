// Package gridmap treats a dense 2D grid of cells as a navigable map for
// the gridpath search engines.
//
// What:
//
//   - GridMap implements grid.PathMap and grid.Estimator over a rectangular grid.
//   - Four- or eight-connectivity (Conn4 or Conn8) with separate orthogonal and diagonal costs.
//   - Per-cell obstacles and terrain weights (a multiplier on the cost of entering a cell).
//   - Identifies connected regions of passable cells.
//   - Computes minimal obstacle clearings (0-1 BFS) to connect two cells.
//   - Converts to a gonum *simple.WeightedDirectedGraph for arbitrary graph algorithms.
//
// Why:
//
//   - Game maps: walkable area detection, cheap "is it reachable at all" checks.
//   - Level design: how many walls must be knocked down to open a route.
//   - Interop: cross-checking results against gonum/graph/path.
//
// Complexity:
//
//   - Neighbors:  O(d), d = 4 or 8.
//   - Regions:    O(W×H×d), Memory: O(W×H).
//   - Breach:     O(W×H×d), Memory: O(W×H).
//   - ToGraph:    O(W×H×d), Memory: O(W×H + E).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//   - GridOptions.OrthogonalCost / DiagonalCost: base step costs.
//   - GridOptions.CutCorners: allow diagonal steps that squeeze past an obstacle.
//   - GridOptions.ObstacleThreshold: minimum From2D value considered an obstacle.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCost: a move cost or terrain weight is negative, zero where forbidden, or not finite.
//   - grid.ErrOutOfBounds: a position lies outside the grid.
package gridmap
