// Package astar implements A* shortest-path search on grid maps.
//
// Overview:
//
//   - A Pathfinder finds a minimal-cost path between two cells of any
//     grid.PathMap, given an admissible heuristic.
//   - It keeps its frontier, cost and predecessor buffers between calls and
//     clears them in O(1), so one Pathfinder can serve many queries per tick
//     without reallocating.
//   - Reachable floods the map from an origin and reports every reachable cell.
//
// When to use:
//
//   - One agent, one destination: FindPath per query.
//   - Many agents sharing destinations: prefer package dijkstramap, which
//     amortises one flood over every agent.
//
// Algorithm:
//
//   - Classic A* with lazy decrease-key: relaxing a cell pushes a new
//     frontier entry, stale entries are skipped when popped.
//   - f = g + h; ties on f prefer the larger g (closer to the goal), then the
//     lower row-major index, so results are deterministic.
//   - The search stops when the goal is popped, which under an admissible
//     heuristic guarantees optimality.
//
// Heuristic selection:
//
//   - WithHeuristic(h) if given;
//   - otherwise the map's own grid.Estimator (gridmap.GridMap provides
//     Manhattan for Conn4 and octile for Conn8);
//   - otherwise grid.Zero, which turns A* into Dijkstra.
//
// Complexity:
//
//   - Time:  O(C·d·log C), C = expanded cells, d = neighbors per cell.
//   - Space: O(W·H) scratch, allocated once and reused.
//
// Errors:
//
//   - grid.ErrNilMap:            nil map.
//   - grid.ErrInvalidEndpoint:   start/goal (or origin) is out of bounds or an obstacle.
//   - grid.ErrUnreachable:       frontier exhausted without reaching the goal.
//   - grid.ErrNegativeCost:      the map reported a negative step cost.
//   - ErrOptionViolation:        invalid functional option passed to New.
//
// Thread safety:
//
//   - A Pathfinder owns mutable scratch state; use one per goroutine.
package astar
