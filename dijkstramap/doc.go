// Package dijkstramap implements multi-goal distance fields ("Dijkstra maps")
// on grid maps.
//
// Overview:
//
//   - A Map stores, for every cell, the cheapest cost of reaching it from the
//     nearest weighted goal. Any number of agents can then descend the field
//     with NextLowest, one neighbor at a time, instead of each running its
//     own search.
//   - Goals carry a base cost: a goal with base 5 reads as five units farther
//     away than one with base 0, which lets callers rank destinations.
//   - Apply and Rescan reshape an existing field; multiplying by a negative
//     factor (the classic ×-1.2) and rescanning yields a flee map whose
//     descent leads away from the goals.
//
// Algorithm:
//
//   - Multi-source Dijkstra: every passable goal is seeded with its base cost,
//     then cells are settled in increasing distance with lazy decrease-key.
//   - Obstacles are never seeded or entered and stay at Unreached, as do
//     cells beyond WithMaxDistance.
//   - Rescan seeds every reached cell with its current value, so the result
//     is the fixpoint min(v(c), v(n) + cost(n→c)) over the whole field.
//
// Staleness:
//
//   - AddGoal, RemoveGoal and ClearGoals only edit the goal set and mark the
//     field stale; nothing is recomputed until Recalculate.
//   - The field never observes map edits on its own either.
//
// Complexity:
//
//   - Recalculate, Rescan: O(W·H·d·log(W·H)) time, O(W·H) memory.
//   - NextLowest, Exits:   O(d).
//
// Errors:
//
//   - ErrEmptyGrid:               non-positive field size.
//   - ErrOptionViolation:         invalid functional option passed to New.
//   - ErrBadGoalCost:             NaN or infinite goal base cost.
//   - grid.ErrOutOfBounds:        goal or query position outside the field.
//   - grid.ErrDimensionMismatch:  map size differs from the field size.
//   - grid.ErrNoImprovement:      no neighbor is lower than the queried cell.
//   - grid.ErrNegativeCost:       the map reported a negative step cost.
//   - grid.ErrNilMap:             nil map.
//
// Thread safety:
//
//   - A Map is mutable; callers must serialize access.
package dijkstramap
