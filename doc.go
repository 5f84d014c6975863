// Package gridpath is a pathfinding toolkit for 2D grid worlds: roguelike
// dungeons, tactics boards, tile maps and anything else where movement is
// a step between neighboring cells.
//
// What is gridpath?
//
//	A small, deterministic engine pack that brings together:
//		• A*: one agent, one destination, reusable scratch buffers
//		• Dijkstra maps: one multi-goal flood shared by many agents
//		• Flee maps: inverted Dijkstra maps that lead away from goals
//		• A dense reference grid with terrain weights, 4/8-connectivity,
//		  corner-cutting control, regions and wall breaching
//
// Why gridpath?
//
//   - Map-agnostic: engines consume the grid.PathMap capability, never a
//     concrete grid type
//   - Deterministic: ties are broken by cost and row-major order, so the
//     same query always yields the same path
//   - Allocation-aware: engines keep and O(1)-clear their buffers between calls
//   - Observable: hooks (OnExpand, OnSettle) for instrumentation
//
// Everything is organized under four packages:
//
//	grid/        Position, PathMap, heuristics, path validation & shared errors
//	astar/       A* Pathfinder and reachability flood
//	dijkstramap/ multi-goal distance fields, descent, flee maps
//	gridmap/     dense GridMap implementing grid.PathMap, plus gonum export
//
// Quick ASCII example:
//
//	S . # . G
//	. . # . .
//	. . . . .
//
//	A* routes S→G under the wall; a Dijkstra map seeded at G lets any
//	number of agents walk downhill to it.
//
// See examples/ for a runnable dungeon walkthrough.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
