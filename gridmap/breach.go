package gridmap

import (
	"container/list"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Breach finds a route from a to b that passes through the fewest obstacle
// cells, i.e. the minimum number of walls to clear to connect them.
// Returns the route (a and b included) and the number of obstacle cells on it.
//
// Behavior:
//  1. Validate that both cells are in bounds.
//  2. 0–1‐BFS from a over every in-bounds cell using the map's connectivity:
//     • Moving into a passable cell → cost 0
//     • Moving into an obstacle     → cost 1
//  3. Skip superseded deque entries; stop when b is dequeued.
//  4. Fill the route back to front from the predecessor chain.
//
// Breach ignores terrain weights and corner-cutting rules; it counts walls,
// not movement cost. If a itself is an obstacle it is counted too.
//
// Complexity: O(W·H·d), Memory: O(W·H) for wall counts and prev pointers.
func (gm *GridMap) Breach(a, b grid.Position) (route []grid.Position, walls int, err error) {
	if !gm.InBounds(a) || !gm.InBounds(b) {
		return nil, 0, fmt.Errorf("%w: breach %v→%v", grid.ErrOutOfBounds, a, b)
	}

	n := gm.Width * gm.Height
	const unseen = int(^uint(0) >> 1)
	cost := make([]int, n)
	prev := make([]int, n)
	for i := range cost {
		cost[i] = unseen
		prev[i] = -1
	}

	// wall moves go to the back of the deque, free moves to the front, so
	// entries leave in nondecreasing wall count
	type item struct{ cell, walls int }
	dq := list.New()
	src, dst := a.Index(gm.Width), b.Index(gm.Width)
	cost[src] = 0
	if gm.obstacles[src] {
		cost[src] = 1
	}
	dq.PushBack(item{src, cost[src]})

	for dq.Len() > 0 {
		it := dq.Remove(dq.Front()).(item)
		if it.walls > cost[it.cell] {
			continue // superseded by a cheaper push
		}
		if it.cell == dst {
			break
		}
		from := grid.FromIndex(it.cell, gm.Width)
		for _, d := range gm.offsets {
			to := from.Add(d)
			if !gm.InBounds(to) {
				continue
			}
			v := to.Index(gm.Width)
			w := it.walls
			if gm.obstacles[v] {
				w++
			}
			if w >= cost[v] {
				continue
			}
			cost[v], prev[v] = w, it.cell
			if w == it.walls {
				dq.PushFront(item{v, w})
			} else {
				dq.PushBack(item{v, w})
			}
		}
	}

	hops := 0
	for at := prev[dst]; at >= 0; at = prev[at] {
		hops++
	}
	route = make([]grid.Position, hops+1)
	for at, i := dst, hops; at >= 0; at, i = prev[at], i-1 {
		route[i] = grid.FromIndex(at, gm.Width)
	}
	return route, cost[dst], nil
}
