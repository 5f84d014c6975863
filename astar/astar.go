package astar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/frontier"
)

// Pathfinder runs A* searches and keeps its scratch buffers between calls
// so repeated queries do not reallocate. Buffers are indexed by row-major
// cell index and invalidated in O(1) per call with a generation stamp.
//
// A Pathfinder is not safe for concurrent use.
type Pathfinder struct {
	opts  Options
	queue *frontier.Queue

	gen    uint32
	stamp  []uint32  // cell i holds data for this call iff stamp[i] == gen
	g      []float64 // best known cost from start
	parent []int     // predecessor index, -1 for none
	closed []bool

	touched []int // cells stamped this call, in discovery order
	nbuf    []grid.Neighbor

	width    int
	expanded int
	cost     float64
}

// New builds a Pathfinder, applying any number of functional Options.
// Returns ErrOptionViolation for bad options.
func New(opts ...Option) (*Pathfinder, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	pf := &Pathfinder{
		opts:  o,
		queue: frontier.New(),
		cost:  math.Inf(1),
	}
	pf.grow(o.Capacity)

	return pf, nil
}

// FindPath returns a minimal-cost path from start to goal on m, both ends
// included and in start-to-goal order.
//
// Returns grid.ErrNilMap for a nil map, grid.ErrInvalidEndpoint if start or
// goal is out of bounds or an obstacle, grid.ErrUnreachable if no path
// exists and grid.ErrNegativeCost if m reports a negative step cost. After
// any error the Pathfinder is ready for the next call.
//
// The heuristic is, in order of preference, the WithHeuristic option, m's
// grid.Estimator, or grid.Zero. Frontier ties on f go to the larger g, then
// to the lower row-major index.
//
// Complexity:
//
//   - Time:  O(C·d·log C), C = cells expanded, d = neighbors per cell
//   - Space: O(W·H) scratch, reused across calls
func (pf *Pathfinder) FindPath(m grid.PathMap, start, goal grid.Position) ([]grid.Position, error) {
	if m == nil {
		return nil, grid.ErrNilMap
	}
	w, h := m.Size()
	pf.reset(w, h)

	if err := checkEndpoint(m, start, "start"); err != nil {
		return nil, err
	}
	if err := checkEndpoint(m, goal, "goal"); err != nil {
		return nil, err
	}

	si, gi := start.Index(w), goal.Index(w)
	pf.touch(si)
	pf.g[si] = 0
	if start == goal {
		pf.cost = 0
		return []grid.Position{start}, nil
	}

	heuristic := pf.heuristicFor(m)
	pf.queue.Push(frontier.Entry{Index: si, Priority: heuristic(start, goal), Cost: 0})

	for {
		e, ok := pf.queue.Pop()
		if !ok {
			break
		}
		u := e.Index
		// stale entry: a cheaper route was recorded after this push
		if pf.closed[u] || e.Cost > pf.g[u] {
			continue
		}
		pf.closed[u] = true
		pf.expanded++
		up := grid.FromIndex(u, w)
		pf.opts.OnExpand(up, e.Cost)

		if u == gi {
			pf.cost = e.Cost
			return pf.reconstruct(gi), nil
		}

		pf.nbuf = m.Neighbors(up, pf.nbuf)
		for _, n := range pf.nbuf {
			if n.Cost < 0 || math.IsNaN(n.Cost) {
				return nil, fmt.Errorf("%w: %v→%v cost=%v", grid.ErrNegativeCost, up, n.Pos, n.Cost)
			}
			if math.IsInf(n.Cost, 1) || !n.Pos.In(w, h) {
				continue
			}
			v := n.Pos.Index(w)
			pf.touch(v)
			ng := e.Cost + n.Cost
			if ng >= pf.g[v] {
				continue
			}
			pf.g[v] = ng
			pf.parent[v] = u
			// reopen: only happens with an inconsistent heuristic
			pf.closed[v] = false
			pf.queue.Push(frontier.Entry{Index: v, Priority: ng + heuristic(n.Pos, goal), Cost: ng})
		}
	}

	return nil, fmt.Errorf("%w: %v→%v", grid.ErrUnreachable, start, goal)
}

// Visited returns every cell discovered by the last FindPath call, in
// discovery order. The start cell always comes first.
func (pf *Pathfinder) Visited() []grid.Position {
	out := make([]grid.Position, len(pf.touched))
	for i, idx := range pf.touched {
		out[i] = grid.FromIndex(idx, pf.width)
	}
	return out
}

// Expanded returns how many cells the last FindPath call closed.
func (pf *Pathfinder) Expanded() int { return pf.expanded }

// Cost returns the cost of the path found by the last FindPath call,
// or +Inf if that call failed.
func (pf *Pathfinder) Cost() float64 { return pf.cost }

func checkEndpoint(m grid.PathMap, p grid.Position, role string) error {
	if !grid.InBounds(m, p) {
		return fmt.Errorf("%w: %s %v is out of bounds", grid.ErrInvalidEndpoint, role, p)
	}
	if m.IsObstacle(p) {
		return fmt.Errorf("%w: %s %v is an obstacle", grid.ErrInvalidEndpoint, role, p)
	}
	return nil
}

func (pf *Pathfinder) heuristicFor(m grid.PathMap) grid.Heuristic {
	if pf.opts.Heuristic != nil {
		return pf.opts.Heuristic
	}
	if est, ok := m.(grid.Estimator); ok {
		return est.Estimate
	}
	return grid.Zero
}

// reset prepares the scratch buffers for a width×height search.
func (pf *Pathfinder) reset(width, height int) {
	pf.grow(width * height)
	pf.gen++
	if pf.gen == 0 {
		// stamp counter wrapped: forget every old stamp
		clear(pf.stamp)
		pf.gen = 1
	}
	pf.width = width
	pf.touched = pf.touched[:0]
	pf.queue.Reset()
	pf.expanded = 0
	pf.cost = math.Inf(1)
}

// grow ensures the per-cell buffers hold at least n cells.
func (pf *Pathfinder) grow(n int) {
	if n <= len(pf.stamp) {
		return
	}
	pf.stamp = make([]uint32, n)
	pf.g = make([]float64, n)
	pf.parent = make([]int, n)
	pf.closed = make([]bool, n)
	pf.gen = 0
}

// touch lazily initialises cell i for the current call.
func (pf *Pathfinder) touch(i int) {
	if pf.stamp[i] == pf.gen {
		return
	}
	pf.stamp[i] = pf.gen
	pf.g[i] = math.Inf(1)
	pf.parent[i] = -1
	pf.closed[i] = false
	pf.touched = append(pf.touched, i)
}

// reconstruct walks predecessors back from the goal and reverses them.
func (pf *Pathfinder) reconstruct(goal int) []grid.Position {
	var path []grid.Position
	for at := goal; at >= 0; at = pf.parent[at] {
		path = append(path, grid.FromIndex(at, pf.width))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
