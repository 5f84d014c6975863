package dijkstramap

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/frontier"
)

// Map is a fixed-size distance field: for every cell, the cost of the
// cheapest route out of the nearest weighted goal. Distances flow along
// cost(goal→…→cell) as reported by the PathMap.
//
// The field is only meaningful after Recalculate; any goal change marks it
// stale (see Stale), and obstacle changes on the PathMap are not observed
// until the next Recalculate. A Map is not safe for concurrent use.
type Map struct {
	width, height int
	opts          Options

	values []float64
	goals  map[grid.Position]float64
	stale  bool

	queue *frontier.Queue
	nbuf  []grid.Neighbor
}

// New returns a width×height field with every cell Unreached and no goals.
// Returns ErrEmptyGrid for non-positive dimensions and ErrOptionViolation
// for bad options.
func New(width, height int, opts ...Option) (*Map, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, width, height)
	}
	md := &Map{
		width:  width,
		height: height,
		opts:   cfg,
		values: make([]float64, width*height),
		goals:  make(map[grid.Position]float64),
		queue:  frontier.New(),
	}
	md.fill(Unreached)

	return md, nil
}

// Size returns the field dimensions.
func (md *Map) Size() (width, height int) { return md.width, md.height }

// Stale reports whether goals changed since the last successful Recalculate.
func (md *Map) Stale() bool { return md.stale }

// AddGoal registers p as a goal with the given base cost, overwriting any
// previous cost for p. The field is not recomputed.
func (md *Map) AddGoal(p grid.Position, cost float64) error {
	if !p.In(md.width, md.height) {
		return fmt.Errorf("%w: goal %v", grid.ErrOutOfBounds, p)
	}
	if math.IsNaN(cost) || math.IsInf(cost, 0) {
		return fmt.Errorf("%w: goal %v cost=%v", ErrBadGoalCost, p, cost)
	}
	md.goals[p] = cost
	md.stale = true
	return nil
}

// RemoveGoal unregisters p. Removing an unknown goal is a no-op.
func (md *Map) RemoveGoal(p grid.Position) {
	if _, ok := md.goals[p]; ok {
		delete(md.goals, p)
		md.stale = true
	}
}

// ClearGoals unregisters every goal.
func (md *Map) ClearGoals() {
	if len(md.goals) > 0 {
		clear(md.goals)
		md.stale = true
	}
}

// Goals returns the registered goals in row-major order.
func (md *Map) Goals() []Goal {
	out := make([]Goal, 0, len(md.goals))
	for p, c := range md.goals {
		out = append(out, Goal{Pos: p, Cost: c})
	}
	slices.SortFunc(out, func(a, b Goal) int {
		return cmp.Compare(a.Pos.Index(md.width), b.Pos.Index(md.width))
	})
	return out
}

// Recalculate rebuilds the whole field from the current goals.
//
// Every cell is reset to Unreached, each goal that is not an obstacle is
// seeded with its base cost, then a multi-source Dijkstra relaxation runs
// until the frontier is empty, never stepping past MaxDistance. Obstacles are
// never relaxed into and stay Unreached, as do goals placed on obstacles
// and goals whose base cost exceeds MaxDistance.
//
// Returns grid.ErrNilMap, grid.ErrDimensionMismatch if m is not the field's
// size, or grid.ErrNegativeCost if m reports a negative step; on a relaxation
// failure the field is left all-Unreached and stale.
//
// Complexity:
//
//   - Time:  O(W·H·d·log(W·H))
//   - Space: O(W·H·d) worst-case frontier (lazy decrease-key)
func (md *Map) Recalculate(m grid.PathMap) error {
	if m == nil {
		return grid.ErrNilMap
	}
	if err := grid.CheckSize(m, md.width, md.height); err != nil {
		return err
	}

	md.fill(Unreached)
	md.queue.Reset()
	for p, c := range md.goals {
		if c > md.opts.MaxDistance || m.IsObstacle(p) {
			continue
		}
		i := p.Index(md.width)
		md.values[i] = c
		md.queue.Push(frontier.Entry{Index: i, Priority: c, Cost: c})
	}

	if err := md.relax(m); err != nil {
		md.fill(Unreached)
		md.stale = true
		return err
	}
	md.stale = false
	return nil
}

// DistanceAt returns the field value at p, or Unreached when p is outside the field.
func (md *Map) DistanceAt(p grid.Position) float64 {
	if !p.In(md.width, md.height) {
		return Unreached
	}
	return md.values[p.Index(md.width)]
}

// NextLowest returns the neighbor of p with the strictly lowest distance,
// provided it is lower than p's own. This is one step of descent toward
// the nearest weighted goal; ties go to the first such neighbor in m's order.
//
// Returns grid.ErrNoImprovement when p is Unreached or at a local minimum,
// grid.ErrOutOfBounds when p lies outside the field, grid.ErrNilMap and
// grid.ErrDimensionMismatch for a bad map.
//
// Complexity: O(d).
func (md *Map) NextLowest(p grid.Position, m grid.PathMap) (grid.Position, error) {
	if m == nil {
		return grid.Position{}, grid.ErrNilMap
	}
	if err := grid.CheckSize(m, md.width, md.height); err != nil {
		return grid.Position{}, err
	}
	if !p.In(md.width, md.height) {
		return grid.Position{}, fmt.Errorf("%w: %v", grid.ErrOutOfBounds, p)
	}
	best := md.values[p.Index(md.width)]
	if best == Unreached {
		return grid.Position{}, fmt.Errorf("%w: %v is unreached", grid.ErrNoImprovement, p)
	}

	var next grid.Position
	found := false
	md.nbuf = m.Neighbors(p, md.nbuf)
	for _, n := range md.nbuf {
		if math.IsInf(n.Cost, 1) || !n.Pos.In(md.width, md.height) {
			continue
		}
		if v := md.values[n.Pos.Index(md.width)]; v < best {
			best, next, found = v, n.Pos, true
		}
	}
	if !found {
		return grid.Position{}, fmt.Errorf("%w: %v is a local minimum", grid.ErrNoImprovement, p)
	}
	return next, nil
}

// relax drains the frontier, settling cells in increasing distance order.
func (md *Map) relax(m grid.PathMap) error {
	for {
		e, ok := md.queue.Pop()
		if !ok {
			return nil
		}
		u := e.Index
		// stale heap entry: a lower distance was recorded after this push
		if e.Priority > md.values[u] {
			continue
		}
		up := grid.FromIndex(u, md.width)
		md.opts.OnSettle(up, e.Priority)

		md.nbuf = m.Neighbors(up, md.nbuf)
		for _, n := range md.nbuf {
			if n.Cost < 0 || math.IsNaN(n.Cost) {
				return fmt.Errorf("%w: %v→%v cost=%v", grid.ErrNegativeCost, up, n.Pos, n.Cost)
			}
			if math.IsInf(n.Cost, 1) || !n.Pos.In(md.width, md.height) {
				continue
			}
			cand := e.Priority + n.Cost
			if cand > md.opts.MaxDistance {
				continue
			}
			v := n.Pos.Index(md.width)
			if cand < md.values[v] {
				md.values[v] = cand
				md.queue.Push(frontier.Entry{Index: v, Priority: cand, Cost: cand})
			}
		}
	}
}

func (md *Map) fill(v float64) {
	for i := range md.values {
		md.values[i] = v
	}
}
