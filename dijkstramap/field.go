package dijkstramap

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/frontier"
)

// Exits returns every valid neighbor of p with its field distance, lowest
// (most desirable) first. Unreached neighbors are included and sort last;
// equal distances keep m's neighbor order.
func (md *Map) Exits(p grid.Position, m grid.PathMap) ([]Step, error) {
	if m == nil {
		return nil, grid.ErrNilMap
	}
	if err := grid.CheckSize(m, md.width, md.height); err != nil {
		return nil, err
	}
	if !p.In(md.width, md.height) {
		return nil, fmt.Errorf("%w: %v", grid.ErrOutOfBounds, p)
	}
	md.nbuf = m.Neighbors(p, md.nbuf)
	out := make([]Step, 0, len(md.nbuf))
	for _, n := range md.nbuf {
		if math.IsInf(n.Cost, 1) || !n.Pos.In(md.width, md.height) {
			continue
		}
		out = append(out, Step{Pos: n.Pos, Distance: md.values[n.Pos.Index(md.width)]})
	}
	slices.SortStableFunc(out, func(a, b Step) int { return cmp.Compare(a.Distance, b.Distance) })
	return out, nil
}

// Apply transforms every reached cell in place; Unreached cells are left
// alone. Multiplying by a negative factor and calling Rescan turns an
// approach field into a flee field.
func (md *Map) Apply(op func(float64) float64) {
	for i, v := range md.values {
		if v != Unreached {
			md.values[i] = op(v)
		}
	}
}

// Rescan re-relaxes the field from its current values without resetting
// them: every reached, passable cell is a source seeded with its own value.
// Cells that became obstacles, or whose value now exceeds MaxDistance, are
// cleared to Unreached. The stale flag is not changed; goal edits still
// need Recalculate.
//
// Returns the same errors as Recalculate.
func (md *Map) Rescan(m grid.PathMap) error {
	if m == nil {
		return grid.ErrNilMap
	}
	if err := grid.CheckSize(m, md.width, md.height); err != nil {
		return err
	}

	md.queue.Reset()
	for i, v := range md.values {
		if v == Unreached {
			continue
		}
		if v > md.opts.MaxDistance || m.IsObstacle(grid.FromIndex(i, md.width)) {
			md.values[i] = Unreached
			continue
		}
		md.queue.Push(frontier.Entry{Index: i, Priority: v, Cost: v})
	}

	if err := md.relax(m); err != nil {
		md.fill(Unreached)
		md.stale = true
		return err
	}
	return nil
}

// Values returns a row-major copy of the field.
func (md *Map) Values() []float64 {
	return slices.Clone(md.values)
}
