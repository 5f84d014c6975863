package astar

import (
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/grid"
)

// Reachable floods m breadth-first from origin and returns every cell that
// can be reached, origin included. Moves with an infinite cost are treated
// as impassable; costs are otherwise ignored.
//
// Returns grid.ErrNilMap for a nil map and grid.ErrInvalidEndpoint if origin
// is out of bounds or an obstacle. Reachable shares the neighbor buffer of
// the Pathfinder but leaves the results of the last FindPath untouched.
//
// Complexity: O(R·d) time and O(R) memory, R = reachable cells.
func (pf *Pathfinder) Reachable(m grid.PathMap, origin grid.Position) (mapset.Set[grid.Position], error) {
	if m == nil {
		return mapset.Set[grid.Position]{}, grid.ErrNilMap
	}
	if err := checkEndpoint(m, origin, "origin"); err != nil {
		return mapset.Set[grid.Position]{}, err
	}

	seen := mapset.New[grid.Position]()
	seen.Put(origin)
	queue := []grid.Position{origin}
	for qi := 0; qi < len(queue); qi++ {
		pf.nbuf = m.Neighbors(queue[qi], pf.nbuf)
		for _, n := range pf.nbuf {
			if math.IsInf(n.Cost, 1) || seen.Has(n.Pos) {
				continue
			}
			seen.Put(n.Pos)
			queue = append(queue, n.Pos)
		}
	}
	return seen, nil
}
