package gridmap

import "github.com/katalvlaran/gridpath/grid"

// Regions finds all contiguous regions of passable cells under the map's
// own movement rules (connectivity and corner cutting).
// Returns a slice of regions; each region lists its cells in BFS order,
// regions are ordered by their first cell in row-major order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for labels and output.
func (gm *GridMap) Regions() [][]grid.Position {
	total := gm.Width * gm.Height
	seen := make([]bool, total)
	var regions [][]grid.Position
	var buf []grid.Neighbor

	for i0 := 0; i0 < total; i0++ {
		if gm.obstacles[i0] || seen[i0] {
			continue
		}
		// BFS to collect region
		queue := []grid.Position{grid.FromIndex(i0, gm.Width)}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			buf = gm.Neighbors(queue[qi], buf)
			for _, n := range buf {
				vi := n.Pos.Index(gm.Width)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, n.Pos)
				}
			}
		}
		regions = append(regions, queue)
	}
	return regions
}

// Connected reports whether a and b are passable cells of the same region.
// Labels are computed once and reused until an obstacle changes, so repeated
// calls cost O(1).
func (gm *GridMap) Connected(a, b grid.Position) bool {
	if gm.IsObstacle(a) || gm.IsObstacle(b) {
		return false
	}
	if gm.labels == nil {
		gm.labels = make([]int, gm.Width*gm.Height)
		for i := range gm.labels {
			gm.labels[i] = -1
		}
		for id, region := range gm.Regions() {
			for _, p := range region {
				gm.labels[p.Index(gm.Width)] = id
			}
		}
	}
	return gm.labels[a.Index(gm.Width)] == gm.labels[b.Index(gm.Width)]
}
