package gridmap

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// NewGridMap constructs an obstacle-free width×height GridMap.
// Returns ErrEmptyGrid if either dimension is not positive,
// ErrBadCost if opts carries an invalid move cost.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridMap(width, height int, opts GridOptions) (*GridMap, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	if !validCost(opts.OrthogonalCost) || opts.OrthogonalCost == 0 {
		return nil, fmt.Errorf("%w: orthogonal cost %v", ErrBadCost, opts.OrthogonalCost)
	}
	if opts.Conn == Conn8 && (!validCost(opts.DiagonalCost) || opts.DiagonalCost == 0) {
		return nil, fmt.Errorf("%w: diagonal cost %v", ErrBadCost, opts.DiagonalCost)
	}
	// Precompute neighbor offsets based on connectivity
	// clockwise from north: N, NE, E, SE, S, SW, W, NW
	offsets := make([]grid.Position, 0, 8)
	for i, d := range grid.Orthogonal {
		offsets = append(offsets, d)
		if opts.Conn == Conn8 {
			offsets = append(offsets, grid.Diagonal[i])
		}
	}
	n := width * height
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1
	}
	gm := &GridMap{
		Width:     width,
		Height:    height,
		opts:      opts,
		obstacles: make([]bool, n),
		weights:   weights,
		minWeight: 1,
		offsets:   offsets,
	}
	gm.rebuildEstimate()

	return gm, nil
}

// From2D constructs a GridMap from a non-empty, rectangular 2D slice indexed
// values[y][x]. Cells with value ≥ opts.ObstacleThreshold become obstacles.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
func From2D(values [][]int, opts GridOptions) (*GridMap, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	gm, err := NewGridMap(w, h, opts)
	if err != nil {
		return nil, err
	}
	for y, row := range values {
		for x, v := range row {
			gm.obstacles[gm.index(x, y)] = v >= opts.ObstacleThreshold
		}
	}

	return gm, nil
}

// Options returns the movement options the map was built with.
func (gm *GridMap) Options() GridOptions { return gm.opts }

// Size implements grid.PathMap.
func (gm *GridMap) Size() (width, height int) { return gm.Width, gm.Height }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (gm *GridMap) InBounds(p grid.Position) bool {
	return p.In(gm.Width, gm.Height)
}

// IsObstacle implements grid.PathMap. Out-of-bounds cells count as obstacles.
func (gm *GridMap) IsObstacle(p grid.Position) bool {
	if !gm.InBounds(p) {
		return true
	}
	return gm.obstacles[gm.index(p.X, p.Y)]
}

// SetObstacle marks or clears an obstacle at p.
// Returns grid.ErrOutOfBounds for positions outside the grid.
func (gm *GridMap) SetObstacle(p grid.Position, blocked bool) error {
	if !gm.InBounds(p) {
		return fmt.Errorf("%w: %v", grid.ErrOutOfBounds, p)
	}
	i := gm.index(p.X, p.Y)
	if gm.obstacles[i] != blocked {
		gm.obstacles[i] = blocked
		gm.labels = nil
	}
	return nil
}

// Weight returns the terrain weight of p (1 unless changed by SetWeight).
func (gm *GridMap) Weight(p grid.Position) float64 {
	if !gm.InBounds(p) {
		return math.Inf(1)
	}
	return gm.weights[gm.index(p.X, p.Y)]
}

// SetWeight sets the terrain multiplier applied to every step entering p.
// w must be finite and ≥ 0; otherwise ErrBadCost is returned.
func (gm *GridMap) SetWeight(p grid.Position, w float64) error {
	if !gm.InBounds(p) {
		return fmt.Errorf("%w: %v", grid.ErrOutOfBounds, p)
	}
	if !validCost(w) {
		return fmt.Errorf("%w: weight %v at %v", ErrBadCost, w, p)
	}
	gm.weights[gm.index(p.X, p.Y)] = w
	// Only ever lowered, so estimates stay admissible after a weight goes back up.
	if w < gm.minWeight {
		gm.minWeight = w
		gm.rebuildEstimate()
	}
	return nil
}

// Neighbors implements grid.PathMap. The order follows the connectivity
// offsets, clockwise from north.
// Complexity: O(d), d = 4 or 8.
func (gm *GridMap) Neighbors(p grid.Position, buf []grid.Neighbor) []grid.Neighbor {
	buf = buf[:0]
	for _, d := range gm.offsets {
		q := p.Add(d)
		if !gm.InBounds(q) {
			continue
		}
		qi := gm.index(q.X, q.Y)
		if gm.obstacles[qi] {
			continue
		}
		step := gm.opts.OrthogonalCost
		if d.X != 0 && d.Y != 0 {
			if !gm.opts.CutCorners &&
				(gm.obstacles[gm.index(q.X, p.Y)] || gm.obstacles[gm.index(p.X, q.Y)]) {
				continue
			}
			step = gm.opts.DiagonalCost
		}
		buf = append(buf, grid.Neighbor{Pos: q, Cost: step * gm.weights[qi]})
	}
	return buf
}

// Estimate implements grid.Estimator: Manhattan under Conn4, octile under
// Conn8 (Chebyshev when diagonals are cheaper than orthogonal steps), scaled
// by the lowest terrain weight ever set.
func (gm *GridMap) Estimate(a, b grid.Position) float64 {
	return gm.estimate(a, b)
}

func (gm *GridMap) rebuildEstimate() {
	orth := gm.opts.OrthogonalCost * gm.minWeight
	if gm.opts.Conn == Conn4 {
		gm.estimate = grid.Manhattan(orth)
		return
	}
	diag := gm.opts.DiagonalCost * gm.minWeight
	if diag < orth {
		// zig-zagging diagonals undercut straight runs
		gm.estimate = grid.Chebyshev(diag)
		return
	}
	gm.estimate = grid.Octile(orth, min(diag, 2*orth))
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gm *GridMap) index(x, y int) int {
	return y*gm.Width + x
}

func validCost(c float64) bool {
	return c >= 0 && !math.IsInf(c, 0) && !math.IsNaN(c)
}
