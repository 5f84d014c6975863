package grid

import "math"

// Heuristic estimates the remaining cost from a to b. A* stays optimal as
// long as the estimate never exceeds the true cost (admissible).
type Heuristic func(a, b Position) float64

// Zero is the null heuristic; A* with Zero degenerates to Dijkstra.
func Zero(_, _ Position) float64 { return 0 }

// Manhattan returns the 4-connected distance scaled by unit.
func Manhattan(unit float64) Heuristic {
	return func(a, b Position) float64 {
		dx, dy := absDelta(a, b)
		return unit * float64(dx+dy)
	}
}

// Chebyshev returns the 8-connected distance with uniform move cost unit.
func Chebyshev(unit float64) Heuristic {
	return func(a, b Position) float64 {
		dx, dy := absDelta(a, b)
		return unit * float64(max(dx, dy))
	}
}

// Octile returns the 8-connected distance where orthogonal moves cost orth
// and diagonal moves cost diag:
//
//	orth*(dx+dy) + (diag-2*orth)*min(dx,dy)
//
// With diag == orth it equals Chebyshev(orth). Callers must pass
// diag <= 2*orth, otherwise the estimate is not admissible.
func Octile(orth, diag float64) Heuristic {
	return func(a, b Position) float64 {
		dx, dy := absDelta(a, b)
		return orth*float64(dx+dy) + (diag-2*orth)*float64(min(dx, dy))
	}
}

// Euclidean returns the straight-line distance scaled by unit.
func Euclidean(unit float64) Heuristic {
	return func(a, b Position) float64 {
		dx, dy := absDelta(a, b)
		return unit * math.Hypot(float64(dx), float64(dy))
	}
}

func absDelta(a, b Position) (int, int) {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx, dy
}
