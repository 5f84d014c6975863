package grid

import "fmt"

// Position is an integer grid coordinate. X is the column, Y is the row.
type Position struct {
	X, Y int
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Orthogonal lists the four axis-aligned unit offsets: N, E, S, W.
var Orthogonal = [4]Position{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Diagonal lists the four diagonal unit offsets: NE, SE, SW, NW.
var Diagonal = [4]Position{{1, -1}, {1, 1}, {-1, 1}, {-1, -1}}

// Add returns p translated by d.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the offset from q to p.
func (p Position) Sub(q Position) Position {
	return Position{X: p.X - q.X, Y: p.Y - q.Y}
}

// In reports whether p lies inside a width×height grid.
func (p Position) In(width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

// Index maps p to its row-major index: Y*width + X.
// Complexity: O(1).
func (p Position) Index(width int) int {
	return p.Y*width + p.X
}

// FromIndex converts a row-major index back to a Position.
// Complexity: O(1).
func FromIndex(idx, width int) Position {
	return Position{X: idx % width, Y: idx / width}
}

// String formats p as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
