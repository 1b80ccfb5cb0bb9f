// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

import "fmt"

// Origin is the grid origin (0,0)
var Origin = Point{}

// Point is an integer grid coordinate. Points are values and are compared
// and hashed by value, so they can be used directly as map keys.
type Point struct {
	X int
	Y int
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p offset by q
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Neighbor returns the adjacent point in the given direction
func (p Point) Neighbor(d Direction) Point {
	return p.Add(d.Delta())
}

// Less orders points row-major: by Y, then by X.
func (p Point) Less(q Point) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

// String returns the point as "(x,y)"
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// ManhattanDistance returns |dx| + |dy| between two points
func ManhattanDistance(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
