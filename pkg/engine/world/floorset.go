package world

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// FloorSet is a set of walkable grid cells.
// The zero value is not usable; create sets with NewFloorSet.
type FloorSet struct {
	cells mapset.Set[Point]
}

// NewFloorSet creates a set holding the given points
func NewFloorSet(points ...Point) FloorSet {
	s := FloorSet{cells: mapset.New[Point]()}
	for _, p := range points {
		s.cells.Put(p)
	}
	return s
}

// Put adds a point to the set
func (s FloorSet) Put(p Point) {
	s.cells.Put(p)
}

// PutAll adds every point in the slice
func (s FloorSet) PutAll(points []Point) {
	for _, p := range points {
		s.cells.Put(p)
	}
}

// Has reports whether p is in the set
func (s FloorSet) Has(p Point) bool {
	return s.cells.Has(p)
}

// Remove deletes p from the set
func (s FloorSet) Remove(p Point) {
	s.cells.Remove(p)
}

// Size returns the number of cells
func (s FloorSet) Size() int {
	return s.cells.Size()
}

// Empty reports whether the set has no cells
func (s FloorSet) Empty() bool {
	return s.cells.Size() == 0
}

// Union adds every cell of other into s
func (s FloorSet) Union(other FloorSet) {
	other.cells.Each(func(p Point) {
		s.cells.Put(p)
	})
}

// Clone returns an independent copy of the set
func (s FloorSet) Clone() FloorSet {
	c := NewFloorSet()
	c.Union(s)
	return c
}

// Each calls fn for every cell in unspecified order.
// Use Sorted when the order matters.
func (s FloorSet) Each(fn func(p Point)) {
	s.cells.Each(fn)
}

// Sorted returns the cells in row-major order (Y, then X)
func (s FloorSet) Sorted() []Point {
	points := make([]Point, 0, s.cells.Size())
	s.cells.Each(func(p Point) {
		points = append(points, p)
	})
	sort.Slice(points, func(i, j int) bool {
		return points[i].Less(points[j])
	})
	return points
}

// Equal reports whether both sets hold exactly the same cells
func (s FloorSet) Equal(other FloorSet) bool {
	if s.Size() != other.Size() {
		return false
	}
	equal := true
	s.cells.Each(func(p Point) {
		if !other.cells.Has(p) {
			equal = false
		}
	})
	return equal
}

// Bounds returns the inclusive bounding box of the set.
// ok is false for an empty set.
func (s FloorSet) Bounds() (min, max Point, ok bool) {
	first := true
	s.cells.Each(func(p Point) {
		if first {
			min, max = p, p
			first = false
			return
		}
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	})
	return min, max, !first
}

// CardinalNeighborCount returns how many of p's four cardinal neighbors are in the set
func (s FloorSet) CardinalNeighborCount(p Point) int {
	count := 0
	for _, dir := range CardinalDirections() {
		if s.cells.Has(p.Neighbor(dir)) {
			count++
		}
	}
	return count
}

// DeadEnds returns, in row-major order, every cell with exactly one cardinal neighbor in the set
func (s FloorSet) DeadEnds() []Point {
	var ends []Point
	for _, p := range s.Sorted() {
		if s.CardinalNeighborCount(p) == 1 {
			ends = append(ends, p)
		}
	}
	return ends
}

// Reachable returns the cells reachable from start through cardinal steps.
// The result is empty if start is not in the set.
func (s FloorSet) Reachable(start Point) FloorSet {
	visited := NewFloorSet()
	if !s.cells.Has(start) {
		return visited
	}

	q := queue.New[Point]()
	q.Enqueue(start)
	visited.Put(start)

	for !q.Empty() {
		current := q.Dequeue()
		for _, dir := range CardinalDirections() {
			next := current.Neighbor(dir)
			if s.cells.Has(next) && !visited.Has(next) {
				visited.Put(next)
				q.Enqueue(next)
			}
		}
	}

	return visited
}

// Connected reports whether every cell is reachable from start
func (s FloorSet) Connected(start Point) bool {
	return s.Reachable(start).Size() == s.Size()
}
