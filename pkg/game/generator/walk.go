package generator

import (
	"cryptforge/pkg/engine/random"
	"cryptforge/pkg/engine/world"
)

// randomDirection returns a uniformly chosen cardinal direction
func randomDirection(rng *random.Source) world.Direction {
	dirs := world.CardinalDirections()
	return dirs[rng.IntN(len(dirs))]
}

// Walk starts at start and takes length steps, each in a uniformly random
// cardinal direction. Every visited cell is recorded, start included.
func Walk(rng *random.Source, start world.Point, length int) world.FloorSet {
	path := world.NewFloorSet(start)

	current := start
	for step := 0; step < length; step++ {
		current = current.Neighbor(randomDirection(rng))
		path.Put(current)
	}

	return path
}

// Corridor picks one random cardinal direction and walks length steps along it.
// The first cell is start and the last is the far end of the corridor.
func Corridor(rng *random.Source, start world.Point, length int) []world.Point {
	return CorridorInDirection(start, randomDirection(rng), length)
}

// CorridorInDirection returns the straight line of length steps from start in dir
func CorridorInDirection(start world.Point, dir world.Direction, length int) []world.Point {
	if length < 0 {
		length = 0
	}

	cells := make([]world.Point, 0, length+1)
	cells = append(cells, start)

	current := start
	for step := 0; step < length; step++ {
		current = current.Neighbor(dir)
		cells = append(cells, current)
	}

	return cells
}
