package generator

import (
	"cryptforge/pkg/engine/random"
	"cryptforge/pkg/engine/world"
)

// RoomCarver carves an organic room shape around an anchor.
// Implementations must return a connected set that contains the anchor.
type RoomCarver interface {
	CarveRoom(rng *random.Source, anchor world.Point, walk RoomWalk) world.FloorSet
}

// RoomCarverFunc adapts a plain function to RoomCarver
type RoomCarverFunc func(rng *random.Source, anchor world.Point, walk RoomWalk) world.FloorSet

// CarveRoom calls f
func (f RoomCarverFunc) CarveRoom(rng *random.Source, anchor world.Point, walk RoomWalk) world.FloorSet {
	return f(rng, anchor, walk)
}

// RandomWalkRoom carves rooms by repeating random walks.
// The first walk starts at the anchor. With StartRandomly set, each later walk
// starts from a cell already carved, otherwise from the anchor again.
type RandomWalkRoom struct{}

// CarveRoom implements RoomCarver
func (RandomWalkRoom) CarveRoom(rng *random.Source, anchor world.Point, walk RoomWalk) world.FloorSet {
	room := world.NewFloorSet(anchor)

	current := anchor
	for i := 0; i < walk.Iterations; i++ {
		room.Union(Walk(rng, current, walk.WalkLength))

		if walk.StartRandomly {
			// Sorted so the draw is reproducible for a given seed
			cells := room.Sorted()
			current = cells[rng.IntN(len(cells))]
		}
	}

	return room
}
