package generator

import (
	"math"

	"cryptforge/pkg/engine/random"
	"cryptforge/pkg/engine/world"
)

// CorridorFirstGenerator lays out a chain of straight corridors first, then
// places the boss room, carves rooms at corridor ends and finally makes sure
// no corridor dead end is left without a room.
type CorridorFirstGenerator struct {
	Carver RoomCarver
}

// Name returns the name of this generator
func (g *CorridorFirstGenerator) Name() string {
	return "Corridor First"
}

// Generate builds a complete layout. The layout is only returned once every
// step has run; nothing is published part way through.
func (g *CorridorFirstGenerator) Generate(params Parameters, rng *random.Source) (*Layout, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	carver := g.Carver
	if carver == nil {
		carver = RandomWalkRoom{}
	}

	layout := &Layout{
		Rooms: make(map[world.Point]world.FloorSet),
		Start: params.Start,
	}

	// Corridor chain
	floor := world.NewFloorSet(params.Start)
	anchors := world.NewFloorSet(params.Start)
	current := params.Start
	for i := 0; i < params.CorridorCount; i++ {
		segment := Corridor(rng, current, params.CorridorLength)
		floor.PutAll(segment)
		layout.Segments = append(layout.Segments, segment)

		current = segment[len(segment)-1]
		anchors.Put(current)
	}
	layout.Corridors = floor.Clone()

	// Boss room is carved unconditionally and never offered as a regular room
	layout.BossRoom = BossRoomSquare(params.BossSize)
	floor.Union(layout.BossRoom)
	anchors.Remove(world.Origin)
	layout.Anchors = anchors.Sorted()

	// Rooms at a share of the potential anchors, drawn without replacement
	for _, anchor := range pickAnchors(rng, layout.Anchors, params.RoomFraction) {
		room := carver.CarveRoom(rng, anchor, params.Room)
		layout.Rooms[anchor] = room
		floor.Union(room)
	}

	// Every corridor dead end must stand inside a room
	for _, end := range layout.Corridors.DeadEnds() {
		if layout.InAnyRoom(end) {
			continue
		}
		room := carver.CarveRoom(rng, end, params.Room)
		layout.Rooms[end] = room
		layout.ForcedRooms = append(layout.ForcedRooms, end)
		floor.Union(room)
	}

	layout.Floor = floor
	return layout, nil
}

// RoomCount returns how many of n potential anchors become rooms.
// Halves round away from zero (2.5 -> 3).
func RoomCount(n int, fraction float64) int {
	count := int(math.Round(float64(n) * fraction))
	if count > n {
		count = n
	}
	if count < 0 {
		count = 0
	}
	return count
}

// pickAnchors shuffles a copy of the sorted anchors and keeps the first RoomCount of them
func pickAnchors(rng *random.Source, sorted []world.Point, fraction float64) []world.Point {
	count := RoomCount(len(sorted), fraction)
	if count == 0 {
		return nil
	}

	picked := make([]world.Point, len(sorted))
	copy(picked, sorted)
	rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})

	return picked[:count]
}
