package devtools

import (
	"cryptforge/pkg/engine/random"
	"cryptforge/pkg/engine/world"
	"cryptforge/pkg/game/generator"
)

// devBossSize is the boss room size of the developer map
const devBossSize = 3

// DevMapGenerator returns a hard-coded layout that shows every wall shape:
// straight runs, an L bend with inner corners, rooms with diagonal corners
// and two corridor dead ends covered by rooms. Parameters and the random
// source are ignored, so every floor looks the same.
type DevMapGenerator struct{}

// Name returns the name of the generator
func (DevMapGenerator) Name() string {
	return "Dev Map"
}

// Generate builds the developer map
func (DevMapGenerator) Generate(_ generator.Parameters, _ *random.Source) (*generator.Layout, error) {
	east := generator.CorridorInDirection(world.Origin, world.Right, 6)
	north := generator.CorridorInDirection(world.Pt(6, 0), world.Up, 4)
	west := generator.CorridorInDirection(world.Origin, world.Left, 5)

	corridors := world.NewFloorSet(world.Origin)
	corridors.PutAll(east)
	corridors.PutAll(north)
	corridors.PutAll(west)

	floor := corridors.Clone()
	boss := generator.BossRoomSquare(devBossSize)
	floor.Union(boss)

	northRoom := world.NewFloorSet()
	for x := 5; x <= 7; x++ {
		for y := 4; y <= 5; y++ {
			northRoom.Put(world.Pt(x, y))
		}
	}
	westRoom := world.NewFloorSet()
	for x := -6; x <= -5; x++ {
		for y := -1; y <= 1; y++ {
			westRoom.Put(world.Pt(x, y))
		}
	}
	floor.Union(northRoom)
	floor.Union(westRoom)

	northAnchor, westAnchor := world.Pt(6, 4), world.Pt(-5, 0)

	return &generator.Layout{
		Floor:     floor,
		Corridors: corridors,
		Segments:  [][]world.Point{east, north, west},
		Rooms: map[world.Point]world.FloorSet{
			northAnchor: northRoom,
			westAnchor:  westRoom,
		},
		BossRoom:    boss,
		Anchors:     []world.Point{westAnchor, world.Pt(6, 0), northAnchor},
		ForcedRooms: []world.Point{westAnchor, northAnchor},
		Start:       world.Origin,
	}, nil
}
