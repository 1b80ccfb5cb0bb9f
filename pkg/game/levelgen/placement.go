// Package levelgen decides what occupies the rooms of a generated floor.
package levelgen

import (
	"github.com/zyedidia/generic/mapset"

	"cryptforge/pkg/engine/random"
	"cryptforge/pkg/engine/world"
	"cryptforge/pkg/game/generator"
)

// SpawnKind is the kind of thing placed on a floor cell
type SpawnKind int

const (
	SpawnPlayer SpawnKind = iota
	SpawnBoss
	SpawnMonster
	SpawnLoot
	SpawnShrine
)

// String returns the lowercase name of the spawn kind
func (k SpawnKind) String() string {
	switch k {
	case SpawnPlayer:
		return "player"
	case SpawnBoss:
		return "boss"
	case SpawnMonster:
		return "monster"
	case SpawnLoot:
		return "loot"
	case SpawnShrine:
		return "shrine"
	default:
		return "unknown"
	}
}

// Spawn is one placed entity
type Spawn struct {
	Kind SpawnKind
	Cell world.Point
	Room world.Point // Anchor of the room the spawn sits in; the boss room uses the origin
}

// roomKinds are the kinds a regular room can receive
var roomKinds = []SpawnKind{SpawnMonster, SpawnLoot, SpawnShrine}

// Placer puts the player at the start, the boss in the boss room as far from
// the start as possible and one spawn in every room. Dead-end rooms always get loot.
type Placer struct {
	// Seed feeds the random choices. Each call to PlaceContent uses its own stream.
	Seed int64

	placed uint64
	spawns []Spawn
}

// NewPlacer creates a placer
func NewPlacer(seed int64) *Placer {
	return &Placer{Seed: seed}
}

// Spawns returns the spawns of the most recent layout
func (p *Placer) Spawns() []Spawn {
	return p.spawns
}

// PlaceContent computes spawns for a layout
func (p *Placer) PlaceContent(layout *generator.Layout) {
	rng := random.Derive(p.Seed, p.placed)
	p.placed++
	p.spawns = Place(layout, rng)
}

// Place computes the spawns of a layout. Rooms are visited in anchor order so
// the result only depends on the layout and the random source.
func Place(layout *generator.Layout, rng *random.Source) []Spawn {
	if layout == nil {
		return nil
	}

	used := mapset.New[world.Point]()
	spawns := make([]Spawn, 0, len(layout.Rooms)+2)

	spawns = append(spawns, Spawn{Kind: SpawnPlayer, Cell: layout.Start, Room: layout.Start})
	used.Put(layout.Start)

	if cell, ok := farthestFrom(layout.BossRoom, layout.Start, used); ok {
		spawns = append(spawns, Spawn{Kind: SpawnBoss, Cell: cell, Room: world.Origin})
		used.Put(cell)
	}

	forced := mapset.New[world.Point]()
	for _, a := range layout.ForcedRooms {
		forced.Put(a)
	}

	for _, anchor := range layout.RoomAnchors() {
		room := layout.Rooms[anchor]
		cells := freeCells(room, used)
		if len(cells) == 0 {
			continue
		}

		kind := roomKinds[rng.IntN(len(roomKinds))]
		if forced.Has(anchor) {
			kind = SpawnLoot
		}

		cell := cells[rng.IntN(len(cells))]
		used.Put(cell)
		spawns = append(spawns, Spawn{Kind: kind, Cell: cell, Room: anchor})
	}

	return spawns
}

// freeCells returns the sorted cells of a room not yet taken
func freeCells(room world.FloorSet, used mapset.Set[world.Point]) []world.Point {
	var out []world.Point
	for _, c := range room.Sorted() {
		if !used.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// farthestFrom returns the free cell of room with the largest Manhattan
// distance to p. Ties go to the first cell in row-major order.
func farthestFrom(room world.FloorSet, p world.Point, used mapset.Set[world.Point]) (world.Point, bool) {
	best, bestDist, found := world.Point{}, -1, false
	for _, c := range freeCells(room, used) {
		if d := world.ManhattanDistance(c, p); d > bestDist {
			best, bestDist, found = c, d, true
		}
	}
	return best, found
}

// Count returns how many spawns of a kind are in the list
func Count(spawns []Spawn, kind SpawnKind) int {
	n := 0
	for _, s := range spawns {
		if s.Kind == kind {
			n++
		}
	}
	return n
}
