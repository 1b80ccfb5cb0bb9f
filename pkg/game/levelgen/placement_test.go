package levelgen

import (
	"testing"

	"cryptforge/pkg/engine/random"
	"cryptforge/pkg/engine/world"
	"cryptforge/pkg/game/generator"
)

func generateLayout(t *testing.T, seed int64) *generator.Layout {
	t.Helper()
	layout, err := generator.New().Generate(generator.DefaultParameters(), random.New(seed))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return layout
}

func TestPlace_PlayerAtStartAndSingleBoss(t *testing.T) {
	layout := generateLayout(t, 42)
	spawns := Place(layout, random.New(1))

	if len(spawns) == 0 {
		t.Fatal("Place returned no spawns")
	}
	if spawns[0].Kind != SpawnPlayer || spawns[0].Cell != layout.Start {
		t.Fatalf("first spawn = %+v, want player at %v", spawns[0], layout.Start)
	}
	if got := Count(spawns, SpawnBoss); got != 1 {
		t.Errorf("boss count = %d, want 1", got)
	}
	for _, s := range spawns {
		if s.Kind == SpawnBoss && !layout.BossRoom.Has(s.Cell) {
			t.Errorf("boss at %v is outside the boss room", s.Cell)
		}
	}
}

func TestPlace_BossAwayFromStart(t *testing.T) {
	layout := generateLayout(t, 7)
	spawns := Place(layout, random.New(1))
	for _, s := range spawns {
		if s.Kind == SpawnBoss && s.Cell == layout.Start {
			t.Errorf("boss placed on the start cell %v", s.Cell)
		}
	}
}

func TestPlace_OneSpawnPerRoomInsideRoom(t *testing.T) {
	layout := generateLayout(t, 11)
	spawns := Place(layout, random.New(2))

	perRoom := map[world.Point]int{}
	for _, s := range spawns {
		if s.Kind == SpawnPlayer || s.Kind == SpawnBoss {
			continue
		}
		perRoom[s.Room]++
		if !layout.Rooms[s.Room].Has(s.Cell) {
			t.Errorf("%s at %v is not inside room %v", s.Kind, s.Cell, s.Room)
		}
	}
	for anchor, n := range perRoom {
		if n != 1 {
			t.Errorf("room %v has %d spawns, want 1", anchor, n)
		}
	}
}

func TestPlace_NoSharedCells(t *testing.T) {
	layout := generateLayout(t, 5)
	seen := map[world.Point]bool{}
	for _, s := range Place(layout, random.New(3)) {
		if seen[s.Cell] {
			t.Errorf("cell %v holds more than one spawn", s.Cell)
		}
		seen[s.Cell] = true
	}
}

func TestPlace_ForcedRoomsGetLoot(t *testing.T) {
	params := generator.DefaultParameters()
	params.RoomFraction = 0
	layout, err := generator.New().Generate(params, random.New(9))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	forced := map[world.Point]bool{}
	for _, a := range layout.ForcedRooms {
		forced[a] = true
	}

	for _, s := range Place(layout, random.New(4)) {
		if forced[s.Room] && s.Kind != SpawnLoot {
			t.Errorf("dead-end room %v got %s, want loot", s.Room, s.Kind)
		}
	}
}

func TestPlace_Deterministic(t *testing.T) {
	layout := generateLayout(t, 13)
	a := Place(layout, random.New(8))
	b := Place(layout, random.New(8))
	if len(a) != len(b) {
		t.Fatalf("len = %d and %d, want equal", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("spawn %d = %+v and %+v, want equal", i, a[i], b[i])
		}
	}
}

func TestPlace_NilLayout(t *testing.T) {
	if got := Place(nil, random.New(1)); got != nil {
		t.Errorf("Place(nil) = %v, want nil", got)
	}
}

func TestPlacer_RecordsLatestSpawns(t *testing.T) {
	p := NewPlacer(99)
	p.PlaceContent(generateLayout(t, 1))
	if len(p.Spawns()) == 0 {
		t.Fatal("Spawns() empty after PlaceContent")
	}
	if p.Spawns()[0].Kind != SpawnPlayer {
		t.Errorf("first spawn = %s, want player", p.Spawns()[0].Kind)
	}
}
