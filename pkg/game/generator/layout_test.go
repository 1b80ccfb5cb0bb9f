package generator

import (
	"errors"
	"testing"

	"cryptforge/pkg/engine/world"
)

// handLayout builds a small layout: boss room of size 1 at the origin and a
// corridor running right to (3,0) with a one-cell room at its end.
func handLayout() *Layout {
	corridor := world.NewFloorSet(CorridorInDirection(world.Origin, world.Right, 3)...)
	floor := corridor.Clone()
	boss := BossRoomSquare(1)
	floor.Union(boss)
	return &Layout{
		Floor:     floor,
		Corridors: corridor,
		BossRoom:  boss,
		Rooms: map[world.Point]world.FloorSet{
			world.Pt(3, 0): world.NewFloorSet(world.Pt(3, 0)),
		},
		Start: world.Origin,
	}
}

func TestValidate_HandBuiltLayoutIsValid(t *testing.T) {
	if err := handLayout().Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidate_EmptyFloor(t *testing.T) {
	l := &Layout{Floor: world.NewFloorSet()}
	if err := l.Validate(); !errors.Is(err, ErrEmptyFloor) {
		t.Errorf("Validate() = %v, want ErrEmptyFloor", err)
	}
}

func TestValidate_UncoveredDeadEnd(t *testing.T) {
	l := handLayout()
	delete(l.Rooms, world.Pt(3, 0))
	if err := l.Validate(); !errors.Is(err, ErrUncoveredDeadEnd) {
		t.Errorf("Validate() = %v, want ErrUncoveredDeadEnd", err)
	}
}

func TestValidate_BossRoomIncomplete(t *testing.T) {
	l := handLayout()
	l.BossRoom = BossRoomSquare(3)
	if err := l.Validate(); !errors.Is(err, ErrBossRoomIncomplete) {
		t.Errorf("Validate() = %v, want ErrBossRoomIncomplete", err)
	}
}

func TestValidate_Disconnected(t *testing.T) {
	l := handLayout()
	l.Floor.Put(world.Pt(10, 10))
	if err := l.Validate(); !errors.Is(err, ErrDisconnected) {
		t.Errorf("Validate() = %v, want ErrDisconnected", err)
	}
}

func TestRoomContaining(t *testing.T) {
	l := handLayout()
	anchor, ok := l.RoomContaining(world.Pt(3, 0))
	if !ok || anchor != world.Pt(3, 0) {
		t.Errorf("RoomContaining((3,0)) = %v, %v; want (3,0), true", anchor, ok)
	}
	if _, ok := l.RoomContaining(world.Pt(1, 0)); ok {
		t.Error("RoomContaining((1,0)) = true, want false for a corridor cell")
	}
	if !l.InAnyRoom(world.Origin) {
		t.Error("InAnyRoom(origin) = false, want true (boss room)")
	}
}
