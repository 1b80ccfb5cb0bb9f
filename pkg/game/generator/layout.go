package generator

import (
	"errors"
	"fmt"
	"sort"

	"cryptforge/pkg/engine/world"
)

// Layout validation errors
var (
	ErrEmptyFloor         = errors.New("layout has no floor cells")
	ErrBossRoomIncomplete = errors.New("boss room is not fully carved")
	ErrUncoveredDeadEnd   = errors.New("corridor dead end is not inside a room")
	ErrDisconnected       = errors.New("floor is not connected")
)

// Layout is the result of one generation pass. It is never patched after
// Generate returns; a new floor gets a new Layout.
type Layout struct {
	// Floor holds every walkable cell: corridors, rooms and the boss room.
	Floor world.FloorSet

	// Corridors is the floor as it was right after the corridor chain,
	// before any room was unioned in. Diagnostics only.
	Corridors world.FloorSet

	// Segments holds the ordered cells of each corridor segment.
	Segments [][]world.Point

	// Rooms maps a room anchor to the cells of that room. The boss room is not in it.
	Rooms map[world.Point]world.FloorSet

	// BossRoom is the square room centered at the origin.
	BossRoom world.FloorSet

	// Anchors lists the potential room anchors after the origin was removed, sorted.
	Anchors []world.Point

	// ForcedRooms lists, in carve order, the anchors of rooms added to cover dead ends.
	ForcedRooms []world.Point

	// Start is where the corridor chain began.
	Start world.Point
}

// BossRoomSquare returns the size×size square centered at the origin.
// Even sizes extend one cell further toward negative coordinates.
func BossRoomSquare(size int) world.FloorSet {
	room := world.NewFloorSet()
	low := -size / 2
	for x := low; x < low+size; x++ {
		for y := low; y < low+size; y++ {
			room.Put(world.Pt(x, y))
		}
	}
	return room
}

// RoomAnchors returns the room anchors in row-major order
func (l *Layout) RoomAnchors() []world.Point {
	anchors := make([]world.Point, 0, len(l.Rooms))
	for anchor := range l.Rooms {
		anchors = append(anchors, anchor)
	}
	sort.Slice(anchors, func(i, j int) bool {
		return anchors[i].Less(anchors[j])
	})
	return anchors
}

// RoomContaining returns the anchor of a room holding p. When several rooms
// overlap at p the one with the smallest anchor is reported. ok is false if
// p is in no regular room.
func (l *Layout) RoomContaining(p world.Point) (anchor world.Point, ok bool) {
	for _, a := range l.RoomAnchors() {
		if l.Rooms[a].Has(p) {
			return a, true
		}
	}
	return world.Point{}, false
}

// InAnyRoom reports whether p is inside a regular room or the boss room
func (l *Layout) InAnyRoom(p world.Point) bool {
	if l.BossRoom.Size() > 0 && l.BossRoom.Has(p) {
		return true
	}
	for _, cells := range l.Rooms {
		if cells.Has(p) {
			return true
		}
	}
	return false
}

// IsCorridor reports whether p was carved by the corridor chain
func (l *Layout) IsCorridor(p world.Point) bool {
	return l.Corridors.Size() > 0 && l.Corridors.Has(p)
}

// Validate checks the layout invariants. A failed layout should be discarded
// and generated again rather than repaired.
func (l *Layout) Validate() error {
	if l.Floor.Size() == 0 {
		return ErrEmptyFloor
	}

	var missing []world.Point
	for _, p := range l.BossRoom.Sorted() {
		if !l.Floor.Has(p) {
			missing = append(missing, p)
		}
	}
	if l.BossRoom.Size() == 0 || len(missing) > 0 {
		return fmt.Errorf("%w: %d cells missing", ErrBossRoomIncomplete, len(missing))
	}

	for _, end := range l.Corridors.DeadEnds() {
		if !l.InAnyRoom(end) {
			return fmt.Errorf("%w: %v", ErrUncoveredDeadEnd, end)
		}
	}

	reached := l.Floor.Reachable(l.Start).Size()
	if reached != l.Floor.Size() {
		return fmt.Errorf("%w: %d of %d cells reachable from %v", ErrDisconnected, reached, l.Floor.Size(), l.Start)
	}

	return nil
}
