package gameplay

import (
	"cryptforge/pkg/engine/world"
	"cryptforge/pkg/game/state"
)

// CanEnter checks if the player can step onto p
func CanEnter(s *state.Session, p world.Point) bool {
	return s.HasLayout() && s.Layout.Floor.Has(p)
}

// MovePlayer moves the player one step in a cardinal direction.
// It returns false and leaves the player in place when the step is blocked.
func MovePlayer(s *state.Session, d world.Direction) bool {
	if !d.IsCardinal() || !s.HasLayout() {
		return false
	}

	next := s.Player.Neighbor(d)
	if !CanEnter(s, next) {
		return false
	}

	s.Player = next
	s.MovementCount++
	s.Reveal()
	ShowMovementHint(s)
	ShowBossRoomHint(s)
	return true
}

// InBossRoom reports whether the player stands in the boss room
func InBossRoom(s *state.Session) bool {
	return s.HasLayout() && s.Layout.BossRoom.Has(s.Player)
}
