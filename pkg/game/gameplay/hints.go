package gameplay

import (
	"cryptforge/pkg/game/renderer"
	"cryptforge/pkg/game/state"
)

// movementHintSteps is how many steps the movement hint is shown for
const movementHintSteps = 1

// ShowMovementHint adds the movement controls message after the first step on a floor
func ShowMovementHint(s *state.Session) {
	if s.MovementCount != movementHintSteps {
		return
	}
	s.AddMessage(renderer.FormatString("GT{HINT_MOVE}"))
}

// ShowBossRoomHint tells the player the boss can be fought, once per floor
func ShowBossRoomHint(s *state.Session) {
	if s.HintedBoss || !InBossRoom(s) {
		return
	}
	s.HintedBoss = true
	s.AddMessage(renderer.FormatString("GT{HINT_BOSS} ACTION{b}"))
}
