package state

import (
	"cryptforge/pkg/engine/world"
	"cryptforge/pkg/game/floor"
	"cryptforge/pkg/game/generator"
	"cryptforge/pkg/game/walls"
)

// Session represents one play session's dungeon state
type Session struct {
	Floor  int                  // Current floor number (1-based)
	Params generator.Parameters // Parameters for the next generation pass

	Seed int64 // Session seed; each floor derives its own stream from it

	Layout *generator.Layout // Current floor layout, nil until generated
	Walls  []walls.Placement // Wall placements for Layout

	Player        world.Point    // Player position on the current floor
	Discovered    world.FloorSet // Cells the player has seen on the current floor
	MovementCount int            // Steps taken on the current floor
	HintedBoss    bool           // Boss room hint already shown on this floor

	Messages []string
}

// NewSession creates a session on the first floor
func NewSession(base generator.Parameters, seed int64) *Session {
	return &Session{
		Floor:      floor.First,
		Params:     floor.ParametersFor(base, floor.First),
		Seed:       seed,
		Discovered: world.NewFloorSet(),
		Messages:   make([]string, 0),
	}
}

// AddMessage adds a message to the session's message log
func (s *Session) AddMessage(msg string) {
	const maxMessages = 5
	s.Messages = append(s.Messages, msg)

	// Keep only the last maxMessages
	if len(s.Messages) > maxMessages {
		s.Messages = s.Messages[len(s.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (s *Session) ClearMessages() {
	s.Messages = make([]string, 0)
}

// AdvanceFloor increments the floor counter, escalates the corridor count and
// drops the previous floor's layout
func (s *Session) AdvanceFloor() {
	s.Floor++
	s.Params.CorridorCount += floor.CorridorCountStep
	s.ClearLayout()
}

// ResetProgress returns the session to the first floor with initial parameters
func (s *Session) ResetProgress() {
	s.Floor = floor.First
	s.Params.CorridorCount = floor.InitialCorridorCount
	s.ClearLayout()
}

// ClearLayout forgets the current layout and walls
func (s *Session) ClearLayout() {
	s.Layout = nil
	s.Walls = nil
	s.Discovered = world.NewFloorSet()
	s.MovementCount = 0
	s.HintedBoss = false
}

// SetLayout installs a freshly generated floor and puts the player on its start
func (s *Session) SetLayout(layout *generator.Layout, placements []walls.Placement) {
	s.ClearLayout()
	s.Layout = layout
	s.Walls = placements
	s.Player = layout.Start
	s.Discovered = world.NewFloorSet()
	s.Reveal()
}

// Reveal marks everything in sight of the player as discovered
func (s *Session) Reveal() {
	if !s.HasLayout() {
		return
	}
	world.RevealFOV(s.Discovered, s.Layout.Floor, s.Player, world.FOVRadius)
}

// IsDiscovered reports whether the player has seen p on this floor
func (s *Session) IsDiscovered(p world.Point) bool {
	return s.Discovered.Has(p)
}

// HasLayout reports whether a floor has been generated
func (s *Session) HasLayout() bool {
	return s.Layout != nil
}
