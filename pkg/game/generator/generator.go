// Package generator builds dungeon floor layouts: a chain of straight corridors,
// a fixed boss room at the origin, and irregular rooms carved by random walks.
package generator

import (
	"errors"
	"fmt"

	"cryptforge/pkg/engine/random"
	"cryptforge/pkg/engine/world"
)

// LayoutGenerator is an interface for layout generation algorithms
type LayoutGenerator interface {
	Generate(params Parameters, rng *random.Source) (*Layout, error)
	Name() string
}

// ErrInvalidParameters is returned when generation parameters are out of range
var ErrInvalidParameters = errors.New("invalid generation parameters")

// RoomWalk configures the random-walk room carver
type RoomWalk struct {
	Iterations    int  // Number of walks per room
	WalkLength    int  // Steps per walk
	StartRandomly bool // Restart each walk from a random cell already carved
}

// Parameters holds the inputs of a single generation pass
type Parameters struct {
	CorridorLength int         // Steps per corridor segment (constant across a run)
	CorridorCount  int         // Number of corridor segments (escalates with floor)
	RoomFraction   float64     // Share of potential anchors that become rooms, 0..1
	BossSize       int         // Side of the square boss room at the origin
	Start          world.Point // Where the corridor chain begins
	Room           RoomWalk
}

// Default generation values
const (
	DefaultCorridorLength = 14
	DefaultCorridorCount  = 5
	DefaultRoomFraction   = 0.8
	DefaultBossSize       = 7
)

// DefaultParameters returns the parameters used for the first floor
func DefaultParameters() Parameters {
	return Parameters{
		CorridorLength: DefaultCorridorLength,
		CorridorCount:  DefaultCorridorCount,
		RoomFraction:   DefaultRoomFraction,
		BossSize:       DefaultBossSize,
		Start:          world.Origin,
		Room: RoomWalk{
			Iterations:    10,
			WalkLength:    10,
			StartRandomly: true,
		},
	}
}

// Validate checks that every parameter is in range
func (p Parameters) Validate() error {
	switch {
	case p.CorridorLength < 0:
		return fmt.Errorf("%w: corridor length %d < 0", ErrInvalidParameters, p.CorridorLength)
	case p.CorridorCount < 0:
		return fmt.Errorf("%w: corridor count %d < 0", ErrInvalidParameters, p.CorridorCount)
	case p.RoomFraction < 0 || p.RoomFraction > 1:
		return fmt.Errorf("%w: room fraction %v outside [0,1]", ErrInvalidParameters, p.RoomFraction)
	case p.BossSize < 1:
		return fmt.Errorf("%w: boss size %d < 1", ErrInvalidParameters, p.BossSize)
	case p.Room.Iterations < 0 || p.Room.WalkLength < 0:
		return fmt.Errorf("%w: room walk %+v", ErrInvalidParameters, p.Room)
	}
	return nil
}

// New returns a corridor-first generator using the default room carver
func New() *CorridorFirstGenerator {
	return &CorridorFirstGenerator{Carver: RandomWalkRoom{}}
}
