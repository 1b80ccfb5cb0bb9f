// Package floor defines how generation parameters escalate from one dungeon
// floor to the next, and the theme and flavour text shown for each floor.
package floor

import (
	"github.com/leonelquinteros/gotext"

	"cryptforge/pkg/game/generator"
)

// Escalation constants
const (
	// First is the floor number of a new game.
	First = 1

	// InitialCorridorCount is the corridor count of the first floor.
	InitialCorridorCount = 5

	// CorridorCountStep is added to the corridor count each time a boss is defeated.
	CorridorCountStep = 6
)

// Theme is the visual/narrative theme of a floor
type Theme int

const (
	Crypt     Theme = iota // Shallow burial halls
	Catacombs              // Long bone-lined passages
	Ossuary                // Stacked chambers
	Forge                  // Abandoned smithies
	Abyss                  // The deepest floors
)

// themeCount is the number of themes (for cycling).
const themeCount = 5

// ThemeFor returns the theme for the given floor (1-based). Themes cycle.
func ThemeFor(floor int) Theme {
	if floor < First {
		return Crypt
	}
	return Theme((floor - 1) % themeCount)
}

// String returns the theme name
func (t Theme) String() string {
	switch t {
	case Crypt:
		return "Crypt"
	case Catacombs:
		return "Catacombs"
	case Ossuary:
		return "Ossuary"
	case Forge:
		return "Forge"
	case Abyss:
		return "Abyss"
	default:
		return "Unknown"
	}
}

// CorridorCountFor returns the corridor count used on the given floor (1-based):
// InitialCorridorCount on the first floor, plus CorridorCountStep per floor after it.
func CorridorCountFor(floor int) int {
	if floor < First {
		floor = First
	}
	return InitialCorridorCount + CorridorCountStep*(floor-First)
}

// ParametersFor returns base with the corridor count escalated for the given floor
func ParametersFor(base generator.Parameters, floor int) generator.Parameters {
	base.CorridorCount = CorridorCountFor(floor)
	return base
}

// FlavourKey returns the gettext message key of the arrival line for a floor.
// Deeper floors use darker lines.
func FlavourKey(floor int) string {
	switch {
	case floor <= 2:
		return "FLOOR_FLAVOUR_SHALLOW"
	case floor <= 5:
		return "FLOOR_FLAVOUR_DEEP"
	case floor <= 8:
		return "FLOOR_FLAVOUR_DEEPER"
	default:
		return "FLOOR_FLAVOUR_ABYSS"
	}
}

// FlavourText returns the translated arrival line for a floor.
// Uses gotext.Get with constant keys to satisfy vet.
func FlavourText(floor int) string {
	switch FlavourKey(floor) {
	case "FLOOR_FLAVOUR_DEEP":
		return gotext.Get("FLOOR_FLAVOUR_DEEP")
	case "FLOOR_FLAVOUR_DEEPER":
		return gotext.Get("FLOOR_FLAVOUR_DEEPER")
	case "FLOOR_FLAVOUR_ABYSS":
		return gotext.Get("FLOOR_FLAVOUR_ABYSS")
	default:
		return gotext.Get("FLOOR_FLAVOUR_SHALLOW")
	}
}
