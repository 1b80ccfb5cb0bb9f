package renderer

import (
	"cryptforge/pkg/game/generator"
	"cryptforge/pkg/game/state"
	"cryptforge/pkg/game/walls"
)

// Renderer defines the interface for dungeon display backends.
// Implementations include the TUI (terminal) and Ebiten viewers.
type Renderer interface {
	// Init initializes the renderer (colors, window, etc.)
	Init()

	// DrawFloor receives the floor layout of a newly generated dungeon
	DrawFloor(layout *generator.Layout)

	// PaintWalls receives the wall placements of a newly generated dungeon
	PaintWalls(placements []walls.Placement)

	// RenderFrame renders the session: map, floor indicator and messages
	RenderFrame(s *state.Session)

	// ShowMessage displays a message to the user
	ShowMessage(msg string)
}
