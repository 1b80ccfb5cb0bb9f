package ebiten

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	engineinput "cryptforge/pkg/engine/input"
	"cryptforge/pkg/engine/world"
	"cryptforge/pkg/game/generator"
	"cryptforge/pkg/game/levelgen"
	"cryptforge/pkg/game/renderer"
	"cryptforge/pkg/game/walls"
)

// IntentHandler receives the intents read by Update. A non-nil error stops
// the game loop and is returned from Run.
type IntentHandler func(intent engineinput.Intent) error

// renderSnapshot holds a consistent snapshot of session state for rendering
type renderSnapshot struct {
	valid         bool
	floor         int
	theme         string
	corridorCount int
	roomCount     int
	player        world.Point
	discovered    world.FloorSet
	messages      []string
}

// CellRenderOptions describes how a cell should be drawn on the map.
type CellRenderOptions struct {
	Icon   string          // Glyph drawn on top, empty for none
	Color  color.Color     // Glyph or shape color
	Shape  []renderer.Rect // Solid blocks, in tile units
	Fill   color.Color     // Optional full-tile background
	IsWall bool
}

// keyRepeatInfo tracks the repeat state for a key
type keyRepeatInfo struct {
	firstPressed int64 // Timestamp when first pressed (milliseconds)
	lastRepeat   int64 // Timestamp when last repeat event was sent (milliseconds)
}

// EbitenRenderer is the Ebiten-based graphical viewer. It implements
// ebiten.Game and renderer.Renderer.
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	// Tile size for rendering (adjustable with +/-)
	tileSize int

	// Viewport dimensions (in tiles), recalculated from window and tile size
	viewportRows int
	viewportCols int

	// Font source and cached faces (recreated when tile size changes)
	monoFontSource     *text.GoTextFaceSource
	cachedTileFontSize float64
	cachedUIFontSize   float64
	cachedMonoFace     *text.GoTextFace
	cachedUIFace       *text.GoTextFace

	// Current floor, set by DrawFloor, PaintWalls and ShowSpawns
	floorMutex sync.RWMutex
	layout     *generator.Layout
	tiles      map[world.Point]walls.Tile
	spawns     map[world.Point]levelgen.SpawnKind

	// Snapshot captured by RenderFrame for the next Draw
	snapshot      renderSnapshot
	snapshotMutex sync.RWMutex

	// Transient messages from ShowMessage, shown until the next frame
	notices []string

	// fog hides cells the player has not seen yet
	fog bool

	handler             IntentHandler
	keyRepeatState      map[string]keyRepeatInfo
	keyRepeatStateMutex sync.Mutex
}
