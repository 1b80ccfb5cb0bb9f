package ebiten

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"cryptforge/pkg/engine/world"
	"cryptforge/pkg/game/generator"
	"cryptforge/pkg/game/levelgen"
	"cryptforge/pkg/game/renderer"
	"cryptforge/pkg/game/walls"
)

// New creates a new Ebiten renderer. handler receives every intent read from
// the keyboard.
func New(handler IntentHandler) *EbitenRenderer {
	e := &EbitenRenderer{
		windowWidth:    1024,
		windowHeight:   768,
		tileSize:       defaultTileSize,
		viewportRows:   minViewport,
		viewportCols:   minViewport,
		tiles:          map[world.Point]walls.Tile{},
		spawns:         map[world.Point]levelgen.SpawnKind{},
		handler:        handler,
		keyRepeatState: make(map[string]keyRepeatInfo),
	}
	e.recalculateViewport()
	return e
}

// Init sets up the window and loads fonts
func (e *EbitenRenderer) Init() {
	renderer.InitColors()
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle("Cryptforge")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := e.loadFonts(); err != nil {
		// The map still draws without fonts; glyphs and text are skipped
		log.Printf("ebiten: %v", err)
	}
}

// DrawFloor receives a newly generated layout
func (e *EbitenRenderer) DrawFloor(layout *generator.Layout) {
	e.floorMutex.Lock()
	defer e.floorMutex.Unlock()
	e.layout = layout
	e.spawns = map[world.Point]levelgen.SpawnKind{}
}

// PaintWalls receives the wall tiles of the current layout
func (e *EbitenRenderer) PaintWalls(placements []walls.Placement) {
	e.floorMutex.Lock()
	defer e.floorMutex.Unlock()
	e.tiles = walls.TileMap(placements)
}

// ShowSpawns receives the entities placed on the current layout
func (e *EbitenRenderer) ShowSpawns(spawns []levelgen.Spawn) {
	e.floorMutex.Lock()
	defer e.floorMutex.Unlock()
	e.spawns = make(map[world.Point]levelgen.SpawnKind, len(spawns))
	for _, s := range spawns {
		if s.Kind == levelgen.SpawnPlayer {
			continue
		}
		e.spawns[s.Cell] = s.Kind
	}
}

// SetFog turns hiding of unseen cells on or off
func (e *EbitenRenderer) SetFog(fog bool) {
	e.fog = fog
}

// ShowMessage displays a message until the next frame is captured
func (e *EbitenRenderer) ShowMessage(msg string) {
	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()
	e.notices = append(e.notices, msg)
}

// GetViewportSize returns the current viewport dimensions
func (e *EbitenRenderer) GetViewportSize() (rows, cols int) {
	return e.viewportRows, e.viewportCols
}

// Run starts the Ebiten game loop and blocks until the window closes or the
// intent handler returns an error
func (e *EbitenRenderer) Run() error {
	return ebiten.RunGame(e)
}

var _ renderer.Renderer = (*EbitenRenderer)(nil)
var _ ebiten.Game = (*EbitenRenderer)(nil)
