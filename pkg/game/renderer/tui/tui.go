package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"cryptforge/pkg/engine/input"
	"cryptforge/pkg/engine/terminal"
	"cryptforge/pkg/engine/world"
	"cryptforge/pkg/game/floor"
	"cryptforge/pkg/game/generator"
	"cryptforge/pkg/game/levelgen"
	"cryptforge/pkg/game/menu"
	"cryptforge/pkg/game/renderer"
	"cryptforge/pkg/game/state"
	"cryptforge/pkg/game/walls"
)

// Viewport margins and minimum sizes
const (
	ViewportMinRows = 7
	ViewportMinCols = 15
	// Lines needed outside viewport:
	// - Floor indicator + blank (2)
	// - Status line + blank (2)
	// - Actions (1)
	// - Messages pane (header + 5 messages + footer = 7)
	// - Input prompt (2)
	ViewportTopMargin = 14
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out io.Writer

	// Fog hides cells the player has not seen yet
	Fog bool

	layout *generator.Layout
	tiles  map[world.Point]walls.Tile
	spawns map[world.Point]levelgen.SpawnKind
}

// New creates a new TUI renderer writing to stdout
func New() *TUIRenderer {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter creates a TUI renderer writing to out
func NewWithWriter(out io.Writer) *TUIRenderer {
	return &TUIRenderer{
		out:    out,
		tiles:  map[world.Point]walls.Tile{},
		spawns: map[world.Point]levelgen.SpawnKind{},
	}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	renderer.InitColors()
}

// DrawFloor receives a newly generated layout
func (t *TUIRenderer) DrawFloor(layout *generator.Layout) {
	t.layout = layout
	t.spawns = map[world.Point]levelgen.SpawnKind{}
}

// PaintWalls receives the wall tiles of the current layout
func (t *TUIRenderer) PaintWalls(placements []walls.Placement) {
	t.tiles = walls.TileMap(placements)
}

// ShowSpawns receives the entities placed on the current layout
func (t *TUIRenderer) ShowSpawns(spawns []levelgen.Spawn) {
	t.spawns = make(map[world.Point]levelgen.SpawnKind, len(spawns))
	for _, s := range spawns {
		if s.Kind == levelgen.SpawnPlayer {
			continue
		}
		t.spawns[s.Cell] = s.Kind
	}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	fmt.Fprint(t.out, terminal.ClearScreen())
}

// GetInput reads one key from the terminal and returns a high-level Intent.
func (t *TUIRenderer) GetInput() (input.Intent, error) {
	return input.ReadIntent()
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, msg)
}

// GetViewportSize returns the viewport dimensions based on terminal size
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	termWidth, termHeight := terminal.GetSize()
	cols, rows = terminal.Viewport(termWidth, termHeight, ViewportTopMargin)

	if cols < ViewportMinCols {
		cols = ViewportMinCols
	}
	if rows < ViewportMinRows {
		rows = ViewportMinRows
	}

	// Keep both odd for centering
	if rows%2 == 0 {
		rows--
	}
	if cols%2 == 0 {
		cols--
	}

	return rows, cols
}

// RenderFrame renders a complete frame
func (t *TUIRenderer) RenderFrame(s *state.Session) {
	t.Clear()

	fmt.Fprintf(t.out, "%s %s\n\n", renderer.ColorAction.Sprintf("Floor %d", s.Floor), renderer.ColorSubtle.Sprint(floor.ThemeFor(s.Floor)))

	rows, cols := t.GetViewportSize()
	t.RenderMap(s, rows, cols)

	t.printStatus(s)
	t.printPossibleActions()
	t.printMessagesPane(s)

	fmt.Fprint(t.out, "\n> ")
}

// RenderMap writes a rows×cols window of the floor centred on the player.
// The top row of the window is the highest y.
func (t *TUIRenderer) RenderMap(s *state.Session, rows, cols int) {
	if t.layout == nil {
		fmt.Fprintln(t.out, gotext.Get("NO_FLOOR"))
		return
	}

	top := s.Player.Y + rows/2
	left := s.Player.X - cols/2

	var sb strings.Builder
	for y := top; y > top-rows; y-- {
		for x := left; x < left+cols; x++ {
			sb.WriteString(t.renderCell(s, world.Pt(x, y)))
		}
		sb.WriteString("\n")
	}
	fmt.Fprint(t.out, sb.String())
}

// renderCell returns the string representation of a cell
func (t *TUIRenderer) renderCell(s *state.Session, p world.Point) string {
	if p == s.Player {
		return renderer.ColorStart.Sprint(renderer.IconStart)
	}
	if t.Fog && !s.IsDiscovered(p) {
		return renderer.IconVoid
	}

	if kind, ok := t.spawns[p]; ok {
		glyph, style := renderer.SpawnGlyph(kind)
		return style.Sprint(glyph)
	}

	l := t.layout
	if l.Floor.Has(p) {
		switch {
		case l.BossRoom.Has(p):
			return renderer.ColorBoss.Sprint(renderer.IconFloor)
		case l.IsCorridor(p) && !l.InAnyRoom(p):
			return renderer.ColorCorridor.Sprint(renderer.IconCorridor)
		default:
			return renderer.ColorFloor.Sprint(renderer.IconFloor)
		}
	}

	if tile, ok := t.tiles[p]; ok {
		return renderer.PaintWall(tile)
	}
	return renderer.IconVoid
}

// printStatus prints corridor count, room count and the player's room
func (t *TUIRenderer) printStatus(s *state.Session) {
	where := gotext.Get("IN_CORRIDOR")
	switch {
	case t.layout == nil:
		where = ""
	case t.layout.BossRoom.Has(s.Player):
		where = gotext.Get("IN_BOSS_ROOM")
	case t.layout.InAnyRoom(s.Player):
		where = gotext.Get("IN_ROOM")
	}

	rooms := 0
	if t.layout != nil {
		rooms = len(t.layout.Rooms)
	}
	fmt.Fprintf(t.out, "\n%s %d  %s %d  %s\n\n",
		renderer.ColorSubtle.Sprint(gotext.Get("CORRIDORS")), s.Params.CorridorCount,
		renderer.ColorSubtle.Sprint(gotext.Get("ROOMS")), rooms,
		where)
}

// printPossibleActions prints the key bindings
func (t *TUIRenderer) printPossibleActions() {
	fmt.Fprintln(t.out, renderer.FormatString(menu.ActionsLine()))
}

// printMessagesPane prints the session message log
func (t *TUIRenderer) printMessagesPane(s *state.Session) {
	fmt.Fprintln(t.out, renderer.ColorSubtle.Sprint("─── ")+gotext.Get("MESSAGES")+renderer.ColorSubtle.Sprint(" ───"))
	for _, msg := range s.Messages {
		fmt.Fprintln(t.out, "  "+msg)
	}
	for i := len(s.Messages); i < 5; i++ {
		fmt.Fprintln(t.out)
	}
	fmt.Fprintln(t.out, renderer.ColorSubtle.Sprint(strings.Repeat("─", 16)))
}

// StripColors removes color codes, for tests and plain dumps
func StripColors(s string) string {
	return color.ClearCode(s)
}

var _ renderer.Renderer = (*TUIRenderer)(nil)
