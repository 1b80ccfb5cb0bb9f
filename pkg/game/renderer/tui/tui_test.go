package tui

import (
	"bytes"
	"strings"
	"testing"

	"cryptforge/pkg/engine/random"
	"cryptforge/pkg/engine/world"
	"cryptforge/pkg/game/devtools"
	"cryptforge/pkg/game/generator"
	"cryptforge/pkg/game/levelgen"
	"cryptforge/pkg/game/renderer"
	"cryptforge/pkg/game/state"
	"cryptforge/pkg/game/walls"
)

func devFrame(t *testing.T) (*TUIRenderer, *state.Session, *bytes.Buffer) {
	t.Helper()
	layout, err := devtools.DevMapGenerator{}.Generate(generator.DefaultParameters(), random.New(1))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	s := state.NewSession(generator.DefaultParameters(), 1)
	s.SetLayout(layout, walls.Classify(layout.Floor))

	var buf bytes.Buffer
	r := NewWithWriter(&buf)
	r.Init()
	r.DrawFloor(layout)
	r.PaintWalls(s.Walls)
	return r, s, &buf
}

func mapRows(buf *bytes.Buffer) [][]rune {
	var rows [][]rune
	for _, line := range strings.Split(strings.TrimRight(StripColors(buf.String()), "\n"), "\n") {
		rows = append(rows, []rune(line))
	}
	return rows
}

func TestRenderMap_PlayerCentred(t *testing.T) {
	r, s, buf := devFrame(t)
	r.RenderMap(s, 5, 7)

	rows := mapRows(buf)
	if len(rows) != 5 {
		t.Fatalf("rendered %d rows, want 5", len(rows))
	}
	for i, row := range rows {
		if len(row) != 7 {
			t.Errorf("row %d has %d cells, want 7", i, len(row))
		}
	}
	if got := string(rows[2][3]); got != renderer.IconStart {
		t.Errorf("centre cell = %q, want %q", got, renderer.IconStart)
	}
}

func TestRenderMap_WallAboveBossRoom(t *testing.T) {
	r, s, buf := devFrame(t)
	r.RenderMap(s, 5, 7)

	// row 0 is y=2, just above the 3x3 boss room; x=0 is column 3
	rows := mapRows(buf)
	if got, want := string(rows[0][3]), renderer.WallGlyph(walls.Top); got != want {
		t.Errorf("cell above boss room = %q, want %q", got, want)
	}
}

func TestRenderMap_ShowsSpawns(t *testing.T) {
	r, s, buf := devFrame(t)
	r.ShowSpawns([]levelgen.Spawn{
		{Kind: levelgen.SpawnPlayer, Cell: world.Origin},
		{Kind: levelgen.SpawnBoss, Cell: world.Pt(1, 1)},
	})
	r.RenderMap(s, 5, 7)

	rows := mapRows(buf)
	glyph, _ := renderer.SpawnGlyph(levelgen.SpawnBoss)
	if got := string(rows[1][4]); got != glyph {
		t.Errorf("boss cell = %q, want %q", got, glyph)
	}
	if got := string(rows[2][3]); got != renderer.IconStart {
		t.Errorf("player spawn replaced the player glyph: %q", got)
	}
}

func TestRenderMap_NoLayout(t *testing.T) {
	var buf bytes.Buffer
	r := NewWithWriter(&buf)
	r.RenderMap(state.NewSession(generator.DefaultParameters(), 1), 5, 5)
	if buf.Len() == 0 {
		t.Error("RenderMap without layout wrote nothing")
	}
}

func TestRenderFrame_MessagesAndFloor(t *testing.T) {
	r, s, buf := devFrame(t)
	s.AddMessage("hello there")
	r.RenderFrame(s)

	out := StripColors(buf.String())
	if !strings.Contains(out, "Floor 1") {
		t.Errorf("frame missing floor indicator")
	}
	if !strings.Contains(out, "hello there") {
		t.Errorf("frame missing message")
	}
}

func TestRenderMap_FogHidesUnseenCells(t *testing.T) {
	r, s, buf := devFrame(t)
	r.Fog = true
	// only the player cell has been seen
	s.Discovered = world.NewFloorSet(world.Origin)
	r.RenderMap(s, 5, 7)

	for i, row := range mapRows(buf) {
		for j, cell := range row {
			if i == 2 && j == 3 {
				continue
			}
			if cell != ' ' {
				t.Errorf("cell (%d,%d) = %q, want hidden", i, j, cell)
			}
		}
	}
}
