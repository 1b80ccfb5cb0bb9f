// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"cryptforge/pkg/engine/world"
	"cryptforge/pkg/game/state"
	"cryptforge/pkg/game/walls"
)

// ErrNoLayout is returned when a dump is requested before the first generation
var ErrNoLayout = errors.New("no layout generated")

// cellSymbol returns the single-character symbol for a floor cell (no player overlay).
func cellSymbol(s *state.Session, p world.Point) rune {
	l := s.Layout
	switch {
	case l.BossRoom.Has(p):
		return 'B'
	case l.Rooms[p].Size() > 0:
		return 'A'
	case l.InAnyRoom(p):
		return 'r'
	case l.IsCorridor(p):
		return '='
	default:
		return '.'
	}
}

// wallSymbol returns the ASCII symbol for a wall tile
func wallSymbol(tile walls.Tile) rune {
	switch tile {
	case walls.Top, walls.Bottom:
		return '-'
	case walls.SideLeft, walls.SideRight:
		return '|'
	case walls.Full:
		return '#'
	case walls.None:
		return ' '
	default:
		return '+'
	}
}

// writeMapGrid writes the map with the highest row first, so Up points up.
func writeMapGrid(w io.Writer, s *state.Session) {
	tiles := walls.TileMap(s.Walls)

	lo, hi, ok := s.Layout.Floor.Bounds()
	if !ok {
		return
	}
	// walls sit one cell outside the floor
	lo = lo.Add(world.Pt(-1, -1))
	hi = hi.Add(world.Pt(1, 1))

	for y := hi.Y; y >= lo.Y; y-- {
		for x := lo.X; x <= hi.X; x++ {
			p := world.Pt(x, y)
			switch {
			case p == s.Player:
				fmt.Fprint(w, "@")
			case s.Layout.Floor.Has(p):
				fmt.Fprintf(w, "%c", cellSymbol(s, p))
			default:
				fmt.Fprintf(w, "%c", wallSymbol(tiles[p]))
			}
		}
		fmt.Fprintln(w)
	}
}

// WriteMapDump writes a full debug dump of the current floor: metadata,
// legend, map and room list.
func WriteMapDump(w io.Writer, s *state.Session) error {
	if s == nil || !s.HasLayout() {
		return ErrNoLayout
	}
	l := s.Layout

	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "=== MAP DUMP ===")
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "--- Metadata ---")
	fmt.Fprintf(bw, "floor: %d\n", s.Floor)
	fmt.Fprintf(bw, "seed: %d\n", s.Seed)
	fmt.Fprintf(bw, "corridor_count: %d\n", s.Params.CorridorCount)
	fmt.Fprintf(bw, "corridor_length: %d\n", s.Params.CorridorLength)
	fmt.Fprintf(bw, "room_fraction: %g\n", s.Params.RoomFraction)
	fmt.Fprintf(bw, "boss_size: %d\n", s.Params.BossSize)
	fmt.Fprintf(bw, "coordinate_system: x,y (y grows upward, origin at boss room centre)\n")
	fmt.Fprintf(bw, "start: %v\n", l.Start)
	fmt.Fprintf(bw, "player: %v\n", s.Player)
	fmt.Fprintf(bw, "floor_cells: %d\n", l.Floor.Size())
	fmt.Fprintf(bw, "corridor_cells: %d\n", l.Corridors.Size())
	fmt.Fprintf(bw, "segments: %d\n", len(l.Segments))
	fmt.Fprintf(bw, "rooms: %d\n", len(l.Rooms))
	fmt.Fprintf(bw, "forced_rooms: %d\n", len(l.ForcedRooms))
	fmt.Fprintf(bw, "wall_tiles: %d\n", len(s.Walls))
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "--- Legend ---")
	fmt.Fprintln(bw, "@ = player  B = boss room  A = room anchor  r = room  = = corridor  - = top/bottom wall  | = side wall  # = full wall  + = corner")
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "--- Map ---")
	writeMapGrid(bw, s)
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "--- Rooms ---")
	forced := world.NewFloorSet(l.ForcedRooms...)
	for _, anchor := range l.RoomAnchors() {
		fmt.Fprintf(bw, "  anchor: %v cells: %d dead_end: %v\n", anchor, l.Rooms[anchor].Size(), forced.Has(anchor))
	}
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "=== END MAP DUMP ===")

	return bw.Flush()
}

// DumpMapToFile writes WriteMapDump output to path and returns the absolute path.
func DumpMapToFile(s *state.Session, path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteMapDump(f, s); err != nil {
		return absPath, err
	}
	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
