package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cryptforge/pkg/engine/world"
	"cryptforge/pkg/game/renderer"
	"cryptforge/pkg/game/state"
	"cryptforge/pkg/game/walls"
)

const screenshotHeader = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Cryptforge - Floor %d</title>
    <style>
        body {
            background-color: #14110f;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #d4a373;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .map-container {
            background-color: #0b0907;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.0;
            font-size: 16px;
        }
        .player { color: #00ff00; font-weight: bold; }
        .wall { color: #bbb; }
        .corner { color: #e9c46a; }
        .floor { color: #555; }
        .corridor { color: #457b9d; }
        .boss { color: #e63946; font-weight: bold; }
    </style>
</head>
<body>
`

// screenshotCell returns the css class and glyph of one map cell
func screenshotCell(s *state.Session, tiles map[world.Point]walls.Tile, p world.Point) (class, glyph string) {
	l := s.Layout
	switch {
	case p == s.Player:
		return "player", renderer.IconStart
	case l.BossRoom.Has(p):
		return "boss", renderer.IconBoss
	case l.Floor.Has(p) && l.IsCorridor(p) && !l.InAnyRoom(p):
		return "corridor", renderer.IconCorridor
	case l.Floor.Has(p):
		return "floor", renderer.IconFloor
	}

	tile, ok := tiles[p]
	if !ok {
		return "", renderer.IconVoid
	}
	if tile.IsCorner() {
		return "corner", renderer.WallGlyph(tile)
	}
	return "wall", renderer.WallGlyph(tile)
}

// WriteScreenshotHTML writes the whole floor as a colored HTML page
func WriteScreenshotHTML(w io.Writer, s *state.Session) error {
	if s == nil || !s.HasLayout() {
		return ErrNoLayout
	}

	var html strings.Builder
	fmt.Fprintf(&html, screenshotHeader, s.Floor)
	fmt.Fprintf(&html, "<div class=\"header\">Floor %d &middot; seed %d &middot; %d corridors</div>\n", s.Floor, s.Seed, s.Params.CorridorCount)
	html.WriteString("<div class=\"map-container\">\n")

	tiles := walls.TileMap(s.Walls)
	lo, hi, _ := s.Layout.Floor.Bounds()
	lo = lo.Add(world.Pt(-1, -1))
	hi = hi.Add(world.Pt(1, 1))

	for y := hi.Y; y >= lo.Y; y-- {
		html.WriteString("<div class=\"map-row\">")
		for x := lo.X; x <= hi.X; x++ {
			class, glyph := screenshotCell(s, tiles, world.Pt(x, y))
			if class == "" {
				html.WriteString(glyph)
				continue
			}
			fmt.Fprintf(&html, "<span class=\"%s\">%s</span>", class, glyph)
		}
		html.WriteString("</div>\n")
	}

	html.WriteString("</div>\n</body>\n</html>\n")

	_, err := io.WriteString(w, html.String())
	return err
}

// SaveScreenshotHTML saves the current floor as an HTML file in dir and
// returns its path
func SaveScreenshotHTML(s *state.Session, dir string) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	filename := filepath.Join(dir, fmt.Sprintf("screenshot-%s.html", timestamp))

	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteScreenshotHTML(f, s); err != nil {
		return filename, err
	}
	return filename, nil
}
