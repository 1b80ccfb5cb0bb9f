package renderer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"cryptforge/pkg/game/levelgen"
	"cryptforge/pkg/game/walls"
)

// Glyphs used for text maps
const (
	IconFloor    = "·"
	IconCorridor = "░"
	IconBoss     = "▓"
	IconAnchor   = "◆"
	IconStart    = "@"
	IconVoid     = " "
)

var (
	ColorFloor       color.Style
	ColorCorridor    color.Style
	ColorBoss        color.Style
	ColorWall        color.Style
	ColorCorner      color.Style
	ColorAction      color.Style
	ColorActionShort color.Style
	ColorDenied      color.Style
	ColorSubtle      color.Style
	ColorStart       color.Style

	regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:]+)}`)
)

// InitColors initializes the color styles
func InitColors() {
	ColorFloor = color.Style{color.FgGray}
	ColorCorridor = color.Style{color.FgBlue}
	ColorBoss = color.Style{color.FgRed, color.OpBold}
	ColorWall = color.Style{color.FgWhite}
	ColorCorner = color.Style{color.FgYellow}
	ColorAction = color.Style{color.FgMagenta}
	ColorActionShort = color.Style{color.FgMagenta, color.OpBold}
	ColorDenied = color.Style{color.FgRed, color.OpBold}
	ColorSubtle = color.Style{color.FgGray, color.OpBold}
	ColorStart = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
}

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// FormatString formats a string with special markup:
// GT{KEY} translates KEY, ACTION{word} highlights a command, FLOOR{n} a floor number.
func FormatString(msg string, a ...any) string {
	ret := fmt.Sprintf(msg, a...)

	matches := regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ACTION":
			val = ColorActionShort.Sprint(operand[0:1]) + ColorAction.Sprint(operand[1:])
		case "FLOOR":
			val = ColorBoss.Sprint(operand)
		case "DENIED":
			val = ColorDenied.Sprint(operand)
		default:
			val = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// PaintWall returns the styled glyph for a wall tile
func PaintWall(tile walls.Tile) string {
	glyph := WallGlyph(tile)
	if tile.IsCorner() {
		return ColorCorner.Sprint(glyph)
	}
	return ColorWall.Sprint(glyph)
}

// WallGlyph returns the block glyph for a wall tile, solid toward the floor it faces
func WallGlyph(tile walls.Tile) string {
	switch tile {
	case walls.Top:
		return "▄"
	case walls.Bottom:
		return "▀"
	case walls.SideLeft:
		return "▐"
	case walls.SideRight:
		return "▌"
	case walls.Full:
		return "█"
	case walls.InnerCornerDownLeft:
		return "▜"
	case walls.InnerCornerDownRight:
		return "▛"
	case walls.DiagonalCornerDownLeft:
		return "▝"
	case walls.DiagonalCornerDownRight:
		return "▘"
	case walls.DiagonalCornerUpLeft:
		return "▗"
	case walls.DiagonalCornerUpRight:
		return "▖"
	default:
		return IconVoid
	}
}

// SpawnGlyph returns the glyph and style of a placed entity
func SpawnGlyph(kind levelgen.SpawnKind) (string, color.Style) {
	switch kind {
	case levelgen.SpawnPlayer:
		return IconStart, ColorStart
	case levelgen.SpawnBoss:
		return "Ω", ColorBoss
	case levelgen.SpawnMonster:
		return "m", ColorDenied
	case levelgen.SpawnLoot:
		return "$", ColorCorner
	case levelgen.SpawnShrine:
		return "†", ColorAction
	default:
		return "?", ColorSubtle
	}
}
