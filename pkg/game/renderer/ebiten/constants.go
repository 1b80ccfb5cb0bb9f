// Package ebiten provides an Ebiten-based 2D graphical viewer for generated floors.
package ebiten

import "image/color"

// Color palette
var (
	colorBackground    = color.RGBA{20, 17, 15, 255}    // Warm near-black
	colorMapBackground = color.RGBA{11, 9, 7, 255}      // Darker for map area
	colorPlayer        = color.RGBA{0, 255, 0, 255}     // Bright green
	colorWall          = color.RGBA{180, 170, 160, 255} // Light stone
	colorCorner        = color.RGBA{233, 196, 106, 255} // Sandstone for corner pieces
	colorFloor         = color.RGBA{70, 62, 56, 255}    // Dim floor
	colorCorridor      = color.RGBA{69, 123, 157, 255}  // Steel blue
	colorBossFloor     = color.RGBA{110, 30, 35, 255}   // Dried blood
	colorBoss          = color.RGBA{230, 57, 70, 255}   // Bright red
	colorMonster       = color.RGBA{255, 120, 120, 255} // Soft red
	colorLoot          = color.RGBA{255, 200, 100, 255} // Gold
	colorShrine        = color.RGBA{180, 150, 250, 255} // Violet
	colorText          = color.RGBA{220, 210, 200, 255} // Off-white
	colorSubtle        = color.RGBA{140, 130, 120, 255} // Muted
	colorPanel         = color.RGBA{30, 26, 22, 220}    // Semi-transparent dark
)

// Tile size constraints
const (
	defaultTileSize = 24
	minTileSize     = 8
	maxTileSize     = 64
	tileSizeStep    = 4
	baseFontSize    = 16.0 // Base font size at default tile size
)

const (
	keyRepeatInitialDelay = 400 // Initial delay before first repeat (milliseconds)
	keyRepeatInterval     = 90  // Interval between repeat events (milliseconds)
)

// Layout margins in pixels
const (
	mapMargin     = 20
	messageLines  = 5
	minViewport   = 11
	headerPadding = 20
)
