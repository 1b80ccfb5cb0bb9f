// Package walls classifies the cells around a floor into wall tile categories
// using neighbor bitmasks. It only decides which tile belongs where; painting
// is left to a renderer.
package walls

import "cryptforge/pkg/engine/world"

// Tile is a wall tile category
type Tile int

// Tile categories. None means no wall tile is placed.
const (
	None Tile = iota
	Top
	SideLeft
	SideRight
	Bottom
	Full
	InnerCornerDownLeft
	InnerCornerDownRight
	DiagonalCornerDownLeft
	DiagonalCornerDownRight
	DiagonalCornerUpLeft
	DiagonalCornerUpRight
)

// String returns the tile category name
func (t Tile) String() string {
	switch t {
	case None:
		return "None"
	case Top:
		return "Top"
	case SideLeft:
		return "SideLeft"
	case SideRight:
		return "SideRight"
	case Bottom:
		return "Bottom"
	case Full:
		return "Full"
	case InnerCornerDownLeft:
		return "InnerCornerDownLeft"
	case InnerCornerDownRight:
		return "InnerCornerDownRight"
	case DiagonalCornerDownLeft:
		return "DiagonalCornerDownLeft"
	case DiagonalCornerDownRight:
		return "DiagonalCornerDownRight"
	case DiagonalCornerUpLeft:
		return "DiagonalCornerUpLeft"
	case DiagonalCornerUpRight:
		return "DiagonalCornerUpRight"
	default:
		return "Unknown"
	}
}

// IsCorner reports whether the tile is an inner or diagonal corner
func (t Tile) IsCorner() bool {
	return t >= InnerCornerDownLeft && t <= DiagonalCornerUpRight
}

// Placement is a wall tile at a grid cell
type Placement struct {
	Cell world.Point
	Tile Tile
}
