package renderer

import "cryptforge/pkg/game/walls"

// Rect is a rectangle in tile units: (0,0) is the top-left corner of a tile
// and (1,1) its bottom-right corner.
type Rect struct {
	X, Y, W, H float32
}

var (
	upperHalf  = Rect{0, 0, 1, 0.5}
	lowerHalf  = Rect{0, 0.5, 1, 0.5}
	leftHalf   = Rect{0, 0, 0.5, 1}
	rightHalf  = Rect{0.5, 0, 0.5, 1}
	wholeTile  = Rect{0, 0, 1, 1}
	upperLeft  = Rect{0, 0, 0.5, 0.5}
	upperRight = Rect{0.5, 0, 0.5, 0.5}
	lowerLeft  = Rect{0, 0.5, 0.5, 0.5}
	lowerRight = Rect{0.5, 0.5, 0.5, 0.5}
)

// WallShape returns the solid parts of a wall tile, the same blocks WallGlyph draws
func WallShape(tile walls.Tile) []Rect {
	switch tile {
	case walls.Top:
		return []Rect{lowerHalf}
	case walls.Bottom:
		return []Rect{upperHalf}
	case walls.SideLeft:
		return []Rect{rightHalf}
	case walls.SideRight:
		return []Rect{leftHalf}
	case walls.Full:
		return []Rect{wholeTile}
	case walls.InnerCornerDownLeft:
		return []Rect{upperHalf, lowerRight}
	case walls.InnerCornerDownRight:
		return []Rect{upperHalf, lowerLeft}
	case walls.DiagonalCornerDownLeft:
		return []Rect{upperRight}
	case walls.DiagonalCornerDownRight:
		return []Rect{upperLeft}
	case walls.DiagonalCornerUpLeft:
		return []Rect{lowerRight}
	case walls.DiagonalCornerUpRight:
		return []Rect{lowerLeft}
	default:
		return nil
	}
}

// Area returns the covered fraction of a tile
func Area(rects []Rect) float32 {
	var a float32
	for _, r := range rects {
		a += r.W * r.H
	}
	return a
}
