package walls

import (
	"sort"

	"cryptforge/pkg/engine/world"
)

// CardinalMask returns the four-direction neighbor mask of p
func CardinalMask(floor world.FloorSet, p world.Point) int {
	mask := 0
	if floor.Has(p.Neighbor(world.Up)) {
		mask |= BitTop
	}
	if floor.Has(p.Neighbor(world.Left)) {
		mask |= BitLeft
	}
	if floor.Has(p.Neighbor(world.Right)) {
		mask |= BitRight
	}
	if floor.Has(p.Neighbor(world.Down)) {
		mask |= BitBottom
	}
	return mask
}

// EightMask returns the eight-direction neighbor mask of p
func EightMask(floor world.FloorSet, p world.Point) int {
	mask := CardinalMask(floor, p) << 4
	if floor.Has(p.Neighbor(world.UpLeft)) {
		mask |= BitTopLeft
	}
	if floor.Has(p.Neighbor(world.UpRight)) {
		mask |= BitTopRight
	}
	if floor.Has(p.Neighbor(world.DownLeft)) {
		mask |= BitBottomLeft
	}
	if floor.Has(p.Neighbor(world.DownRight)) {
		mask |= BitBottomRight
	}
	return mask
}

// CardinalTile looks up the four-direction table. Out-of-range masks give None.
func CardinalTile(mask int) Tile {
	if mask < 0 || mask >= len(cardinalTiles) {
		return None
	}
	return cardinalTiles[mask]
}

// CornerTile looks up the eight-direction table. Out-of-range masks give None.
func CornerTile(mask int) Tile {
	if mask < 0 || mask >= len(cornerTiles) {
		return None
	}
	return cornerTiles[mask]
}

// Classify returns the wall placements around floor, sorted row-major.
// Cells next to the floor get a tile from the cardinal table; cells that also
// match the corner table get the corner tile instead. Masks missing from both
// tables produce no placement.
func Classify(floor world.FloorSet) []Placement {
	tiles := make(map[world.Point]Tile)

	// Pass 1: cardinal neighbors of floor
	cardinal := neighborsOutside(floor, world.CardinalDirections())
	cardinal.Each(func(p world.Point) {
		if tile := CardinalTile(CardinalMask(floor, p)); tile != None {
			tiles[p] = tile
		}
	})

	// Pass 2: any neighbor of floor, corner table wins when it matches
	all := neighborsOutside(floor, world.AllDirections())
	all.Each(func(p world.Point) {
		if tile := CornerTile(EightMask(floor, p)); tile != None {
			tiles[p] = tile
		}
	})

	placements := make([]Placement, 0, len(tiles))
	for cell, tile := range tiles {
		placements = append(placements, Placement{Cell: cell, Tile: tile})
	}
	sort.Slice(placements, func(i, j int) bool {
		return placements[i].Cell.Less(placements[j].Cell)
	})
	return placements
}

// neighborsOutside collects the cells next to floor in the given directions that are not floor
func neighborsOutside(floor world.FloorSet, dirs []world.Direction) world.FloorSet {
	out := world.NewFloorSet()
	floor.Each(func(p world.Point) {
		for _, dir := range dirs {
			n := p.Neighbor(dir)
			if !floor.Has(n) {
				out.Put(n)
			}
		}
	})
	return out
}

// TileMap returns the placements keyed by cell
func TileMap(placements []Placement) map[world.Point]Tile {
	m := make(map[world.Point]Tile, len(placements))
	for _, p := range placements {
		m[p.Cell] = p.Tile
	}
	return m
}
