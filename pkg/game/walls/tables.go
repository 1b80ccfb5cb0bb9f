package walls

import "fmt"

// Cardinal mask bits for the four-direction pass
const (
	BitTop    = 1 << 3
	BitLeft   = 1 << 2
	BitRight  = 1 << 1
	BitBottom = 1 << 0
)

// Diagonal mask bits for the eight-direction pass. The cardinal bits occupy
// the high nibble of an eight-direction mask (cardinal << 4).
const (
	BitTopLeft     = 1 << 3
	BitTopRight    = 1 << 2
	BitBottomLeft  = 1 << 1
	BitBottomRight = 1 << 0
)

// cardinalTiles is indexed by the four-direction mask of a wall cell.
// A set bit means the neighbor in that direction is floor.
var cardinalTiles = [16]Tile{
	0b0000: None,
	0b0001: Top,       // floor below
	0b0010: SideLeft,  // floor right
	0b0011: Top,       // floor right, below
	0b0100: SideRight, // floor left
	0b0101: Top,       // floor left, below
	0b0110: Full,      // floor left, right
	0b0111: Top,       // floor left, right, below
	0b1000: Bottom,    // floor above
	0b1001: Full,
	0b1010: Full,
	0b1011: Full,
	0b1100: Full,
	0b1101: Full,
	0b1110: Full,
	0b1111: Full,
}

// cornerPattern is a hand-authored set of eight-direction masks.
// Patterns read "TLRB tl tr bl br" with '?' matching either value.
type cornerPattern struct {
	tile     Tile
	patterns []string
}

var cornerPatterns = []cornerPattern{
	// Concave corners where the wall turns below a floor
	{InnerCornerDownLeft, []string{"1010 ????"}},
	{InnerCornerDownRight, []string{"1100 ????"}},

	// Convex room corners touched only diagonally
	{DiagonalCornerDownLeft, []string{"0000 0100"}},
	{DiagonalCornerDownRight, []string{"0000 1000"}},
	{DiagonalCornerUpLeft, []string{"0000 0001"}},
	{DiagonalCornerUpRight, []string{"0000 0010"}},

	// Fallback: a plain bottom wall under two upper diagonals
	{Bottom, []string{"0000 1100"}},

	// Fallback: walls sandwiched between floor on opposite sides
	{Full, []string{
		"0000 0011", "0000 0101", "0000 0110", "0000 0111",
		"0000 1001", "0000 1010", "0000 1011",
		"0000 1101", "0000 1110", "0000 1111",
		"0001 1???", "0001 01??",
		"1000 ??1?", "1000 ???1",
		"0010 1???", "0010 ??1?",
		"0100 ?1??", "0100 ???1",
	}},
}

// cornerTiles is indexed by the eight-direction mask of a wall cell
var cornerTiles = buildCornerTiles(cornerPatterns)

// buildCornerTiles expands the patterns into a flat table. Two categories
// claiming the same mask is a table authoring error and panics.
func buildCornerTiles(sets []cornerPattern) [256]Tile {
	var table [256]Tile
	for _, set := range sets {
		for _, pattern := range set.patterns {
			for _, mask := range expandPattern(pattern) {
				if existing := table[mask]; existing != None && existing != set.tile {
					panic(fmt.Sprintf("walls: mask %08b claimed by %v and %v", mask, existing, set.tile))
				}
				table[mask] = set.tile
			}
		}
	}
	return table
}

// expandPattern returns every mask matched by an eight-character pattern
func expandPattern(pattern string) []int {
	masks := []int{0}
	bits := 0
	for _, r := range pattern {
		switch r {
		case ' ':
			continue
		case '0':
			for i := range masks {
				masks[i] <<= 1
			}
		case '1':
			for i := range masks {
				masks[i] = masks[i]<<1 | 1
			}
		case '?':
			next := make([]int, 0, len(masks)*2)
			for _, m := range masks {
				next = append(next, m<<1, m<<1|1)
			}
			masks = next
		default:
			panic(fmt.Sprintf("walls: bad pattern %q", pattern))
		}
		bits++
	}
	if bits != 8 {
		panic(fmt.Sprintf("walls: pattern %q has %d bits, want 8", pattern, bits))
	}
	return masks
}
