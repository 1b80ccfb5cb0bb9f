package world

// FOVRadius is the default field of view radius (Chebyshev distance).
const FOVRadius = 6

// CalculateFOV returns the cells visible from center within radius.
// Cells outside floor block sight but are themselves visible, so the walls
// around a lit area show up.
func CalculateFOV(floor FloorSet, center Point, radius int) FloorSet {
	visible := NewFloorSet(center)

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if chebyshevDist(dx, dy) > radius {
				continue
			}
			target := center.Add(Pt(dx, dy))
			if hasLineOfSight(floor, center, target) {
				visible.Put(target)
			}
		}
	}

	return visible
}

// chebyshevDist returns Chebyshev (chessboard) distance for (dx, dy).
func chebyshevDist(dx, dy int) int {
	dx, dy = abs(dx), abs(dy)
	if dx > dy {
		return dx
	}
	return dy
}

// sign returns -1, 0 or 1
func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// hasLineOfSight reports whether every cell strictly between from and to is floor.
// Uses Bresenham's line algorithm.
func hasLineOfSight(floor FloorSet, from, to Point) bool {
	dx, dy := to.X-from.X, to.Y-from.Y
	if dx == 0 && dy == 0 {
		return true
	}

	absDx, absDy := abs(dx), abs(dy)
	stepX, stepY := sign(dx), sign(dy)
	x, y := from.X, from.Y

	if absDx >= absDy {
		// Step along x
		err := 2*absDy - absDx
		for x != to.X {
			x += stepX
			if err > 0 {
				y += stepY
				err -= 2 * absDx
			}
			err += 2 * absDy

			p := Pt(x, y)
			if p != to && !floor.Has(p) {
				return false
			}
		}
	} else {
		// Step along y
		err := 2*absDx - absDy
		for y != to.Y {
			y += stepY
			if err > 0 {
				x += stepX
				err -= 2 * absDy
			}
			err += 2 * absDx

			p := Pt(x, y)
			if p != to && !floor.Has(p) {
				return false
			}
		}
	}

	return true
}

// RevealFOV adds every cell within FOV of center to discovered
func RevealFOV(discovered, floor FloorSet, center Point, radius int) {
	discovered.Union(CalculateFOV(floor, center, radius))
}
