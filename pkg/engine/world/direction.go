package world

// Direction represents one of the eight grid directions.
// The first four values are the cardinal directions.
type Direction int

// Direction constants
const (
	Up Direction = iota
	Right
	Down
	Left
	UpRight
	DownRight
	DownLeft
	UpLeft
)

// CardinalDirections returns the four cardinal directions in walk order
// (up, right, down, left). The order is part of the random-walk contract:
// a uniform draw in [0,4) indexes this list.
func CardinalDirections() []Direction {
	return []Direction{Up, Right, Down, Left}
}

// DiagonalDirections returns the four diagonal directions.
func DiagonalDirections() []Direction {
	return []Direction{UpRight, DownRight, DownLeft, UpLeft}
}

// AllDirections returns the eight directions, cardinals first.
func AllDirections() []Direction {
	return []Direction{Up, Right, Down, Left, UpRight, DownRight, DownLeft, UpLeft}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case UpRight:
		return "UpRight"
	case DownRight:
		return "DownRight"
	case DownLeft:
		return "DownLeft"
	case UpLeft:
		return "UpLeft"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the eight known directions
func (d Direction) IsValid() bool {
	return d >= Up && d <= UpLeft
}

// IsCardinal returns true for up, right, down and left
func (d Direction) IsCardinal() bool {
	return d >= Up && d <= Left
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Right:
		return Left
	case Left:
		return Right
	case UpRight:
		return DownLeft
	case DownLeft:
		return UpRight
	case DownRight:
		return UpLeft
	case UpLeft:
		return DownRight
	default:
		return d
	}
}

// Delta returns the unit offset for this direction. Up is +Y.
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{0, 1}
	case Right:
		return Point{1, 0}
	case Down:
		return Point{0, -1}
	case Left:
		return Point{-1, 0}
	case UpRight:
		return Point{1, 1}
	case DownRight:
		return Point{1, -1}
	case DownLeft:
		return Point{-1, -1}
	case UpLeft:
		return Point{-1, 1}
	default:
		return Point{}
	}
}
