package model

// Direction is one of the eight grid directions an actor can face or step.
type Direction int32

const (
	DirNone Direction = iota - 1
	DirSouth
	DirSouthEast
	DirEast
	DirNorthEast
	DirNorth
	DirNorthWest
	DirWest
	DirSouthWest
)

// NumDirections is the count of real directions (DirNone excluded).
const NumDirections = 8

// directionDeltas is indexed by Direction. Y grows southward.
var directionDeltas = [NumDirections][2]int32{
	{0, 1},   // south
	{1, 1},   // south-east
	{1, 0},   // east
	{1, -1},  // north-east
	{0, -1},  // north
	{-1, -1}, // north-west
	{-1, 0},  // west
	{-1, 1},  // south-west
}

// Delta returns the (dx, dy) step for the direction. DirNone yields (0, 0).
func (d Direction) Delta() (int32, int32) {
	if d < 0 || d >= NumDirections {
		return 0, 0
	}
	return directionDeltas[d][0], directionDeltas[d][1]
}

// Diagonal reports whether the direction moves on both axes.
func (d Direction) Diagonal() bool {
	dx, dy := d.Delta()
	return dx != 0 && dy != 0
}

// Valid reports whether d is one of the eight real directions.
func (d Direction) Valid() bool {
	return d >= 0 && d < NumDirections
}

// DirectionOf maps a unit step (dx, dy in {-1,0,1}) to a Direction.
// Returns (DirNone, false) for (0, 0).
func DirectionOf(dx, dy int32) (Direction, bool) {
	for d, delta := range directionDeltas {
		if delta[0] == dx && delta[1] == dy {
			return Direction(d), true
		}
	}
	return DirNone, false
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirSouth:
		return "S"
	case DirSouthEast:
		return "SE"
	case DirEast:
		return "E"
	case DirNorthEast:
		return "NE"
	case DirNorth:
		return "N"
	case DirNorthWest:
		return "NW"
	case DirWest:
		return "W"
	case DirSouthWest:
		return "SW"
	default:
		return "NONE"
	}
}
