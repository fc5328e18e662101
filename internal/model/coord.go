package model

// Coord is a tile coordinate on the dungeon grid.
// Value type, passed by value (immutable).
type Coord struct {
	X int32
	Y int32
}

// NewCoord creates a Coord at (x, y).
func NewCoord(x, y int32) Coord {
	return Coord{X: x, Y: y}
}

// Add returns the coordinate one step away in the given direction.
func (c Coord) Add(d Direction) Coord {
	dx, dy := d.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// DistanceSquared returns the squared Euclidean distance to another tile
// (no sqrt, used for nearest-first ordering).
func (c Coord) DistanceSquared(other Coord) int64 {
	dx := int64(c.X - other.X)
	dy := int64(c.Y - other.Y)
	return dx*dx + dy*dy
}

// Chebyshev returns the chessboard distance to another tile. One diagonal
// step covers one Chebyshev unit, matching per-turn movement.
func (c Coord) Chebyshev(other Coord) int32 {
	dx := abs32(c.X - other.X)
	dy := abs32(c.Y - other.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// Aligned reports whether the other tile sits on one of the eight rays
// (row, column, or exact diagonal) from c.
func (c Coord) Aligned(other Coord) bool {
	dx := c.X - other.X
	dy := c.Y - other.Y
	return dx == 0 || dy == 0 || abs32(dx) == abs32(dy)
}

// DirectionTo returns the direction of the unit step from c toward other.
// Returns (DirNone, false) when the tiles are equal.
func (c Coord) DirectionTo(other Coord) (Direction, bool) {
	return DirectionOf(sign32(other.X-c.X), sign32(other.Y-c.Y))
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func sign32(v int32) int32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
