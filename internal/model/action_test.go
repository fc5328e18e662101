package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionStructurallyValid(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		slots  int
		want   bool
	}{
		{"wait always valid", Wait(), 0, true},
		{"move with legal direction", Move(DirNorth), 4, true},
		{"move with no direction", Action{Kind: ActionMove, Dir: DirNone}, 4, false},
		{"move with junk direction", Action{Kind: ActionMove, Dir: Direction(99)}, 4, false},
		{"ability slot in bounds", UseAbility(0, DirEast), 4, true},
		{"ability last slot", UseAbility(3, DirEast), 4, true},
		{"ability slot out of bounds", UseAbility(4, DirEast), 4, false},
		{"ability negative slot", UseAbility(-1, DirEast), 4, false},
		{"unknown kind", Action{Kind: ActionKind(42)}, 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.action.StructurallyValid(tt.slots))
		})
	}
}

func TestDirectionDeltaRoundTrip(t *testing.T) {
	for d := Direction(0); d < NumDirections; d++ {
		dx, dy := d.Delta()
		got, ok := DirectionOf(dx, dy)
		assert.True(t, ok, "direction %v", d)
		assert.Equal(t, d, got)
	}

	_, ok := DirectionOf(0, 0)
	assert.False(t, ok)
}

func TestCoordDirectionTo(t *testing.T) {
	origin := NewCoord(5, 5)

	tests := []struct {
		name string
		to   Coord
		want Direction
	}{
		{"due north", NewCoord(5, 0), DirNorth},
		{"due south", NewCoord(5, 9), DirSouth},
		{"north-east diagonal", NewCoord(9, 1), DirNorthEast},
		{"off-diagonal still unit step", NewCoord(8, 4), DirNorthEast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := origin.DirectionTo(tt.to)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := origin.DirectionTo(origin)
	assert.False(t, ok, "no direction to self")
}
