package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgrange/crawlmind/internal/model"
)

func mustParse(t *testing.T, rows []string) *World {
	t.Helper()
	w, err := Parse(rows)
	require.NoError(t, err)
	return w
}

func TestParseRejectsBadInput(t *testing.T) {
	_, err := Parse(nil)
	assert.Error(t, err)

	_, err = Parse([]string{"...", ".."})
	assert.Error(t, err, "ragged rows")

	_, err = Parse([]string{"..?"})
	assert.Error(t, err, "unknown tile rune")
}

func TestBlockedByTerrainAndMobility(t *testing.T) {
	w := mustParse(t, []string{
		"#.~^",
		"x+>.",
	})

	tests := []struct {
		name     string
		c        model.Coord
		mobility model.Mobility
		want     bool
	}{
		{"wall blocks everyone", model.NewCoord(0, 0), model.MobilityAll, true},
		{"open floor for walker", model.NewCoord(1, 0), model.MobilityDefault, false},
		{"water blocks walker", model.NewCoord(2, 0), model.MobilityDefault, true},
		{"water open to swimmer", model.NewCoord(2, 0), model.MobilityGround | model.MobilityWater, false},
		{"lava blocks walker", model.NewCoord(3, 0), model.MobilityDefault, true},
		{"chasm blocks walker", model.NewCoord(0, 1), model.MobilityDefault, true},
		{"cover blocks walker", model.NewCoord(1, 1), model.MobilityDefault, true},
		{"cover open with cover mobility", model.NewCoord(1, 1), model.MobilityGround | model.MobilityCover, false},
		{"exit is walkable", model.NewCoord(2, 1), model.MobilityDefault, false},
		{"out of bounds is wall", model.NewCoord(-1, 0), model.MobilityAll, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.Blocked(tt.c, tt.mobility, false))
		})
	}
}

func TestOccupancyBlocking(t *testing.T) {
	w := mustParse(t, []string{"....."})

	a := model.NewActor(1, "A", 1, 0, model.NewCoord(2, 0), 10)
	require.NoError(t, w.AddActor(a))

	c := model.NewCoord(2, 0)
	assert.False(t, w.Blocked(c, model.MobilityDefault, false), "pre-think pass ignores occupants")
	assert.True(t, w.Blocked(c, model.MobilityDefault, true), "commit pass respects occupants")

	require.NoError(t, w.MoveActor(a, model.NewCoord(4, 0)))
	assert.False(t, w.Blocked(c, model.MobilityDefault, true), "occupancy index follows moves")

	got, ok := w.ActorAt(model.NewCoord(4, 0))
	require.True(t, ok)
	assert.Equal(t, a.ID(), got.ID())
}

func TestMoveActorRefusesOccupiedTile(t *testing.T) {
	w := mustParse(t, []string{"...."})

	a := model.NewActor(1, "A", 1, 0, model.NewCoord(0, 0), 10)
	b := model.NewActor(2, "B", 1, 1, model.NewCoord(1, 0), 10)
	require.NoError(t, w.AddActor(a))
	require.NoError(t, w.AddActor(b))

	assert.Error(t, w.MoveActor(a, b.Position()))
	assert.Error(t, w.AddActor(model.NewActor(3, "C", 1, 2, model.NewCoord(0, 0), 10)))
}

func TestLeaderIsLowestRank(t *testing.T) {
	w := mustParse(t, []string{"....."})

	// Registered out of rank order on purpose.
	require.NoError(t, w.AddActor(model.NewActor(1, "Second", 7, 1, model.NewCoord(0, 0), 10)))
	require.NoError(t, w.AddActor(model.NewActor(2, "Boss", 7, 0, model.NewCoord(1, 0), 10)))
	require.NoError(t, w.AddActor(model.NewActor(3, "Other", 8, 0, model.NewCoord(2, 0), 10)))

	leader, ok := w.Leader(7)
	require.True(t, ok)
	assert.Equal(t, "Boss", leader.Name())

	_, ok = w.Leader(99)
	assert.False(t, ok)

	members := w.Teammates(7)
	require.Len(t, members, 2)
	assert.Equal(t, "Boss", members[0].Name())
}

func TestAdvanceTurnTicksConditions(t *testing.T) {
	w := mustParse(t, []string{"..."})

	w.SetCondition(model.StatusEffect{ID: model.StatusStormy, Countdown: 2})
	w.SetCondition(model.StatusEffect{ID: model.StatusSandstorm}) // indefinite

	assert.Equal(t, int64(0), w.Turn())
	w.AdvanceTurn()
	assert.True(t, w.Condition(model.StatusStormy))
	w.AdvanceTurn()
	assert.False(t, w.Condition(model.StatusStormy), "countdown expired")
	assert.True(t, w.Condition(model.StatusSandstorm), "indefinite condition persists")
	assert.Equal(t, int64(2), w.Turn())
}

func TestLineOfSightAndVisibility(t *testing.T) {
	w := mustParse(t, []string{
		".......",
		"...#...",
		".......",
		"...+...",
	})

	viewer := model.NewActor(1, "Eye", 1, 0, model.NewCoord(0, 1), 10)
	require.NoError(t, w.AddActor(viewer))

	assert.False(t, w.LineOfSight(model.NewCoord(0, 1), model.NewCoord(6, 1)), "wall interrupts the line")
	assert.True(t, w.LineOfSight(model.NewCoord(0, 0), model.NewCoord(6, 0)))

	// Target hidden in cover: only visible when adjacent.
	hidden := model.NewActor(2, "Lurker", 2, 0, model.NewCoord(3, 3), 10)
	require.NoError(t, w.AddActor(hidden))
	assert.False(t, w.Visible(viewer, hidden))

	near := model.NewActor(3, "Close", 1, 1, model.NewCoord(2, 3), 10)
	require.NoError(t, w.AddActor(near))
	assert.True(t, w.Visible(near, hidden), "cover tile is visible from an adjacent tile")

	// Omniscient sense ignores cover and walls.
	assert.True(t, w.Sensed(viewer, hidden, 5))
	assert.False(t, w.Sensed(viewer, hidden, 2))
}

func TestSightRangeLimitsVisibility(t *testing.T) {
	w := mustParse(t, []string{"............"})

	viewer := model.NewActor(1, "Eye", 1, 0, model.NewCoord(0, 0), 10)
	viewer.SetSightRange(4)
	target := model.NewActor(2, "Far", 2, 0, model.NewCoord(8, 0), 10)
	require.NoError(t, w.AddActor(viewer))
	require.NoError(t, w.AddActor(target))

	assert.False(t, w.Visible(viewer, target))
	require.NoError(t, w.MoveActor(target, model.NewCoord(4, 0)))
	assert.True(t, w.Visible(viewer, target))
}
