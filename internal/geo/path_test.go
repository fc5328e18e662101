package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgrange/crawlmind/internal/model"
)

// gridBlocked builds a BlockedFunc from map rows ('#' = wall). Tiles
// outside the rows are blocked.
func gridBlocked(rows []string) BlockedFunc {
	return func(c model.Coord) bool {
		if c.Y < 0 || int(c.Y) >= len(rows) {
			return true
		}
		row := rows[c.Y]
		if c.X < 0 || int(c.X) >= len(row) {
			return true
		}
		return row[c.X] == '#'
	}
}

func TestFindPathsStraightLine(t *testing.T) {
	blocked := gridBlocked([]string{
		".....",
		".....",
		".....",
	})

	paths := FindPaths(model.NewCoord(0, 1), []model.Coord{model.NewCoord(4, 1)}, blocked, 0)
	require.Len(t, paths, 1)
	require.NotNil(t, paths[0])

	assert.True(t, paths[0].Complete)
	assert.Equal(t, 4, paths[0].Length())
	dest, ok := paths[0].Destination()
	require.True(t, ok)
	assert.Equal(t, model.NewCoord(4, 1), dest)
}

func TestFindPathsDiagonalCountsOneStep(t *testing.T) {
	blocked := gridBlocked([]string{
		"....",
		"....",
		"....",
		"....",
	})

	paths := FindPaths(model.NewCoord(0, 0), []model.Coord{model.NewCoord(3, 3)}, blocked, 0)
	require.NotNil(t, paths[0])
	assert.Equal(t, 3, paths[0].Length(), "diagonal steps spend one turn each")
}

func TestFindPathsNoCornerCutting(t *testing.T) {
	// The wall corner at (1,1)-(1,0) forces the path around, never through
	// the diagonal gap.
	blocked := gridBlocked([]string{
		".#.",
		".#.",
		"...",
	})

	paths := FindPaths(model.NewCoord(0, 0), []model.Coord{model.NewCoord(2, 0)}, blocked, 0)
	require.NotNil(t, paths[0])
	require.True(t, paths[0].Complete)

	for _, step := range paths[0].Steps {
		assert.False(t, blocked(step), "path enters wall at %v", step)
	}
	assert.Equal(t, 6, paths[0].Length(), "corner rule forces the long way around")
}

func TestFindPathsMultiDestinationSharedSearch(t *testing.T) {
	blocked := gridBlocked([]string{
		".......",
		".......",
		".......",
	})

	origin := model.NewCoord(0, 1)
	dests := []model.Coord{
		model.NewCoord(6, 1),
		model.NewCoord(3, 0),
		origin,
		model.NewCoord(1, 2),
	}

	paths := FindPaths(origin, dests, blocked, 0)
	require.Len(t, paths, 4)

	assert.Equal(t, 6, paths[0].Length())
	assert.Equal(t, 3, paths[1].Length())
	assert.Equal(t, 0, paths[2].Length(), "origin destination yields empty complete path")
	assert.True(t, paths[2].Complete)
	assert.Equal(t, 1, paths[3].Length())
}

func TestFindPathsUnreachableGetsPartial(t *testing.T) {
	// Right column sealed off by a wall.
	blocked := gridBlocked([]string{
		"..#.",
		"..#.",
		"..#.",
	})

	paths := FindPaths(model.NewCoord(0, 1), []model.Coord{model.NewCoord(3, 1)}, blocked, 0)
	require.NotNil(t, paths[0])

	assert.False(t, paths[0].Complete)
	dest, ok := paths[0].Destination()
	require.True(t, ok)
	assert.Equal(t, int32(1), dest.X, "partial path stops on the near side of the wall")
}

func TestFindPathsFullySealedReturnsNil(t *testing.T) {
	// Origin boxed in completely: no partial progress is possible, the
	// only visited tile is the origin itself.
	blocked := gridBlocked([]string{
		"###.",
		"#.#.",
		"###.",
	})

	paths := FindPaths(model.NewCoord(1, 1), []model.Coord{model.NewCoord(3, 1)}, blocked, 0)
	assert.Nil(t, paths[0])
}

func TestFindPathsDeterministic(t *testing.T) {
	blocked := gridBlocked([]string{
		"..........",
		"..##......",
		"..#.......",
		"....###...",
		"..........",
	})

	origin := model.NewCoord(0, 0)
	dests := []model.Coord{
		model.NewCoord(9, 4),
		model.NewCoord(5, 2),
		model.NewCoord(9, 0),
	}

	first := FindPaths(origin, dests, blocked, 0)
	for range 10 {
		again := FindPaths(origin, dests, blocked, 0)
		require.Equal(t, first, again, "repeated searches must agree step for step")
	}
}

func TestLineIteratorTracesEndpoints(t *testing.T) {
	it := NewLineIterator(model.NewCoord(0, 0), model.NewCoord(5, 2))

	var tiles []model.Coord
	for it.Next() {
		tiles = append(tiles, it.At())
	}

	require.NotEmpty(t, tiles)
	assert.Equal(t, model.NewCoord(0, 0), tiles[0])
	assert.Equal(t, model.NewCoord(5, 2), tiles[len(tiles)-1])

	for i := 1; i < len(tiles); i++ {
		assert.LessOrEqual(t, tiles[i-1].Chebyshev(tiles[i]), int32(1), "line must advance one tile at a time")
	}
}

func BenchmarkFindPathsOpenFloor(b *testing.B) {
	rows := make([]string, 48)
	for i := range rows {
		rows[i] = "................................................"
	}
	blocked := gridBlocked(rows)

	origin := model.NewCoord(1, 1)
	dests := []model.Coord{
		model.NewCoord(46, 46),
		model.NewCoord(46, 1),
		model.NewCoord(1, 46),
		model.NewCoord(24, 24),
	}

	b.ResetTimer()
	for range b.N {
		FindPaths(origin, dests, blocked, 0)
	}
}
