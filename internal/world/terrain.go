package world

import "github.com/dgrange/crawlmind/internal/model"

// Terrain classifies one tile of the floor grid.
type Terrain int8

const (
	// TerrainWall - solid rock, never passable, blocks sight
	TerrainWall Terrain = iota
	// TerrainOpen - floor, corridors
	TerrainOpen
	// TerrainWater - water, needs MobilityWater
	TerrainWater
	// TerrainLava - lava, needs MobilityLava; hazardous
	TerrainLava
	// TerrainChasm - open air, needs MobilityChasm
	TerrainChasm
	// TerrainCover - light-blocking cover; needs MobilityCover, blocks sight
	TerrainCover
	// TerrainExit - floor exit (stairs); behaves as open ground
	TerrainExit
)

// terrainRunes maps map-file characters to terrain.
var terrainRunes = map[byte]Terrain{
	'#': TerrainWall,
	'.': TerrainOpen,
	'~': TerrainWater,
	'^': TerrainLava,
	'x': TerrainChasm,
	'+': TerrainCover,
	'>': TerrainExit,
}

// Passable reports whether the terrain admits an actor with the given
// mobility mask. Walls are never passable.
func (t Terrain) Passable(m model.Mobility) bool {
	switch t {
	case TerrainOpen, TerrainExit:
		return m.Allows(model.MobilityGround)
	case TerrainWater:
		return m.Allows(model.MobilityWater)
	case TerrainLava:
		return m.Allows(model.MobilityLava)
	case TerrainChasm:
		return m.Allows(model.MobilityChasm)
	case TerrainCover:
		return m.Allows(model.MobilityCover)
	default:
		return false
	}
}

// Hazardous reports whether standing on the terrain is harmful. Actors with
// AwareAvoidsHazards never path through hazardous tiles.
func (t Terrain) Hazardous() bool {
	return t == TerrainLava
}

// BlocksSight reports whether the terrain stops line-of-sight traces.
func (t Terrain) BlocksSight() bool {
	return t == TerrainWall || t == TerrainCover
}

// String returns human-readable terrain name
func (t Terrain) String() string {
	switch t {
	case TerrainWall:
		return "WALL"
	case TerrainOpen:
		return "OPEN"
	case TerrainWater:
		return "WATER"
	case TerrainLava:
		return "LAVA"
	case TerrainChasm:
		return "CHASM"
	case TerrainCover:
		return "COVER"
	case TerrainExit:
		return "EXIT"
	default:
		return "UNKNOWN"
	}
}
