package model

// Mobility is the terrain-mobility restriction mask: which terrain classes
// an actor's movement may cross. Walls are never crossable regardless of
// the mask; the mask only widens access to special terrain.
type Mobility uint8

const (
	// MobilityGround - open floor and corridors
	MobilityGround Mobility = 1 << iota
	// MobilityWater - water tiles
	MobilityWater
	// MobilityLava - lava tiles
	MobilityLava
	// MobilityChasm - chasm/air tiles
	MobilityChasm
	// MobilityCover - light-blocking cover terrain (dense shrub, shadow)
	MobilityCover
)

// MobilityDefault is the standard land-bound walker.
const MobilityDefault = MobilityGround

// MobilityAll crosses every non-wall terrain class.
const MobilityAll = MobilityGround | MobilityWater | MobilityLava | MobilityChasm | MobilityCover

// Allows reports whether the mask permits the given terrain class bit.
func (m Mobility) Allows(class Mobility) bool {
	return m&class != 0
}
