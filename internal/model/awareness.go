package model

// Awareness is the per-actor intelligence flag bitset. It tunes how target
// acquisition and the plan library interpret the world, without changing the
// plan chain itself.
type Awareness uint16

const (
	// AwareAttacksAllies - actor will target same-alignment actors
	AwareAttacksAllies Awareness = 1 << iota
	// AwarePicksUpItems - actor detours to pick up items it walks past
	AwarePicksUpItems
	// AwareUsesItems - actor may spend held items on itself
	AwareUsesItems
	// AwareTypeMatchups - actor weighs ability type effectiveness
	AwareTypeMatchups
	// AwareEscapeAbilities - actor may use abilities to disengage
	AwareEscapeAbilities
	// AwareWontDisturb - actor skips sleeping/frozen targets
	AwareWontDisturb
	// AwareAvoidsHazards - actor never paths through hazardous terrain
	AwareAvoidsHazards
	// AwarePlayerSensibilities - actor uses the stricter, player-like
	// targeting rule set instead of the default one
	AwarePlayerSensibilities
)

// Has reports whether all bits of flag are set.
func (a Awareness) Has(flag Awareness) bool {
	return a&flag == flag
}

// With returns the set with flag added.
func (a Awareness) With(flag Awareness) Awareness {
	return a | flag
}

// Without returns the set with flag removed.
func (a Awareness) Without(flag Awareness) Awareness {
	return a &^ flag
}
