package ai

import "github.com/dgrange/crawlmind/internal/model"

// Stance selects how a plan positions the actor relative to its target.
type Stance int32

const (
	// StanceApproach - head straight for the target's tile, range ignored
	StanceApproach Stance = iota
	// StanceClose - cheapest tile from which some ability hits the target
	StanceClose
	// StanceAvoid - stand at the edge of the longest engagement range
	StanceAvoid
)

// String returns human-readable stance name
func (s Stance) String() string {
	switch s {
	case StanceApproach:
		return "APPROACH"
	case StanceClose:
		return "CLOSE"
	case StanceAvoid:
		return "AVOID"
	default:
		return "UNKNOWN"
	}
}

// AttackPolicy selects how the attack strategy picks an ability.
type AttackPolicy int32

const (
	// PolicyBasicOnly - basic attack slot only, other abilities ignored
	PolicyBasicOnly AttackPolicy = iota
	// PolicyWeightedWalkIn - weighted-random; positioning walks into range
	PolicyWeightedWalkIn
	// PolicyWeightedInRange - weighted-random only when already in range
	PolicyWeightedInRange
	// PolicyStatusBiased - prefers non-damaging abilities
	PolicyStatusBiased
	// PolicyOptimal - deterministically best-scoring choice
	PolicyOptimal
)

// String returns human-readable policy name
func (p AttackPolicy) String() string {
	switch p {
	case PolicyBasicOnly:
		return "BASIC_ONLY"
	case PolicyWeightedWalkIn:
		return "WEIGHTED_WALK_IN"
	case PolicyWeightedInRange:
		return "WEIGHTED_IN_RANGE"
	case PolicyStatusBiased:
		return "STATUS_BIASED"
	case PolicyOptimal:
		return "OPTIMAL"
	default:
		return "UNKNOWN"
	}
}

// FleeFrom selects which alignment an avoidance plan runs from.
type FleeFrom int8

const (
	// FleeFoes - run from other-alignment actors
	FleeFoes FleeFrom = iota
	// FleeAllies - run from same-alignment actors
	FleeAllies
)

// Config is the shared, data-driven configuration payload for library
// plans. Zero values mean "use the default"; plan-specific knobs unused by
// a given plan are ignored.
type Config struct {
	Stance Stance
	Policy AttackPolicy

	// Awareness flags OR'd onto the actor's own bitset for this plan.
	Awareness model.Awareness

	// Minimum engagement ranges per range class ("engage at range >= R").
	AttackMinRange     int32
	StatusMinRange     int32
	SelfStatusMinRange int32

	// Mobility overrides the actor's terrain mask when non-zero.
	Mobility model.Mobility

	// SenseRange overrides the actor's sight radius when non-zero.
	SenseRange int32

	// BasicSlot is the ability slot treated as the basic attack.
	BasicSlot int

	// Period gates the periodic-dormancy plan (turn counter modulo).
	Period int32

	// TriggerStatus wakes the status-gated dormancy plans.
	TriggerStatus model.StatusID

	// ThresholdFactor arms retreat-style plans: flee while
	// current*factor < max. Zero means always armed.
	ThresholdFactor int32

	// OrbitRadius is the escort plan's maximum leader distance.
	OrbitRadius int32

	// OpenerSlot is the one-shot lead-in ability slot.
	OpenerSlot int

	// HoldWhenCornered makes an avoidance plan Wait in place instead of
	// deferring when no flee step exists.
	HoldWhenCornered bool

	// FleeFrom selects the alignment an avoidance plan runs from.
	FleeFrom FleeFrom
}

// effectiveAwareness merges the plan's extra flags onto the actor's.
func (c *Config) effectiveAwareness(actor *model.Actor) model.Awareness {
	return actor.Awareness() | c.Awareness
}

// effectiveMobility resolves the terrain mask for pathing.
func (c *Config) effectiveMobility(actor *model.Actor) model.Mobility {
	if c.Mobility != 0 {
		return c.Mobility
	}
	return actor.Mobility()
}

// effectiveSenseRange resolves the sensing radius.
func (c *Config) effectiveSenseRange(actor *model.Actor) int32 {
	if c.SenseRange > 0 {
		return c.SenseRange
	}
	return actor.SightRange()
}

// minRangeFor returns the configured minimum engagement range for an
// ability's range class.
func (c *Config) minRangeFor(kind model.AbilityKind) int32 {
	switch kind {
	case model.KindStatus:
		return c.StatusMinRange
	case model.KindSelfStatus:
		return c.SelfStatusMinRange
	default:
		return c.AttackMinRange
	}
}
