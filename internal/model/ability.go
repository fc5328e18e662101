package model

// AbilityID identifies an ability definition. Zero means "empty slot".
type AbilityID int32

// AbilityKind classifies what an ability does, which range class gates it
// and how the status-biased selection policy treats it.
type AbilityKind int8

const (
	// KindStrike - damaging, point-blank (adjacent tile)
	KindStrike AbilityKind = iota
	// KindProjectile - damaging, straight-line up to Reach tiles
	KindProjectile
	// KindStatus - non-damaging, applied to a target in range
	KindStatus
	// KindSelfStatus - non-damaging, applied to the user itself
	KindSelfStatus
)

// AbilityDef is the static definition of one ability. Definitions live in a
// package-level table; ability slots on actors reference them by ID.
type AbilityDef struct {
	ID    AbilityID
	Name  string
	Kind  AbilityKind
	Reach int32 // max engagement distance in tiles (Chebyshev)
	// Weight biases the weighted-random selection policies.
	Weight int32
	// Power scores the ability for the optimal selection policy.
	Power int32
	// Status and StatusTurns describe the effect status abilities apply.
	Status      StatusID
	StatusTurns int32
}

// Damaging reports whether the ability deals damage (vs. pure status).
func (d *AbilityDef) Damaging() bool {
	return d.Kind == KindStrike || d.Kind == KindProjectile
}

// abilityTable is the global ability registry. Seeded with the built-in set;
// content packs extend it via RegisterAbility at startup.
var abilityTable = map[AbilityID]*AbilityDef{}

func init() {
	for _, def := range builtinAbilities {
		d := def
		abilityTable[d.ID] = &d
	}
}

// builtinAbilities is the default content set used by tests and crawlsim.
var builtinAbilities = []AbilityDef{
	{ID: 1, Name: "Strike", Kind: KindStrike, Reach: 1, Weight: 10, Power: 4},
	{ID: 2, Name: "Bite", Kind: KindStrike, Reach: 1, Weight: 8, Power: 6},
	{ID: 3, Name: "Spark Bolt", Kind: KindProjectile, Reach: 6, Weight: 6, Power: 7},
	{ID: 4, Name: "Ember", Kind: KindProjectile, Reach: 4, Weight: 6, Power: 5},
	{ID: 5, Name: "Lullaby", Kind: KindStatus, Reach: 3, Weight: 4, Power: 0, Status: StatusSleep, StatusTurns: 3},
	{ID: 6, Name: "Harden", Kind: KindSelfStatus, Reach: 0, Weight: 3, Power: 0},
	{ID: 7, Name: "Howl", Kind: KindStatus, Reach: 2, Weight: 4, Power: 0, Status: StatusProvoked, StatusTurns: 5},
	{ID: 8, Name: "Gale Fang", Kind: KindProjectile, Reach: 8, Weight: 5, Power: 8},
}

// GetAbilityDef returns the ability definition for id, or nil if unknown or
// the slot is empty.
func GetAbilityDef(id AbilityID) *AbilityDef {
	if id == 0 {
		return nil
	}
	return abilityTable[id]
}

// RegisterAbility adds or replaces an ability definition.
func RegisterAbility(def AbilityDef) {
	d := def
	abilityTable[d.ID] = &d
}
