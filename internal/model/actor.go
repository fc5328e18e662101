package model

// TeamID identifies an alignment/roster group. Actors on the same team are
// allies; everything else is a foe.
type TeamID int32

// MaxAbilitySlots is the fixed ability-slot count per actor.
const MaxAbilitySlots = 4

// AbilitySlot is one of an actor's ordered ability slots.
type AbilitySlot struct {
	ID      AbilityID // 0 = empty slot
	Charges int32
	Sealed  bool
	Enabled bool
}

// Usable reports whether the slot can be offered to an attack selector:
// non-empty, charged, not sealed, enabled.
func (s AbilitySlot) Usable() bool {
	return s.ID != 0 && s.Charges > 0 && !s.Sealed && s.Enabled
}

// Actor is a controlled entity on the floor. The behavior core mutates it
// only through the narrow operations the plans perform (ability enable,
// status application, charge spend); lifecycle is owned by the spawn and
// combat systems.
type Actor struct {
	id     uint32
	name   string
	team   TeamID
	rank   int32 // rank within team; lowest rank is the leader
	pos    Coord
	facing Direction

	curHP int32
	maxHP int32

	slots    [MaxAbilitySlots]AbilitySlot
	statuses map[StatusID]*StatusEffect

	awareness  Awareness
	mobility   Mobility
	sightRange int32

	// bankedTurns counts extra actions this cycle from a speed advantage.
	bankedTurns int32

	// turnOrder and acted track per-world-turn scheduling, used by the
	// commit-pass yielding rule.
	turnOrder int32
	acted     bool
}

// NewActor creates an actor at the given position.
func NewActor(id uint32, name string, team TeamID, rank int32, pos Coord, maxHP int32) *Actor {
	return &Actor{
		id:         id,
		name:       name,
		team:       team,
		rank:       rank,
		pos:        pos,
		facing:     DirSouth,
		curHP:      maxHP,
		maxHP:      maxHP,
		statuses:   make(map[StatusID]*StatusEffect),
		mobility:   MobilityDefault,
		sightRange: 8,
	}
}

// ID returns the actor's unique identifier.
func (a *Actor) ID() uint32 { return a.id }

// Name returns the actor's display name.
func (a *Actor) Name() string { return a.name }

// Team returns the actor's team.
func (a *Actor) Team() TeamID { return a.team }

// Rank returns the actor's rank within its team (0 = leader).
func (a *Actor) Rank() int32 { return a.rank }

// Position returns the actor's tile.
func (a *Actor) Position() Coord { return a.pos }

// SetPosition moves the actor to a tile. Position changes must go through
// the world's occupancy index; this only updates the actor's own record.
func (a *Actor) SetPosition(c Coord) { a.pos = c }

// Facing returns the direction the actor faces.
func (a *Actor) Facing() Direction { return a.facing }

// SetFacing turns the actor.
func (a *Actor) SetFacing(d Direction) {
	if d.Valid() {
		a.facing = d
	}
}

// CurrentHP returns current health.
func (a *Actor) CurrentHP() int32 { return a.curHP }

// MaxHP returns maximum health.
func (a *Actor) MaxHP() int32 { return a.maxHP }

// SetCurrentHP sets current health, clamped to [0, max].
func (a *Actor) SetCurrentHP(hp int32) {
	if hp < 0 {
		hp = 0
	}
	if hp > a.maxHP {
		hp = a.maxHP
	}
	a.curHP = hp
}

// IsDead reports whether health reached zero.
func (a *Actor) IsDead() bool { return a.curHP <= 0 }

// Slots returns a copy of the actor's ability slots in order.
func (a *Actor) Slots() [MaxAbilitySlots]AbilitySlot { return a.slots }

// Slot returns the slot at index i, or a zero slot if out of bounds.
func (a *Actor) Slot(i int) AbilitySlot {
	if i < 0 || i >= MaxAbilitySlots {
		return AbilitySlot{}
	}
	return a.slots[i]
}

// SetSlot assigns slot i. Out-of-bounds indexes are ignored.
func (a *Actor) SetSlot(i int, slot AbilitySlot) {
	if i >= 0 && i < MaxAbilitySlots {
		a.slots[i] = slot
	}
}

// EnableSlot flips the enabled flag on slot i. No-op on empty slots.
func (a *Actor) EnableSlot(i int, enabled bool) {
	if i >= 0 && i < MaxAbilitySlots && a.slots[i].ID != 0 {
		a.slots[i].Enabled = enabled
	}
}

// SpendCharge decrements the remaining charges of slot i.
func (a *Actor) SpendCharge(i int) {
	if i >= 0 && i < MaxAbilitySlots && a.slots[i].Charges > 0 {
		a.slots[i].Charges--
	}
}

// Status returns the active status effect with the given ID.
func (a *Actor) Status(id StatusID) (*StatusEffect, bool) {
	s, ok := a.statuses[id]
	return s, ok
}

// HasStatus reports whether the status is active.
func (a *Actor) HasStatus(id StatusID) bool {
	_, ok := a.statuses[id]
	return ok
}

// ApplyStatus activates a status effect, replacing any previous instance.
func (a *Actor) ApplyStatus(effect StatusEffect) {
	e := effect
	a.statuses[e.ID] = &e
}

// RemoveStatus clears a status effect.
func (a *Actor) RemoveStatus(id StatusID) {
	delete(a.statuses, id)
}

// TickStatuses advances status countdowns by one turn, expiring effects
// that reach zero. Countdown zero from the start means indefinite.
func (a *Actor) TickStatuses() {
	for id, eff := range a.statuses {
		if eff.Countdown > 0 {
			eff.Countdown--
			if eff.Countdown == 0 {
				delete(a.statuses, id)
			}
		}
	}
}

// Incapacitated reports whether any active status prevents acting.
func (a *Actor) Incapacitated() bool {
	for id := range a.statuses {
		if id.Incapacitates() {
			return true
		}
	}
	return false
}

// CannotWalk reports whether the actor may not move this turn.
func (a *Actor) CannotWalk() bool {
	return a.Incapacitated() || a.HasStatus(StatusShackled)
}

// CannotAct reports whether the actor may not take any action this turn.
func (a *Actor) CannotAct() bool { return a.Incapacitated() }

// Awareness returns the intelligence flag bitset.
func (a *Actor) Awareness() Awareness { return a.awareness }

// SetAwareness replaces the intelligence flag bitset.
func (a *Actor) SetAwareness(flags Awareness) { a.awareness = flags }

// Mobility returns the terrain-mobility mask.
func (a *Actor) Mobility() Mobility { return a.mobility }

// SetMobility replaces the terrain-mobility mask.
func (a *Actor) SetMobility(m Mobility) { a.mobility = m }

// SightRange returns the sensing radius in tiles.
func (a *Actor) SightRange() int32 { return a.sightRange }

// SetSightRange sets the sensing radius.
func (a *Actor) SetSightRange(r int32) {
	if r > 0 {
		a.sightRange = r
	}
}

// BankedTurns returns the extra actions banked this cycle.
func (a *Actor) BankedTurns() int32 { return a.bankedTurns }

// SetBankedTurns sets the banked extra-action count.
func (a *Actor) SetBankedTurns(n int32) {
	if n < 0 {
		n = 0
	}
	a.bankedTurns = n
}

// TurnOrder returns the actor's position in the current turn batch.
func (a *Actor) TurnOrder() int32 { return a.turnOrder }

// SetTurnOrder records the actor's position in the current turn batch.
func (a *Actor) SetTurnOrder(order int32) { a.turnOrder = order }

// Acted reports whether the actor already committed an action this turn.
func (a *Actor) Acted() bool { return a.acted }

// SetActed marks whether the actor has committed an action this turn.
func (a *Actor) SetActed(acted bool) { a.acted = acted }
