package model

// ActionKind discriminates the Action tagged variant.
type ActionKind int32

const (
	// ActionWait - actor spends the turn doing nothing
	ActionWait ActionKind = iota
	// ActionMove - actor steps one tile in Dir
	ActionMove
	// ActionUseAbility - actor uses ability slot Slot, aimed at Dir
	ActionUseAbility
)

// String returns human-readable action kind name
func (k ActionKind) String() string {
	switch k {
	case ActionWait:
		return "WAIT"
	case ActionMove:
		return "MOVE"
	case ActionUseAbility:
		return "USE_ABILITY"
	default:
		return "UNKNOWN"
	}
}

// Action is the committed result of a plan's Think: exactly one variant of
// {Wait, Move(direction, deliberate), UseAbility(slot, direction)}.
// Opaque to this core once produced; the turn engine executes it.
type Action struct {
	Kind ActionKind
	Dir  Direction
	// Slot indexes the actor's ability slots for ActionUseAbility.
	Slot int
	// Deliberate marks a Move chosen toward a concrete goal, as opposed to
	// idle drift. Carried for the turn engine's animation/interrupt logic.
	Deliberate bool
}

// Wait returns a no-op action.
func Wait() Action {
	return Action{Kind: ActionWait, Dir: DirNone, Slot: -1}
}

// Move returns a step action in the given direction.
func Move(dir Direction) Action {
	return Action{Kind: ActionMove, Dir: dir, Slot: -1}
}

// MoveDeliberate returns a goal-directed step action.
func MoveDeliberate(dir Direction) Action {
	return Action{Kind: ActionMove, Dir: dir, Slot: -1, Deliberate: true}
}

// UseAbility returns an ability action for the given slot, aimed at dir.
func UseAbility(slot int, dir Direction) Action {
	return Action{Kind: ActionUseAbility, Dir: dir, Slot: slot}
}

// StructurallyValid reports whether the action is well-formed for an actor
// with numSlots ability slots. A Wait is always valid; a Move requires a
// legal direction; a UseAbility requires a slot index into bounds.
func (a Action) StructurallyValid(numSlots int) bool {
	switch a.Kind {
	case ActionWait:
		return true
	case ActionMove:
		return a.Dir.Valid()
	case ActionUseAbility:
		return a.Slot >= 0 && a.Slot < numSlots
	default:
		return false
	}
}
