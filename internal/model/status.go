package model

// StatusID identifies a status effect. Zero means "no status".
type StatusID int32

const (
	// StatusSleep - target is asleep and cannot act
	StatusSleep StatusID = iota + 1
	// StatusFrozen - target is frozen solid and cannot act
	StatusFrozen
	// StatusShackled - target cannot walk but may still act in place
	StatusShackled
	// StatusProvoked - ambusher has been flushed out of cover
	StatusProvoked
	// StatusMarked - set by the turn engine when the actor takes a hit
	StatusMarked
	// StatusStormy - environmental condition: storm weather on the floor
	StatusStormy
	// StatusSandstorm - environmental condition: sandstorm on the floor
	StatusSandstorm
)

// String returns human-readable status name
func (s StatusID) String() string {
	switch s {
	case StatusSleep:
		return "SLEEP"
	case StatusFrozen:
		return "FROZEN"
	case StatusShackled:
		return "SHACKLED"
	case StatusProvoked:
		return "PROVOKED"
	case StatusMarked:
		return "MARKED"
	case StatusStormy:
		return "STORMY"
	case StatusSandstorm:
		return "SANDSTORM"
	default:
		return "UNKNOWN"
	}
}

// StatusEffect is one active status on an actor, carrying typed auxiliary
// state (a stack counter and/or a turn countdown, depending on the status).
type StatusEffect struct {
	ID        StatusID
	Stacks    int32
	Countdown int32
}

// Incapacitates reports whether the status prevents the bearer from acting
// at all. Used by target acquisition's "won't disturb" rule.
func (s StatusID) Incapacitates() bool {
	return s == StatusSleep || s == StatusFrozen
}
