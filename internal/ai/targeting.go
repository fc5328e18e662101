package ai

import (
	"sort"

	"github.com/dgrange/crawlmind/internal/model"
	"github.com/dgrange/crawlmind/internal/world"
)

// targetQuery parameterizes one target-acquisition sweep.
type targetQuery struct {
	actor *model.Actor
	aware model.Awareness
	// senseRange is the detection radius in tiles.
	senseRange int32
	// mobility is the terrain mask movement will run under. Plans with a
	// mobility override pass it so targeting and pathing agree on what
	// ground is standable; zero falls back to the actor's own mask.
	mobility model.Mobility
	// darkSense replaces visibility with an omniscient-within-radius
	// sense, ignoring line of sight and concealment.
	darkSense bool
}

// acquireTargets filters the roster into the acceptable-target set for the
// querying actor and returns it nearest-first (squared Euclidean distance,
// ties kept in roster scan order). An empty result is a normal outcome
// meaning "no one to react to".
func acquireTargets(w *world.World, q targetQuery) []*model.Actor {
	var out []*model.Actor
	pos := q.actor.Position()
	playerLike := q.aware.Has(model.AwarePlayerSensibilities)
	mobility := q.mobility
	if mobility == 0 {
		mobility = q.actor.Mobility()
	}

	for _, other := range w.Roster() {
		if other.ID() == q.actor.ID() || other.IsDead() {
			continue
		}
		if other.Team() == q.actor.Team() && !q.aware.Has(model.AwareAttacksAllies) {
			continue
		}
		if other.Incapacitated() && q.aware.Has(model.AwareWontDisturb) {
			continue
		}

		if q.darkSense {
			if !w.Sensed(q.actor, other, q.senseRange) {
				continue
			}
			// Player-like actors never chase what they could not actually
			// perceive, even under an enhanced sense.
			if playerLike && !w.CoordVisibleWithin(q.actor, other.Position(), q.senseRange) {
				continue
			}
		} else if !w.CoordVisibleWithin(q.actor, other.Position(), q.senseRange) {
			continue
		}

		if playerLike {
			// The stricter rule set: no pursuit onto terrain the actor
			// refuses to stand on, so the chase cannot dead-end visibly.
			tile := w.Tile(other.Position())
			if tile.Hazardous() && q.aware.Has(model.AwareAvoidsHazards) {
				continue
			}
			if !tile.Passable(mobility) {
				continue
			}
		}

		out = append(out, other)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return pos.DistanceSquared(out[i].Position()) < pos.DistanceSquared(out[j].Position())
	})
	return out
}

// acquireThreats returns visible actors of the alignment an avoidance plan
// runs from, nearest-first.
func acquireThreats(w *world.World, actor *model.Actor, from FleeFrom, senseRange int32) []*model.Actor {
	var out []*model.Actor
	pos := actor.Position()

	for _, other := range w.Roster() {
		if other.ID() == actor.ID() || other.IsDead() {
			continue
		}
		sameTeam := other.Team() == actor.Team()
		if from == FleeAllies && !sameTeam {
			continue
		}
		if from == FleeFoes && sameTeam {
			continue
		}
		if !w.CoordVisibleWithin(actor, other.Position(), senseRange) {
			continue
		}
		out = append(out, other)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return pos.DistanceSquared(out[i].Position()) < pos.DistanceSquared(out[j].Position())
	})
	return out
}
