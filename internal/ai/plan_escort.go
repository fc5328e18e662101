package ai

import (
	"math/rand/v2"

	"github.com/dgrange/crawlmind/internal/geo"
	"github.com/dgrange/crawlmind/internal/model"
	"github.com/dgrange/crawlmind/internal/world"
)

// defaultOrbitRadius keeps escorts within two tiles of their leader.
const defaultOrbitRadius = 2

// EscortPlan orbits the nearest visible higher-rank teammate: it takes
// uniformly-random legal steps that keep the leader within the orbit
// radius, Waits when no step satisfies the constraint, and paths back when
// it has fallen outside the radius entirely.
type EscortPlan struct {
	basePlan
}

// NewEscortPlan creates an escort/orbit plan.
func NewEscortPlan(cfg Config) *EscortPlan {
	return &EscortPlan{basePlan{cfg: cfg}}
}

func (p *EscortPlan) Think(w *world.World, actor *model.Actor, pass Pass, rng *rand.Rand) (model.Action, bool) {
	if actor.IsDead() || actor.CannotAct() {
		return model.Wait(), true
	}

	leader := p.nearestLeader(w, actor)
	if leader == nil {
		return model.Wait(), false
	}

	radius := p.cfg.OrbitRadius
	if radius <= 0 {
		radius = defaultOrbitRadius
	}

	pos := actor.Position()
	if pos.Chebyshev(leader.Position()) > radius {
		// Out of orbit: path back toward the leader first.
		blocked := pathBlocked(w, actor, &p.cfg)
		paths := geo.FindPaths(pos, []model.Coord{leader.Position()}, blocked, 0)
		if paths[0] == nil {
			return model.Wait(), true
		}
		return stepAlong(w, actor, paths[0], &p.cfg, pass), true
	}

	var legal []model.Direction
	for d := model.Direction(0); d < model.NumDirections; d++ {
		if !canStep(w, actor, d, &p.cfg, pass) {
			continue
		}
		if pos.Add(d).Chebyshev(leader.Position()) <= radius {
			legal = append(legal, d)
		}
	}
	if len(legal) == 0 {
		return model.Wait(), true
	}
	return model.Move(legal[rng.IntN(len(legal))]), true
}

// nearestLeader returns the closest visible teammate of strictly higher
// rank, or nil.
func (p *EscortPlan) nearestLeader(w *world.World, actor *model.Actor) *model.Actor {
	var best *model.Actor
	var bestDist int64
	for _, mate := range w.Teammates(actor.Team()) {
		if mate.ID() == actor.ID() || mate.IsDead() || mate.Rank() >= actor.Rank() {
			continue
		}
		if !w.Visible(actor, mate) {
			continue
		}
		d := actor.Position().DistanceSquared(mate.Position())
		if best == nil || d < bestDist {
			best = mate
			bestDist = d
		}
	}
	return best
}
