package ai

import (
	"log/slog"
	"math/rand/v2"

	"github.com/dgrange/crawlmind/internal/geo"
	"github.com/dgrange/crawlmind/internal/model"
	"github.com/dgrange/crawlmind/internal/world"
)

// AvoidPlan runs from actors of the configured alignment.
// States: Calm (no threat in sight: defer) → Fleeing (step that maximizes
// the distance to the nearest threat) → Cornered (no step moves away).
// Cornered behavior is the configuration switch that distinguishes the
// named avoid variants: hold in place (never defer) or fall through to the
// next plan (allows fighting back).
type AvoidPlan struct {
	basePlan
}

// NewAvoidPlan creates an avoidance plan.
func NewAvoidPlan(cfg Config) *AvoidPlan {
	return &AvoidPlan{basePlan{cfg: cfg}}
}

func (p *AvoidPlan) Think(w *world.World, actor *model.Actor, pass Pass, rng *rand.Rand) (model.Action, bool) {
	if actor.IsDead() || actor.CannotAct() {
		return model.Wait(), true
	}

	// Retreat-style arming: stay calm while current*factor >= max.
	if f := p.cfg.ThresholdFactor; f > 0 && actor.CurrentHP()*f >= actor.MaxHP() {
		return model.Wait(), false
	}

	threats := acquireThreats(w, actor, p.cfg.FleeFrom, p.cfg.effectiveSenseRange(actor))
	if len(threats) == 0 {
		return model.Wait(), false
	}

	pos := actor.Position()
	current := nearestThreatDistance(pos, threats)

	bestDir := model.DirNone
	bestScore := current
	for d := model.Direction(0); d < model.NumDirections; d++ {
		if !canStep(w, actor, d, &p.cfg, pass) {
			continue
		}
		if score := nearestThreatDistance(pos.Add(d), threats); score > bestScore {
			bestScore = score
			bestDir = d
		}
	}

	if bestDir.Valid() {
		return model.MoveDeliberate(bestDir), true
	}

	// Cornered.
	if IsDebugEnabled() {
		slog.Debug("avoid plan cornered",
			"actor", actor.Name(),
			"threats", len(threats),
			"hold", p.cfg.HoldWhenCornered)
	}
	if p.cfg.HoldWhenCornered {
		return model.Wait(), true
	}
	return model.Wait(), false
}

// nearestThreatDistance scores a tile by its squared distance to the
// closest threat; fleeing maximizes it.
func nearestThreatDistance(c model.Coord, threats []*model.Actor) int64 {
	best := int64(-1)
	for _, t := range threats {
		d := c.DistanceSquared(t.Position())
		if best < 0 || d < best {
			best = d
		}
	}
	return best
}

// FleeToExitPlan heads for the nearest floor exit. With a threshold factor
// configured it stays calm while healthy, like the retreat variants.
type FleeToExitPlan struct {
	basePlan
}

// NewFleeToExitPlan creates a flee-to-exit plan.
func NewFleeToExitPlan(cfg Config) *FleeToExitPlan {
	return &FleeToExitPlan{basePlan{cfg: cfg}}
}

func (p *FleeToExitPlan) Think(w *world.World, actor *model.Actor, pass Pass, rng *rand.Rand) (model.Action, bool) {
	if actor.IsDead() || actor.CannotAct() {
		return model.Wait(), true
	}
	if f := p.cfg.ThresholdFactor; f > 0 && actor.CurrentHP()*f >= actor.MaxHP() {
		return model.Wait(), false
	}

	exits := w.Exits()
	if len(exits) == 0 {
		return model.Wait(), false
	}

	pos := actor.Position()
	if w.Tile(pos) == world.TerrainExit {
		// Standing on the stairs; the turn engine handles the descent.
		return model.Wait(), true
	}

	blocked := pathBlocked(w, actor, &p.cfg)
	paths := geo.FindPaths(pos, exits, blocked, 0)

	best := -1
	for i, path := range paths {
		if path == nil {
			continue
		}
		if best == -1 || path.Length() < paths[best].Length() {
			best = i
		}
	}
	if best == -1 {
		return model.Wait(), true
	}
	return stepAlong(w, actor, paths[best], &p.cfg, pass), true
}
