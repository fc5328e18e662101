package ai

import (
	"log/slog"
	"math/rand/v2"

	"github.com/dgrange/crawlmind/internal/geo"
	"github.com/dgrange/crawlmind/internal/model"
	"github.com/dgrange/crawlmind/internal/world"
)

// PursuePlan is the standard pursue-and-strike behavior.
// States: Searching (no target, no memory: defer) → Tracking (path to the
// last-known location) → Engaging (attack or close per stance).
type PursuePlan struct {
	basePlan
}

// NewPursuePlan creates a pursue-and-strike plan.
func NewPursuePlan(cfg Config) *PursuePlan {
	return &PursuePlan{basePlan{cfg: cfg}}
}

func (p *PursuePlan) Think(w *world.World, actor *model.Actor, pass Pass, rng *rand.Rand) (model.Action, bool) {
	if actor.IsDead() || actor.CannotAct() {
		return model.Wait(), true
	}

	p.mem.history.Push(actor.Position())
	p.mem.history.TrimToSight(actor)

	targets := acquireTargets(w, targetQuery{
		actor:      actor,
		aware:      p.cfg.effectiveAwareness(actor),
		senseRange: p.cfg.effectiveSenseRange(actor),
		mobility:   p.cfg.effectiveMobility(actor),
	})

	if len(targets) > 0 {
		target := targets[0]
		p.mem.rememberTarget(target)

		if action, ok := selectAttack(w, actor, target, &p.cfg, rng); ok {
			if pass == PassCommit {
				if dir, faced := actor.Position().DirectionTo(target.Position()); faced {
					actor.SetFacing(dir)
				}
			}
			return action, true
		}
		return p.advance(w, actor, target, pass), true
	}

	// No one visible: fall back on pursuit memory.
	if !p.mem.hasLastKnown {
		return model.Wait(), false
	}

	if pass == PassPreThink && !w.CoordVisible(actor, p.mem.lastKnown) {
		if p.mem.lastSeenID != 0 {
			// Forget the actor but keep the bare location one more cycle.
			p.mem.lastSeenID = 0
		} else {
			p.mem.forgetTarget()
			return model.Wait(), false
		}
	}

	if actor.Position() == p.mem.lastKnown {
		// Arrived and found nothing.
		p.mem.forgetTarget()
		return model.Wait(), false
	}

	blocked := pathBlocked(w, actor, &p.cfg)
	paths := geo.FindPaths(actor.Position(), []model.Coord{p.mem.lastKnown}, blocked, 0)
	if paths[0] == nil {
		return model.Wait(), true
	}
	return stepAlong(w, actor, paths[0], &p.cfg, pass), true
}

// advance moves toward the target under the plan's positioning stance.
func (p *PursuePlan) advance(w *world.World, actor *model.Actor, target *model.Actor, pass Pass) model.Action {
	pos := actor.Position()
	blocked := pathBlocked(w, actor, &p.cfg)

	// The in-range-only policy never maneuvers for range; it closes in
	// directly and attacks opportunistically.
	useFootprints := p.cfg.Stance != StanceApproach && p.cfg.Policy != PolicyWeightedInRange

	if useFootprints {
		cands := buildCandidates(w, actor, target, eligibleAbilities(actor), &p.cfg)
		if len(cands) > 0 {
			tiles := make([]model.Coord, len(cands))
			for i, c := range cands {
				tiles[i] = c.Tile
			}
			paths := geo.FindPaths(pos, tiles, blocked, 0)
			if idx := chooseDestination(pos, paths, cands, p.cfg.Stance, &p.mem.history); idx >= 0 {
				if IsDebugEnabled() {
					slog.Debug("stance destination chosen",
						"actor", actor.Name(),
						"stance", p.cfg.Stance,
						"tile", cands[idx].Tile,
						"weight", cands[idx].Weight)
				}
				return stepAlong(w, actor, paths[idx], &p.cfg, pass)
			}
		}
	}

	// Approach fallback: head straight for the target's tile.
	paths := geo.FindPaths(pos, []model.Coord{target.Position()}, blocked, 0)
	if paths[0] == nil {
		return model.Wait()
	}
	return stepAlong(w, actor, paths[0], &p.cfg, pass)
}

// EscalationPlan is the boss-style variant: once health falls to or below
// half of maximum, every ability with a valid identifier is permanently
// enabled for the rest of the encounter, then pursuit proceeds as normal.
type EscalationPlan struct {
	PursuePlan
	// latched survives plan handoffs on purpose: the escalation is a
	// one-way latch, not per-activation memory.
	latched bool
}

// NewEscalationPlan creates an escalating pursue-and-strike plan.
func NewEscalationPlan(cfg Config) *EscalationPlan {
	return &EscalationPlan{PursuePlan: PursuePlan{basePlan{cfg: cfg}}}
}

func (p *EscalationPlan) Think(w *world.World, actor *model.Actor, pass Pass, rng *rand.Rand) (model.Action, bool) {
	if !p.latched && actor.CurrentHP()*2 <= actor.MaxHP() {
		p.latched = true
	}
	if p.latched && pass == PassCommit {
		for i := range model.MaxAbilitySlots {
			actor.EnableSlot(i, true)
		}
		if IsDebugEnabled() {
			slog.Debug("escalation latch engaged",
				"actor", actor.Name(),
				"hp", actor.CurrentHP(),
				"maxHP", actor.MaxHP())
		}
	}
	return p.PursuePlan.Think(w, actor, pass, rng)
}

// LeadInPlan opens an engagement with one configured ability the first
// time a target is in its footprint, then defers for good.
type LeadInPlan struct {
	basePlan
}

// NewLeadInPlan creates a one-shot lead-in plan.
func NewLeadInPlan(cfg Config) *LeadInPlan {
	return &LeadInPlan{basePlan{cfg: cfg}}
}

func (p *LeadInPlan) Think(w *world.World, actor *model.Actor, pass Pass, rng *rand.Rand) (model.Action, bool) {
	if p.mem.latched {
		return model.Wait(), false
	}
	if actor.IsDead() || actor.CannotAct() {
		return model.Wait(), true
	}

	slot := actor.Slot(p.cfg.OpenerSlot)
	if !slot.Usable() {
		return model.Wait(), false
	}
	def := model.GetAbilityDef(slot.ID)
	if def == nil {
		return model.Wait(), false
	}

	targets := acquireTargets(w, targetQuery{
		actor:      actor,
		aware:      p.cfg.effectiveAwareness(actor),
		senseRange: p.cfg.effectiveSenseRange(actor),
		mobility:   p.cfg.effectiveMobility(actor),
	})
	if len(targets) == 0 {
		return model.Wait(), false
	}

	target := targets[0]
	if !qualifies(w, &p.cfg, actor.Position(), target.Position(), def) {
		return model.Wait(), false
	}

	if pass == PassCommit {
		p.mem.latched = true
	}
	return model.UseAbility(p.cfg.OpenerSlot, aimDirection(actor, target.Position(), def)), true
}
