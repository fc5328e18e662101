package ai

import (
	"math/rand/v2"

	"github.com/dgrange/crawlmind/internal/model"
	"github.com/dgrange/crawlmind/internal/world"
)

// PeriodicDormancyPlan keeps the actor inert except on turns where the
// floor turn counter modulo the configured period is zero; on those turns
// it defers so the plans below it can act.
type PeriodicDormancyPlan struct {
	basePlan
}

// NewPeriodicDormancyPlan creates a periodic-dormancy plan.
func NewPeriodicDormancyPlan(cfg Config) *PeriodicDormancyPlan {
	return &PeriodicDormancyPlan{basePlan{cfg: cfg}}
}

func (p *PeriodicDormancyPlan) Think(w *world.World, actor *model.Actor, pass Pass, rng *rand.Rand) (model.Action, bool) {
	period := p.cfg.Period
	if period <= 0 {
		// Misconfiguration degrades to permanent defer, never a fault.
		return model.Wait(), false
	}
	if w.Turn()%int64(period) == 0 {
		return model.Wait(), false
	}
	return model.Wait(), true
}

// StatusGatedDormancyPlan waits every turn until its trigger status shows
// up, then permanently defers to the next plan. The trigger is either a
// status on the actor itself ("has been hit") or an environmental
// condition on the floor.
type StatusGatedDormancyPlan struct {
	basePlan
	environmental bool
}

// NewStatusGatedDormancyPlan creates a status-gated dormancy plan. With
// environmental set, the trigger is looked up on the floor instead of the
// actor.
func NewStatusGatedDormancyPlan(cfg Config, environmental bool) *StatusGatedDormancyPlan {
	return &StatusGatedDormancyPlan{basePlan: basePlan{cfg: cfg}, environmental: environmental}
}

func (p *StatusGatedDormancyPlan) Think(w *world.World, actor *model.Actor, pass Pass, rng *rand.Rand) (model.Action, bool) {
	if p.mem.latched {
		return model.Wait(), false
	}

	var triggered bool
	if p.environmental {
		triggered = w.Condition(p.cfg.TriggerStatus)
	} else {
		triggered = actor.HasStatus(p.cfg.TriggerStatus)
	}

	if triggered {
		p.mem.latched = true
		return model.Wait(), false
	}
	return model.Wait(), true
}
