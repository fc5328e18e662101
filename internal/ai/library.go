package ai

import (
	"fmt"
	"sort"

	"github.com/dgrange/crawlmind/internal/model"
)

// builders maps behavior names recognized by the data-driven configuration
// surface to plan constructors. The named variants differ only in the
// config they bake in.
var builders = map[string]func(Config) Plan{
	"pursue": func(cfg Config) Plan {
		return NewPursuePlan(cfg)
	},
	"pursue-cautious": func(cfg Config) Plan {
		cfg.Stance = StanceClose
		return NewPursuePlan(cfg)
	},
	"pursue-skirmish": func(cfg Config) Plan {
		cfg.Stance = StanceAvoid
		return NewPursuePlan(cfg)
	},
	"skirmish-status": func(cfg Config) Plan {
		cfg.Stance = StanceAvoid
		cfg.Policy = PolicyStatusBiased
		return NewPursuePlan(cfg)
	},
	"escalate-at-half": func(cfg Config) Plan {
		return NewEscalationPlan(cfg)
	},
	"lead-in-strike": func(cfg Config) Plan {
		return NewLeadInPlan(cfg)
	},
	"flee-foes-hold": func(cfg Config) Plan {
		cfg.FleeFrom = FleeFoes
		cfg.HoldWhenCornered = true
		return NewAvoidPlan(cfg)
	},
	"flee-foes-fallthrough": func(cfg Config) Plan {
		cfg.FleeFrom = FleeFoes
		cfg.HoldWhenCornered = false
		return NewAvoidPlan(cfg)
	},
	"flee-allies-hold": func(cfg Config) Plan {
		cfg.FleeFrom = FleeAllies
		cfg.HoldWhenCornered = true
		return NewAvoidPlan(cfg)
	},
	"flee-allies-fallthrough": func(cfg Config) Plan {
		cfg.FleeFrom = FleeAllies
		cfg.HoldWhenCornered = false
		return NewAvoidPlan(cfg)
	},
	"retreat-wounded": func(cfg Config) Plan {
		cfg.FleeFrom = FleeFoes
		if cfg.ThresholdFactor <= 0 {
			cfg.ThresholdFactor = 2
		}
		return NewAvoidPlan(cfg)
	},
	"flee-to-exit": func(cfg Config) Plan {
		return NewFleeToExitPlan(cfg)
	},
	"escort-leader": func(cfg Config) Plan {
		return NewEscortPlan(cfg)
	},
	"ambush-cover": func(cfg Config) Plan {
		if cfg.Mobility == 0 {
			cfg.Mobility = model.MobilityDefault | model.MobilityCover
		}
		return NewAmbushPlan(cfg)
	},
	"dormant-periodic": func(cfg Config) Plan {
		if cfg.Period <= 0 {
			cfg.Period = 3
		}
		return NewPeriodicDormancyPlan(cfg)
	},
	"dormant-until-hit": func(cfg Config) Plan {
		if cfg.TriggerStatus == 0 {
			cfg.TriggerStatus = model.StatusMarked
		}
		return NewStatusGatedDormancyPlan(cfg, false)
	},
	"dormant-until-weather": func(cfg Config) Plan {
		if cfg.TriggerStatus == 0 {
			cfg.TriggerStatus = model.StatusStormy
		}
		return NewStatusGatedDormancyPlan(cfg, true)
	},
	"wander": func(cfg Config) Plan {
		return NewWanderPlan(cfg, false)
	},
	"patrol": func(cfg Config) Plan {
		return NewWanderPlan(cfg, true)
	},
	"guard-post": func(cfg Config) Plan {
		return NewGuardPostPlan(cfg)
	},
}

// Build constructs a plan by behavior name.
func Build(name string, cfg Config) (Plan, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown behavior %q", name)
	}
	return builder(cfg), nil
}

// PlanNames returns the recognized behavior names, sorted.
func PlanNames() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
