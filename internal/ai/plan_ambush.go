package ai

import (
	"math/rand/v2"

	"github.com/dgrange/crawlmind/internal/geo"
	"github.com/dgrange/crawlmind/internal/model"
	"github.com/dgrange/crawlmind/internal/world"
)

// AmbushPlan lurks inside light-blocking cover terrain and only moves
// through it, striking targets that stray into reach. While the provoked
// status is active the terrain and range constraints relax and detection
// becomes an omniscient-within-radius sense.
type AmbushPlan struct {
	basePlan
}

// NewAmbushPlan creates an ambush-from-cover plan.
func NewAmbushPlan(cfg Config) *AmbushPlan {
	return &AmbushPlan{basePlan{cfg: cfg}}
}

func (p *AmbushPlan) Think(w *world.World, actor *model.Actor, pass Pass, rng *rand.Rand) (model.Action, bool) {
	if actor.IsDead() || actor.CannotAct() {
		return model.Wait(), true
	}

	if actor.HasStatus(model.StatusProvoked) {
		return p.thinkProvoked(w, actor, pass, rng)
	}

	if w.Tile(actor.Position()) != world.TerrainCover {
		// Flushed out without being provoked: nothing to ambush from.
		return model.Wait(), false
	}

	targets := acquireTargets(w, targetQuery{
		actor:      actor,
		aware:      p.cfg.effectiveAwareness(actor),
		senseRange: p.cfg.effectiveSenseRange(actor),
		mobility:   p.cfg.effectiveMobility(actor),
	})
	if len(targets) == 0 {
		return model.Wait(), true
	}
	target := targets[0]

	if action, ok := selectAttack(w, actor, target, &p.cfg, rng); ok {
		return action, true
	}

	// Reposition strictly through cover toward a striking tile.
	coverCfg := p.cfg
	coverCfg.Mobility = model.MobilityCover

	cands := buildCandidates(w, actor, target, eligibleAbilities(actor), &coverCfg)
	if len(cands) == 0 {
		return model.Wait(), true
	}
	tiles := make([]model.Coord, len(cands))
	for i, c := range cands {
		tiles[i] = c.Tile
	}
	pos := actor.Position()
	paths := geo.FindPaths(pos, tiles, pathBlocked(w, actor, &coverCfg), 0)
	idx := chooseDestination(pos, paths, cands, StanceClose, &p.mem.history)
	if idx < 0 {
		return model.Wait(), true
	}
	return stepAlong(w, actor, paths[idx], &coverCfg, pass), true
}

// thinkProvoked chases like a pursuer, sensing targets through walls.
func (p *AmbushPlan) thinkProvoked(w *world.World, actor *model.Actor, pass Pass, rng *rand.Rand) (model.Action, bool) {
	targets := acquireTargets(w, targetQuery{
		actor:      actor,
		aware:      p.cfg.effectiveAwareness(actor),
		senseRange: p.cfg.effectiveSenseRange(actor),
		mobility:   p.cfg.effectiveMobility(actor),
		darkSense:  true,
	})
	if len(targets) == 0 {
		return model.Wait(), true
	}
	target := targets[0]

	if action, ok := selectAttack(w, actor, target, &p.cfg, rng); ok {
		return action, true
	}

	pos := actor.Position()
	paths := geo.FindPaths(pos, []model.Coord{target.Position()}, pathBlocked(w, actor, &p.cfg), 0)
	if paths[0] == nil {
		return model.Wait(), true
	}
	return stepAlong(w, actor, paths[0], &p.cfg, pass), true
}
