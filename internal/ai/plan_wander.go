package ai

import (
	"math/rand/v2"

	"github.com/dgrange/crawlmind/internal/geo"
	"github.com/dgrange/crawlmind/internal/model"
	"github.com/dgrange/crawlmind/internal/world"
)

// WanderPlan explores with the oscillation guard: it prefers legal steps
// that lie forward of its recent travel direction and are not in the
// recent-tile history, so the actor keeps covering new ground instead of
// pacing. The strict variant (patrol) refuses to backtrack at all.
type WanderPlan struct {
	basePlan
	strictForward bool
}

// NewWanderPlan creates an exploration plan. strictForward makes it Wait
// rather than ever reverse course.
func NewWanderPlan(cfg Config, strictForward bool) *WanderPlan {
	return &WanderPlan{basePlan: basePlan{cfg: cfg}, strictForward: strictForward}
}

func (p *WanderPlan) Think(w *world.World, actor *model.Actor, pass Pass, rng *rand.Rand) (model.Action, bool) {
	if actor.IsDead() || actor.CannotAct() || actor.CannotWalk() {
		return model.Wait(), true
	}

	p.mem.history.Push(actor.Position())
	p.mem.history.TrimToSight(actor)

	pos := actor.Position()
	var legal, forward []model.Direction
	for d := model.Direction(0); d < model.NumDirections; d++ {
		if !canStep(w, actor, d, &p.cfg, pass) {
			continue
		}
		dest := pos.Add(d)
		legal = append(legal, d)
		if !p.mem.history.Contains(dest) && p.mem.history.ForwardOf(pos, dest) {
			forward = append(forward, d)
		}
	}

	pool := forward
	if len(pool) == 0 {
		if p.strictForward {
			return model.Wait(), true
		}
		pool = legal
	}
	if len(pool) == 0 {
		return model.Wait(), true
	}
	return model.Move(pool[rng.IntN(len(pool))]), true
}

// GuardPostPlan holds a post: the tile the actor stood on when the plan
// was assigned. Away from it, the actor paths back; on it, it Waits.
type GuardPostPlan struct {
	basePlan
	home    model.Coord
	hasHome bool
}

// NewGuardPostPlan creates a guard-post plan.
func NewGuardPostPlan(cfg Config) *GuardPostPlan {
	return &GuardPostPlan{basePlan: basePlan{cfg: cfg}}
}

// Initialize records the post tile.
func (p *GuardPostPlan) Initialize(w *world.World, actor *model.Actor) {
	p.basePlan.Initialize(w, actor)
	p.home = actor.Position()
	p.hasHome = true
}

func (p *GuardPostPlan) Think(w *world.World, actor *model.Actor, pass Pass, rng *rand.Rand) (model.Action, bool) {
	if actor.IsDead() || actor.CannotAct() {
		return model.Wait(), true
	}
	if !p.hasHome || actor.Position() == p.home {
		return model.Wait(), true
	}

	paths := geo.FindPaths(actor.Position(), []model.Coord{p.home}, pathBlocked(w, actor, &p.cfg), 0)
	if paths[0] == nil {
		return model.Wait(), true
	}
	return stepAlong(w, actor, paths[0], &p.cfg, pass), true
}
