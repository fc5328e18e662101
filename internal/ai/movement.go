package ai

import (
	"github.com/dgrange/crawlmind/internal/geo"
	"github.com/dgrange/crawlmind/internal/model"
	"github.com/dgrange/crawlmind/internal/world"
)

// pathBlocked builds the blocking predicate path searches share. It is
// terrain-only in both passes: occupant positions from later in the turn
// batch are not stable, so planned routes ignore them and the commit-time
// step check alone respects occupants. This keeps the route a plan
// previews in pre-think identical to the one it walks at commit.
func pathBlocked(w *world.World, actor *model.Actor, cfg *Config) geo.BlockedFunc {
	mobility := cfg.effectiveMobility(actor)
	avoidHazards := cfg.effectiveAwareness(actor).Has(model.AwareAvoidsHazards)
	return func(c model.Coord) bool {
		if w.Blocked(c, mobility, false) {
			return true
		}
		return avoidHazards && w.Tile(c).Hazardous()
	}
}

// canStep runs the two-tier step check for one direction: terrain and
// static hazards always, occupants only on the commit pass.
func canStep(w *world.World, actor *model.Actor, dir model.Direction, cfg *Config, pass Pass) bool {
	if actor.CannotWalk() {
		return false
	}
	pos := actor.Position()
	dest := pos.Add(dir)
	blocked := pathBlocked(w, actor, cfg)
	if blocked(dest) {
		return false
	}
	if dir.Diagonal() {
		dx, dy := dir.Delta()
		horiz, _ := model.DirectionOf(dx, 0)
		vert, _ := model.DirectionOf(0, dy)
		if blocked(pos.Add(horiz)) || blocked(pos.Add(vert)) {
			return false
		}
	}
	if pass == PassCommit {
		if occupant, ok := w.ActorAt(dest); ok {
			return yieldsTo(actor, occupant)
		}
	}
	return true
}

// yieldsTo implements the occupant yielding rule: an actor may step into a
// peer's tile only when that peer acts later this turn and has not acted
// yet, meaning it will vacate before the step resolves.
func yieldsTo(actor, occupant *model.Actor) bool {
	return occupant.TurnOrder() > actor.TurnOrder() && !occupant.Acted()
}

// stepAlong converts the first step of a path into a movement action. A
// commit-time refusal (occupant that will not yield) degrades to a Wait
// rather than failing, so traversal never depends on peer resolution
// order.
func stepAlong(w *world.World, actor *model.Actor, path *geo.Path, cfg *Config, pass Pass) model.Action {
	if path.Length() == 0 {
		return model.Wait()
	}
	dir, ok := actor.Position().DirectionTo(path.Steps[0])
	if !ok {
		return model.Wait()
	}
	if !canStep(w, actor, dir, cfg, pass) {
		return model.Wait()
	}
	return model.MoveDeliberate(dir)
}
