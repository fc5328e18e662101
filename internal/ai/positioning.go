package ai

import (
	"github.com/dgrange/crawlmind/internal/geo"
	"github.com/dgrange/crawlmind/internal/model"
	"github.com/dgrange/crawlmind/internal/world"
)

// Candidate is an ephemeral destination computed for one turn: a tile from
// which some eligible ability covers the target, its range-footprint weight
// (engagement distance, ranked by the Close/Avoid stances), and the target
// it was computed against.
type Candidate struct {
	Tile   model.Coord
	Weight int32
	Target *model.Actor
}

// buildCandidates unions, over all eligible abilities, every tile from
// which that ability legally hits the target: the range footprint gated by
// the plan's per-class minimum engagement range, the same test the attack
// selector applies. The actor's current tile is excluded unless it has
// banked extra turns this cycle, so trivial "already there" paths never
// dominate the search.
func buildCandidates(w *world.World, actor *model.Actor, target *model.Actor, abilities []eligibleAbility, cfg *Config) []Candidate {
	pos := actor.Position()
	targetPos := target.Position()
	mobility := cfg.effectiveMobility(actor)
	avoidHazards := cfg.effectiveAwareness(actor).Has(model.AwareAvoidsHazards)

	seen := make(map[model.Coord]struct{})
	var out []Candidate

	consider := func(c model.Coord) {
		if _, dup := seen[c]; dup {
			return
		}
		if c == pos && actor.BankedTurns() == 0 {
			return
		}
		if c != pos {
			if w.Blocked(c, mobility, false) {
				return
			}
			if avoidHazards && w.Tile(c).Hazardous() {
				return
			}
		}
		seen[c] = struct{}{}
		out = append(out, Candidate{Tile: c, Weight: c.Chebyshev(targetPos), Target: target})
	}

	for _, ea := range abilities {
		switch ea.def.Kind {
		case model.KindSelfStatus:
			// No footprint: self-statuses do not anchor positioning.
		case model.KindStrike:
			for d := model.Direction(0); d < model.NumDirections; d++ {
				c := targetPos.Add(d)
				if !qualifies(w, cfg, c, targetPos, ea.def) {
					continue
				}
				consider(c)
			}
		default:
			// Ray tiles out to the ability's reach in the eight
			// directions, stopping where sight breaks.
			for d := model.Direction(0); d < model.NumDirections; d++ {
				c := targetPos
				for step := int32(1); step <= ea.def.Reach; step++ {
					c = c.Add(d)
					if !w.InBounds(c) || w.Tile(c).BlocksSight() {
						break
					}
					if !qualifies(w, cfg, c, targetPos, ea.def) {
						continue
					}
					consider(c)
				}
			}
		}
	}

	return out
}

// chooseDestination applies the selection ladder over one path per
// candidate: prefer the shortest path; on length ties, the locally best
// weight for the stance (Avoid higher, Close lower); then the candidate
// physically nearest the target; on full ties, the oscillation guard when
// one is supplied (fresh ground first, then a heading consistent with
// recent travel). Partial paths count, except when the candidate is the
// actor's own tile (no partial credit for "trying to reach myself").
// Returns -1 when nothing is usable.
func chooseDestination(origin model.Coord, paths []*geo.Path, cands []Candidate, stance Stance, hist *LocationHistory) int {
	best := -1
	for i, p := range paths {
		if p == nil {
			continue
		}
		if !p.Complete && cands[i].Tile == origin {
			continue
		}
		if p.Length() == 0 && cands[i].Tile != origin {
			continue
		}
		if best == -1 || destinationLess(origin, p, cands[i], paths[best], cands[best], stance, hist) {
			best = i
		}
	}
	return best
}

// destinationLess reports whether candidate a strictly beats candidate b
// under the stance's tie-break ladder.
func destinationLess(origin model.Coord, pa *geo.Path, ca Candidate, pb *geo.Path, cb Candidate, stance Stance, hist *LocationHistory) bool {
	if pa.Length() != pb.Length() {
		return pa.Length() < pb.Length()
	}
	if ca.Weight != cb.Weight {
		if stance == StanceAvoid {
			return ca.Weight > cb.Weight
		}
		return ca.Weight < cb.Weight
	}
	da := ca.Tile.DistanceSquared(ca.Target.Position())
	db := cb.Tile.DistanceSquared(cb.Target.Position())
	if da != db {
		return da < db
	}
	if hist != nil {
		if ra, rb := hist.Contains(ca.Tile), hist.Contains(cb.Tile); ra != rb {
			return !ra
		}
		if fa, fb := hist.ForwardOf(origin, ca.Tile), hist.ForwardOf(origin, cb.Tile); fa != fb {
			return fa
		}
	}
	return false
}
