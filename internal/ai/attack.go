package ai

import (
	"log/slog"
	"math/rand/v2"

	"github.com/dgrange/crawlmind/internal/model"
	"github.com/dgrange/crawlmind/internal/world"
)

// eligibleAbility pairs a usable slot with its definition.
type eligibleAbility struct {
	slot int
	def  *model.AbilityDef
}

// eligibleAbilities collects the actor's usable ability slots: non-empty
// identifier, remaining charges, not sealed, enabled, known definition.
func eligibleAbilities(actor *model.Actor) []eligibleAbility {
	var out []eligibleAbility
	for i := range model.MaxAbilitySlots {
		slot := actor.Slot(i)
		if !slot.Usable() {
			continue
		}
		def := model.GetAbilityDef(slot.ID)
		if def == nil {
			continue
		}
		out = append(out, eligibleAbility{slot: i, def: def})
	}
	return out
}

// canHitFrom reports whether an ability's range footprint covers the target
// when used from the given tile.
func canHitFrom(w *world.World, from, targetPos model.Coord, def *model.AbilityDef) bool {
	switch def.Kind {
	case model.KindSelfStatus:
		return true
	case model.KindStrike:
		return from.Chebyshev(targetPos) == 1
	default: // projectile, targeted status: straight ray with clear sight
		dist := from.Chebyshev(targetPos)
		if dist < 1 || dist > def.Reach {
			return false
		}
		if !from.Aligned(targetPos) {
			return false
		}
		return w.LineOfSight(from, targetPos)
	}
}

// qualifies applies the range-class gate: the current target distance must
// satisfy the plan's minimum engagement range for the ability's class, and
// the footprint must cover the target (self-statuses have no footprint).
func qualifies(w *world.World, cfg *Config, from, targetPos model.Coord, def *model.AbilityDef) bool {
	dist := from.Chebyshev(targetPos)
	if dist < cfg.minRangeFor(def.Kind) {
		return false
	}
	return canHitFrom(w, from, targetPos, def)
}

// selectAttack picks which ability, if any, the actor uses this turn
// against the target, under the plan's selection policy. Returns a
// Wait-tagged action and false when no eligible ability qualifies; callers
// treat that as "no attack chosen" and fall through to movement.
func selectAttack(w *world.World, actor *model.Actor, target *model.Actor, cfg *Config, rng *rand.Rand) (model.Action, bool) {
	pos := actor.Position()
	targetPos := target.Position()

	var qualified []eligibleAbility
	for _, ea := range eligibleAbilities(actor) {
		if qualifies(w, cfg, pos, targetPos, ea.def) {
			qualified = append(qualified, ea)
		}
	}

	var chosen *eligibleAbility
	switch cfg.Policy {
	case PolicyBasicOnly:
		for i := range qualified {
			if qualified[i].slot == cfg.BasicSlot {
				chosen = &qualified[i]
				break
			}
		}

	case PolicyWeightedWalkIn, PolicyWeightedInRange:
		chosen = weightedPick(qualified, rng)

	case PolicyStatusBiased:
		var status, damaging []eligibleAbility
		for _, ea := range qualified {
			if ea.def.Damaging() {
				damaging = append(damaging, ea)
			} else {
				status = append(status, ea)
			}
		}
		chosen = weightedPick(status, rng)
		if chosen == nil {
			chosen = weightedPick(damaging, rng)
		}

	case PolicyOptimal:
		chosen = optimalPick(qualified)
	}

	if chosen == nil {
		return model.Wait(), false
	}

	dir := aimDirection(actor, targetPos, chosen.def)
	if IsDebugEnabled() {
		slog.Debug("attack selected",
			"actor", actor.Name(),
			"target", target.Name(),
			"ability", chosen.def.Name,
			"slot", chosen.slot,
			"dir", dir)
	}
	return model.UseAbility(chosen.slot, dir), true
}

// weightedPick draws one ability proportionally to definition weight.
func weightedPick(pool []eligibleAbility, rng *rand.Rand) *eligibleAbility {
	if len(pool) == 0 {
		return nil
	}
	var total int64
	for _, ea := range pool {
		if ea.def.Weight > 0 {
			total += int64(ea.def.Weight)
		}
	}
	if total == 0 {
		return &pool[rng.IntN(len(pool))]
	}
	roll := rng.Int64N(total)
	for i := range pool {
		if pool[i].def.Weight <= 0 {
			continue
		}
		roll -= int64(pool[i].def.Weight)
		if roll < 0 {
			return &pool[i]
		}
	}
	return &pool[len(pool)-1]
}

// optimalPick deterministically returns the best-scoring ability: highest
// power, then highest weight, then lowest slot index.
func optimalPick(pool []eligibleAbility) *eligibleAbility {
	var best *eligibleAbility
	for i := range pool {
		ea := &pool[i]
		if best == nil {
			best = ea
			continue
		}
		switch {
		case ea.def.Power > best.def.Power:
			best = ea
		case ea.def.Power == best.def.Power && ea.def.Weight > best.def.Weight:
			best = ea
		}
	}
	return best
}

// aimDirection resolves the direction an ability is used toward.
func aimDirection(actor *model.Actor, targetPos model.Coord, def *model.AbilityDef) model.Direction {
	if def.Kind == model.KindSelfStatus {
		return actor.Facing()
	}
	if dir, ok := actor.Position().DirectionTo(targetPos); ok {
		return dir
	}
	return actor.Facing()
}
