package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dgrange/crawlmind/internal/ai"
	"github.com/dgrange/crawlmind/internal/config"
	"github.com/dgrange/crawlmind/internal/model"
	"github.com/dgrange/crawlmind/internal/world"
)

const DefaultScenarioPath = "config/scenario.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	scenarioPath := flag.String("scenario", DefaultScenarioPath, "scenario YAML path")
	seed := flag.Uint64("seed", 0, "override scenario seed")
	turns := flag.Int("turns", 0, "override scenario turn count")
	flag.Parse()

	sc, err := config.LoadScenario(*scenarioPath)
	if err != nil {
		return fmt.Errorf("loading scenario: %w", err)
	}
	if *seed != 0 {
		sc.Seed = *seed
	}
	if *turns != 0 {
		sc.Turns = *turns
	}

	logLevel := parseLogLevel(sc.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))
	ai.EnableDebugLogging(logLevel == slog.LevelDebug)

	slog.Info("crawlsim starting", "scenario", *scenarioPath, "seed", sc.Seed, "turns", sc.Turns)

	w, chains, err := buildFloor(sc)
	if err != nil {
		return fmt.Errorf("building floor: %w", err)
	}

	rng := rand.New(rand.NewPCG(sc.Seed, sc.Seed^0x9e3779b97f4a7c15))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return simulate(ctx, w, chains, rng, sc.Turns)
	})
	return g.Wait()
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// buildFloor turns the scenario into a populated world plus one behavior
// chain per actor.
func buildFloor(sc config.Scenario) (*world.World, map[uint32]*ai.Chain, error) {
	w, err := world.Parse(sc.Map)
	if err != nil {
		return nil, nil, err
	}

	for _, cond := range sc.Conditions {
		id, err := config.ParseStatus(cond.Status)
		if err != nil {
			return nil, nil, err
		}
		w.SetCondition(model.StatusEffect{ID: id, Countdown: cond.Countdown})
	}

	chains := make(map[uint32]*ai.Chain, len(sc.Actors))
	for i, ac := range sc.Actors {
		id := uint32(i + 1)
		actor := model.NewActor(id, ac.Name, model.TeamID(ac.Team), ac.Rank,
			model.NewCoord(ac.X, ac.Y), ac.HP)

		if ac.Sight > 0 {
			actor.SetSightRange(ac.Sight)
		}
		aware, err := config.ParseAwareness(ac.Awareness)
		if err != nil {
			return nil, nil, fmt.Errorf("actor %s: %w", ac.Name, err)
		}
		actor.SetAwareness(aware)
		mobility, err := config.ParseMobility(ac.Mobility)
		if err != nil {
			return nil, nil, fmt.Errorf("actor %s: %w", ac.Name, err)
		}
		actor.SetMobility(mobility)

		for slot, ab := range ac.Abilities {
			if slot >= model.MaxAbilitySlots {
				return nil, nil, fmt.Errorf("actor %s: more than %d abilities", ac.Name, model.MaxAbilitySlots)
			}
			actor.SetSlot(slot, model.AbilitySlot{
				ID:      model.AbilityID(ab.ID),
				Charges: ab.Charges,
				Sealed:  ab.Sealed,
				Enabled: ab.Enabled,
			})
		}

		if err := w.AddActor(actor); err != nil {
			return nil, nil, err
		}

		chain, err := buildChain(ac.Chain)
		if err != nil {
			return nil, nil, fmt.Errorf("actor %s: %w", ac.Name, err)
		}
		chain.Initialize(w, actor)
		chains[id] = chain
	}
	return w, chains, nil
}

var stanceNames = map[string]ai.Stance{
	"":         ai.StanceApproach,
	"approach": ai.StanceApproach,
	"close":    ai.StanceClose,
	"avoid":    ai.StanceAvoid,
}

var policyNames = map[string]ai.AttackPolicy{
	"":                  ai.PolicyBasicOnly,
	"basic-only":        ai.PolicyBasicOnly,
	"weighted-walk-in":  ai.PolicyWeightedWalkIn,
	"weighted-in-range": ai.PolicyWeightedInRange,
	"status-biased":     ai.PolicyStatusBiased,
	"optimal":           ai.PolicyOptimal,
}

// buildChain resolves plan configs against the behavior library.
func buildChain(plans []config.PlanConfig) (*ai.Chain, error) {
	if len(plans) == 0 {
		plans = []config.PlanConfig{{Behavior: "wander"}}
	}

	built := make([]ai.Plan, 0, len(plans))
	for _, pc := range plans {
		stance, ok := stanceNames[pc.Stance]
		if !ok {
			return nil, fmt.Errorf("unknown stance %q", pc.Stance)
		}
		policy, ok := policyNames[pc.Policy]
		if !ok {
			return nil, fmt.Errorf("unknown policy %q", pc.Policy)
		}
		aware, err := config.ParseAwareness(pc.Awareness)
		if err != nil {
			return nil, err
		}
		var mobility model.Mobility
		if len(pc.Mobility) > 0 {
			mobility, err = config.ParseMobility(pc.Mobility)
			if err != nil {
				return nil, err
			}
		}
		trigger, err := config.ParseStatus(pc.TriggerStatus)
		if err != nil {
			return nil, err
		}

		cfg := ai.Config{
			Stance:             stance,
			Policy:             policy,
			Awareness:          aware,
			Mobility:           mobility,
			AttackMinRange:     pc.AttackMinRange,
			StatusMinRange:     pc.StatusMinRange,
			SelfStatusMinRange: pc.SelfStatusMinRange,
			SenseRange:         pc.SenseRange,
			BasicSlot:          pc.BasicSlot,
			Period:             pc.Period,
			TriggerStatus:      trigger,
			ThresholdFactor:    pc.ThresholdFactor,
			OrbitRadius:        pc.OrbitRadius,
			OpenerSlot:         pc.OpenerSlot,
		}
		plan, err := ai.Build(pc.Behavior, cfg)
		if err != nil {
			return nil, err
		}
		built = append(built, plan)
	}
	return ai.NewChain(built...), nil
}

// simulate runs the turn loop: every living actor pre-thinks, then commits
// in roster order, then the floor advances.
func simulate(ctx context.Context, w *world.World, chains map[uint32]*ai.Chain, rng *rand.Rand, turns int) error {
	for turn := 0; turn < turns; turn++ {
		if err := ctx.Err(); err != nil {
			slog.Info("simulation interrupted", "turn", turn)
			return nil
		}

		for _, actor := range w.Roster() {
			if actor.IsDead() {
				continue
			}
			chains[actor.ID()].Think(w, actor, ai.PassPreThink, rng)
		}

		for _, actor := range w.Roster() {
			if actor.IsDead() {
				continue
			}
			action := chains[actor.ID()].Think(w, actor, ai.PassCommit, rng)
			apply(w, actor, action)
			actor.SetActed(true)
		}

		for _, actor := range w.Roster() {
			actor.TickStatuses()
			if w.Tile(actor.Position()) == world.TerrainExit {
				slog.Info("actor escaped", "actor", actor.Name(), "turn", w.Turn())
				w.RemoveActor(actor.ID())
			}
		}
		w.AdvanceTurn()

		if done, survivor := oneTeamLeft(w); done {
			slog.Info("simulation decided", "turn", w.Turn(), "team", survivor)
			return nil
		}
	}
	slog.Info("simulation finished", "turns", turns, "actors_left", len(w.Roster()))
	return nil
}

// apply executes one committed action against the world.
func apply(w *world.World, actor *model.Actor, action model.Action) {
	switch action.Kind {
	case model.ActionWait:
		slog.Debug("waits", "actor", actor.Name())

	case model.ActionMove:
		dest := actor.Position().Add(action.Dir)
		if err := w.MoveActor(actor, dest); err != nil {
			slog.Debug("move refused", "actor", actor.Name(), "err", err)
			return
		}
		actor.SetFacing(action.Dir)
		slog.Debug("moves", "actor", actor.Name(), "dir", action.Dir, "to", dest)

	case model.ActionUseAbility:
		slot := actor.Slot(action.Slot)
		def := model.GetAbilityDef(slot.ID)
		if def == nil {
			slog.Error("ability slot empty on use", "actor", actor.Name(), "slot", action.Slot)
			return
		}
		actor.SetFacing(action.Dir)
		actor.SpendCharge(action.Slot)
		resolveAbility(w, actor, def, action.Dir)
	}
}

// resolveAbility applies an ability's effect: self-statuses hit the user,
// everything else marches along the aimed direction to the first victim.
func resolveAbility(w *world.World, actor *model.Actor, def *model.AbilityDef, dir model.Direction) {
	if def.Kind == model.KindSelfStatus {
		if def.Status != 0 {
			actor.ApplyStatus(model.StatusEffect{ID: def.Status, Countdown: def.StatusTurns})
		}
		slog.Info("uses ability", "actor", actor.Name(), "ability", def.Name, "target", "self")
		return
	}

	victim := firstAlong(w, actor.Position(), dir, def.Reach)
	if victim == nil {
		slog.Info("uses ability", "actor", actor.Name(), "ability", def.Name, "target", "none")
		return
	}

	if def.Damaging() {
		victim.SetCurrentHP(victim.CurrentHP() - def.Power)
		// Getting hit marks the victim, waking status-gated sleepers.
		victim.ApplyStatus(model.StatusEffect{ID: model.StatusMarked})
		slog.Info("hits", "actor", actor.Name(), "ability", def.Name,
			"target", victim.Name(), "damage", def.Power, "target_hp", victim.CurrentHP())
		if victim.IsDead() {
			slog.Info("actor defeated", "actor", victim.Name(), "by", actor.Name())
			w.RemoveActor(victim.ID())
		}
		return
	}

	if def.Status != 0 {
		victim.ApplyStatus(model.StatusEffect{ID: def.Status, Countdown: def.StatusTurns})
	}
	slog.Info("uses ability", "actor", actor.Name(), "ability", def.Name, "target", victim.Name())
}

// firstAlong returns the first actor on the ray from origin, up to reach
// tiles out, stopping at sight-blocking terrain.
func firstAlong(w *world.World, origin model.Coord, dir model.Direction, reach int32) *model.Actor {
	c := origin
	for i := int32(0); i < reach; i++ {
		c = c.Add(dir)
		if w.Tile(c).BlocksSight() {
			return nil
		}
		if victim, ok := w.ActorAt(c); ok {
			return victim
		}
	}
	return nil
}

// oneTeamLeft reports whether at most one team still has living members.
func oneTeamLeft(w *world.World) (bool, model.TeamID) {
	var survivor model.TeamID
	seen := false
	for _, a := range w.Roster() {
		if a.IsDead() {
			continue
		}
		if !seen {
			survivor = a.Team()
			seen = true
			continue
		}
		if a.Team() != survivor {
			return false, 0
		}
	}
	return true, survivor
}
