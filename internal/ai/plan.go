package ai

import (
	"log/slog"
	"math/rand/v2"

	"github.com/dgrange/crawlmind/internal/model"
	"github.com/dgrange/crawlmind/internal/world"
)

// Pass distinguishes the two evaluations a plan sees each world turn.
type Pass int32

const (
	// PassPreThink - non-committing evaluation run before any actor in the
	// batch has moved; used for forward bookkeeping such as target-memory
	// refresh. Must not treat peer positions as final.
	PassPreThink Pass = iota
	// PassCommit - the evaluation whose result is actually executed on the
	// actor's turn. Peers may already have moved.
	PassCommit
)

// String returns human-readable pass name
func (p Pass) String() string {
	switch p {
	case PassPreThink:
		return "PRE_THINK"
	case PassCommit:
		return "COMMIT"
	default:
		return "UNKNOWN"
	}
}

// Plan is one reusable behavior strategy. Configuration is fixed at
// construction; per-activation memory is transient and reset by SwitchedIn.
//
// Think returns (action, true) to commit an action, or (_, false) to defer
// to the next plan in the actor's chain. "Nothing to do" is an ordinary
// outcome, never an error.
type Plan interface {
	// Initialize is called once when the plan is assigned to an actor.
	Initialize(w *world.World, actor *model.Actor)

	// SwitchedIn is called when the plan takes control after another plan
	// was controlling the actor. It resets transient state, optionally
	// inheriting select memory (recent-path history) from prev.
	SwitchedIn(prev Plan)

	// Think evaluates the plan for one pass.
	Think(w *world.World, actor *model.Actor, pass Pass, rng *rand.Rand) (model.Action, bool)
}

// planState is the transient per-activation memory shared by the plan
// library. Never persisted; cleared on activation except for the location
// history, which an incoming plan inherits so the actor does not reverse
// course on a plan handoff.
type planState struct {
	lastKnown    model.Coord
	hasLastKnown bool
	lastSeenID   uint32
	latched      bool
	history      LocationHistory
}

func (s *planState) reset() {
	*s = planState{}
}

func (s *planState) rememberTarget(t *model.Actor) {
	s.lastKnown = t.Position()
	s.hasLastKnown = true
	s.lastSeenID = t.ID()
}

func (s *planState) forgetTarget() {
	s.hasLastKnown = false
	s.lastSeenID = 0
}

// stateCarrier is implemented by every library plan so SwitchedIn can reach
// the previous plan's memory.
type stateCarrier interface {
	state() *planState
}

// basePlan carries the shared configuration and transient memory; concrete
// plans embed it.
type basePlan struct {
	cfg Config
	mem planState
}

func (p *basePlan) state() *planState { return &p.mem }

// Initialize resets transient memory on assignment.
func (p *basePlan) Initialize(w *world.World, actor *model.Actor) {
	p.mem.reset()
}

// SwitchedIn resets transient memory, inheriting the previous controller's
// location history.
func (p *basePlan) SwitchedIn(prev Plan) {
	p.mem.reset()
	if prev == nil {
		return
	}
	if carrier, ok := prev.(stateCarrier); ok {
		p.mem.history = carrier.state().history.Clone()
	}
}

// Chain is an actor's ordered plan list, evaluated top to bottom each turn.
// The first plan returning a non-deferred result controls the actor; if
// every plan defers, the chain falls back to a no-op Wait.
type Chain struct {
	plans  []Plan
	active int
}

// NewChain builds a chain over the given plans.
func NewChain(plans ...Plan) *Chain {
	return &Chain{plans: plans, active: -1}
}

// Initialize assigns the chain to an actor.
func (c *Chain) Initialize(w *world.World, actor *model.Actor) {
	for _, p := range c.plans {
		p.Initialize(w, actor)
	}
	c.active = -1
}

// Think runs one evaluation pass over the chain.
//
// When control moves to a different plan on a commit pass, the new plan's
// SwitchedIn runs and the plan thinks again with its inherited memory, so
// the executed action already reflects the handoff.
func (c *Chain) Think(w *world.World, actor *model.Actor, pass Pass, rng *rand.Rand) model.Action {
	for i, p := range c.plans {
		action, ok := p.Think(w, actor, pass, rng)
		if !ok {
			continue
		}

		if pass == PassCommit && i != c.active {
			var prev Plan
			if c.active >= 0 {
				prev = c.plans[c.active]
			}
			p.SwitchedIn(prev)
			action, ok = p.Think(w, actor, pass, rng)
			if !ok {
				continue
			}
			c.active = i

			if IsDebugEnabled() {
				slog.Debug("plan took control",
					"actor", actor.Name(),
					"actorID", actor.ID(),
					"plan", i)
			}
		}

		if !action.StructurallyValid(model.MaxAbilitySlots) {
			// A plan produced neither a well-formed action nor an explicit
			// defer: a logic error local to that plan. Contain it.
			slog.Error("plan produced malformed action",
				"actor", actor.Name(),
				"plan", i,
				"kind", action.Kind)
			return model.Wait()
		}
		return action
	}
	return model.Wait()
}
