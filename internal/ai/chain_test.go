package ai

import (
	"math/rand/v2"
	"testing"

	"github.com/dgrange/crawlmind/internal/model"
	"github.com/dgrange/crawlmind/internal/world"
)

// scriptedPlan is a minimal Plan stub for chain-mechanics tests.
type scriptedPlan struct {
	action model.Action
	commit bool

	thinks     int
	switchedIn int
	prev       Plan
}

func (p *scriptedPlan) Initialize(*world.World, *model.Actor) {}

func (p *scriptedPlan) SwitchedIn(prev Plan) {
	p.switchedIn++
	p.prev = prev
}

func (p *scriptedPlan) Think(*world.World, *model.Actor, Pass, *rand.Rand) (model.Action, bool) {
	p.thinks++
	return p.action, p.commit
}

// TestChainFirstNonDeferWins verifies:
// 1. Plans are evaluated top to bottom
// 2. The first plan that commits controls the actor
// 3. Plans below the controller are never evaluated
func TestChainFirstNonDeferWins(t *testing.T) {
	w := openFloor(t)
	actor := placeActor(t, w, 1, "Subject", 1, 1, 1, 10)

	top := &scriptedPlan{action: model.Wait(), commit: false}
	mid := &scriptedPlan{action: model.MoveDeliberate(model.DirEast), commit: true}
	bottom := &scriptedPlan{action: model.Wait(), commit: true}

	chain := NewChain(top, mid, bottom)
	chain.Initialize(w, actor)

	action := chain.Think(w, actor, PassCommit, testRNG())

	if action.Kind != model.ActionMove || action.Dir != model.DirEast {
		t.Fatalf("expected mid plan's move east, got %v %v", action.Kind, action.Dir)
	}
	if top.thinks == 0 {
		t.Error("top plan was never consulted")
	}
	if bottom.thinks != 0 {
		t.Errorf("bottom plan evaluated %d times despite mid committing", bottom.thinks)
	}
}

// TestChainAllDeferFallsBackToWait verifies the chain-level Wait fallback.
func TestChainAllDeferFallsBackToWait(t *testing.T) {
	w := openFloor(t)
	actor := placeActor(t, w, 1, "Subject", 1, 1, 1, 10)

	a := &scriptedPlan{commit: false}
	b := &scriptedPlan{commit: false}
	chain := NewChain(a, b)
	chain.Initialize(w, actor)

	action := chain.Think(w, actor, PassCommit, testRNG())
	if action.Kind != model.ActionWait {
		t.Fatalf("expected Wait fallback, got %v", action.Kind)
	}

	// An empty chain degrades the same way.
	empty := NewChain()
	empty.Initialize(w, actor)
	if got := empty.Think(w, actor, PassCommit, testRNG()); got.Kind != model.ActionWait {
		t.Fatalf("empty chain: expected Wait, got %v", got.Kind)
	}
}

// TestChainContainsMalformedAction verifies a plan emitting a structurally
// invalid action is contained to a Wait instead of propagating.
func TestChainContainsMalformedAction(t *testing.T) {
	w := openFloor(t)
	actor := placeActor(t, w, 1, "Subject", 1, 1, 1, 10)

	broken := &scriptedPlan{action: model.UseAbility(99, model.DirEast), commit: true}
	chain := NewChain(broken)
	chain.Initialize(w, actor)

	action := chain.Think(w, actor, PassCommit, testRNG())
	if action.Kind != model.ActionWait {
		t.Fatalf("malformed action leaked through, got %v slot %d", action.Kind, action.Slot)
	}
}

// TestChainSwitchedInOnControlChange verifies:
// 1. Taking control on a commit pass triggers SwitchedIn with the previous
//    controller
// 2. The new controller re-thinks after the switch
// 3. Pre-think passes never trigger the switch protocol
func TestChainSwitchedInOnControlChange(t *testing.T) {
	w := openFloor(t)
	actor := placeActor(t, w, 1, "Subject", 1, 1, 1, 10)

	first := &scriptedPlan{action: model.Wait(), commit: true}
	second := &scriptedPlan{action: model.MoveDeliberate(model.DirSouth), commit: true}
	chain := NewChain(first, second)
	chain.Initialize(w, actor)

	// Pre-think: first plan answers but no switch happens.
	chain.Think(w, actor, PassPreThink, testRNG())
	if first.switchedIn != 0 {
		t.Fatal("pre-think pass must not trigger SwitchedIn")
	}

	// Commit: first takes control. Fresh chain has no previous controller.
	chain.Think(w, actor, PassCommit, testRNG())
	if first.switchedIn != 1 || first.prev != nil {
		t.Fatalf("first controller: switchedIn=%d prev=%v", first.switchedIn, first.prev)
	}

	// First defers; control moves to second, which re-thinks post-switch.
	first.commit = false
	second.thinks = 0
	action := chain.Think(w, actor, PassCommit, testRNG())
	if action.Kind != model.ActionMove || action.Dir != model.DirSouth {
		t.Fatalf("expected second plan's action, got %v", action.Kind)
	}
	if second.switchedIn != 1 {
		t.Fatalf("second plan switchedIn=%d, want 1", second.switchedIn)
	}
	if second.prev != first {
		t.Error("SwitchedIn did not receive the previous controller")
	}
	if second.thinks != 2 {
		t.Errorf("second plan thought %d times, want 2 (pre-switch and post-switch)", second.thinks)
	}

	// Same controller again: no further switch.
	chain.Think(w, actor, PassCommit, testRNG())
	if second.switchedIn != 1 {
		t.Error("repeated control must not re-trigger SwitchedIn")
	}
}

// TestSwitchedInInheritsHistory verifies the incoming plan clones the
// previous controller's location history and nothing else.
func TestSwitchedInInheritsHistory(t *testing.T) {
	prev := NewPursuePlan(Config{})
	prev.mem.rememberTarget(model.NewActor(9, "Ghost", 2, 0, at(4, 4), 10))
	prev.mem.history.Push(at(1, 1))
	prev.mem.history.Push(at(2, 1))

	next := NewPursuePlan(Config{})
	next.SwitchedIn(prev)

	if next.mem.hasLastKnown || next.mem.lastSeenID != 0 {
		t.Error("target memory must not survive a handoff")
	}
	if next.mem.history.Len() != 2 || !next.mem.history.Contains(at(2, 1)) {
		t.Fatalf("history not inherited: len=%d", next.mem.history.Len())
	}

	// The clone is independent of the previous plan's buffer.
	prev.mem.history.Push(at(3, 1))
	if next.mem.history.Contains(at(3, 1)) {
		t.Error("inherited history aliases the previous plan's buffer")
	}
}
