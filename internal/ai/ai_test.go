package ai

import (
	"math/rand/v2"
	"testing"

	"github.com/dgrange/crawlmind/internal/model"
	"github.com/dgrange/crawlmind/internal/world"
)

// Shared fixtures for the behavior tests: a parsed floor, actors placed on
// it, and a seeded generator so every assertion is reproducible.

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(42, 1337))
}

func mustFloor(t *testing.T, rows ...string) *world.World {
	t.Helper()
	w, err := world.Parse(rows)
	if err != nil {
		t.Fatalf("failed to parse floor: %v", err)
	}
	return w
}

// openFloor is a plain 20x6 room used by most movement tests.
func openFloor(t *testing.T) *world.World {
	t.Helper()
	return mustFloor(t,
		"####################",
		"#..................#",
		"#..................#",
		"#..................#",
		"#..................#",
		"####################",
	)
}

func placeActor(t *testing.T, w *world.World, id uint32, name string, team model.TeamID, x, y, hp int32) *model.Actor {
	t.Helper()
	a := model.NewActor(id, name, team, 0, model.NewCoord(x, y), hp)
	if err := w.AddActor(a); err != nil {
		t.Fatalf("failed to place %s: %v", name, err)
	}
	return a
}

func giveAbility(a *model.Actor, slot int, id model.AbilityID) {
	a.SetSlot(slot, model.AbilitySlot{ID: id, Charges: 10, Enabled: true})
}

func at(x, y int32) model.Coord {
	return model.NewCoord(x, y)
}
