package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgrange/crawlmind/internal/model"
)

func TestLoadScenarioMissingFileYieldsDefault(t *testing.T) {
	sc, err := LoadScenario(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultScenario(), sc)
}

func TestLoadScenarioParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	data := `
seed: 99
turns: 12
log_level: debug
map:
  - "#####"
  - "#...#"
  - "#####"
actors:
  - name: Test
    team: 1
    x: 1
    y: 1
    hp: 15
    awareness: [avoids-hazards]
    abilities:
      - { id: 1, charges: 5, enabled: true }
    chain:
      - behavior: pursue
        stance: close
      - behavior: wander
conditions:
  - { status: stormy, countdown: 4 }
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	sc, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, uint64(99), sc.Seed)
	assert.Equal(t, 12, sc.Turns)
	assert.Len(t, sc.Map, 3)
	require.Len(t, sc.Actors, 1)
	assert.Equal(t, "Test", sc.Actors[0].Name)
	assert.Equal(t, []string{"avoids-hazards"}, sc.Actors[0].Awareness)
	require.Len(t, sc.Actors[0].Chain, 2)
	assert.Equal(t, "pursue", sc.Actors[0].Chain[0].Behavior)
	assert.Equal(t, "close", sc.Actors[0].Chain[0].Stance)
	require.Len(t, sc.Conditions, 1)
	assert.Equal(t, "stormy", sc.Conditions[0].Status)
	assert.Equal(t, int32(4), sc.Conditions[0].Countdown)
}

func TestLoadScenarioBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("map: [unterminated"), 0o644))

	_, err := LoadScenario(path)
	assert.Error(t, err)
}

func TestParseAwareness(t *testing.T) {
	flags, err := ParseAwareness([]string{"attacks-allies", "avoids-hazards"})
	require.NoError(t, err)
	assert.True(t, flags.Has(model.AwareAttacksAllies))
	assert.True(t, flags.Has(model.AwareAvoidsHazards))
	assert.False(t, flags.Has(model.AwareWontDisturb))

	_, err = ParseAwareness([]string{"clairvoyance"})
	assert.Error(t, err)
}

func TestParseMobility(t *testing.T) {
	m, err := ParseMobility(nil)
	require.NoError(t, err)
	assert.Equal(t, model.MobilityDefault, m, "empty list means default land walker")

	m, err = ParseMobility([]string{"ground", "water"})
	require.NoError(t, err)
	assert.True(t, m.Allows(model.MobilityWater))

	_, err = ParseMobility([]string{"burrowing"})
	assert.Error(t, err)
}

func TestParseStatus(t *testing.T) {
	id, err := ParseStatus("stormy")
	require.NoError(t, err)
	assert.Equal(t, model.StatusStormy, id)

	id, err = ParseStatus("")
	require.NoError(t, err)
	assert.Equal(t, model.StatusID(0), id)

	_, err = ParseStatus("cursed")
	assert.Error(t, err)
}
