package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dgrange/crawlmind/internal/model"
)

// Scenario holds a full simulation setup: the floor map, the actors with
// their behavior chains, and the run parameters.
type Scenario struct {
	Seed     uint64 `yaml:"seed"`
	Turns    int    `yaml:"turns"`
	LogLevel string `yaml:"log_level"`

	Map []string `yaml:"map"`

	Actors     []ActorConfig     `yaml:"actors"`
	Conditions []ConditionConfig `yaml:"conditions"`
}

// ActorConfig describes one actor on the floor.
type ActorConfig struct {
	Name string `yaml:"name"`
	Team int32  `yaml:"team"`
	Rank int32  `yaml:"rank"`
	X    int32  `yaml:"x"`
	Y    int32  `yaml:"y"`
	HP   int32  `yaml:"hp"`

	Sight     int32    `yaml:"sight"`
	Awareness []string `yaml:"awareness"`
	Mobility  []string `yaml:"mobility"`

	Abilities []AbilitySlotConfig `yaml:"abilities"`
	Chain     []PlanConfig        `yaml:"chain"`
}

// AbilitySlotConfig fills one ability slot.
type AbilitySlotConfig struct {
	ID      int32 `yaml:"id"`
	Charges int32 `yaml:"charges"`
	Sealed  bool  `yaml:"sealed"`
	Enabled bool  `yaml:"enabled"`
}

// PlanConfig selects and tunes one behavior in an actor's chain. Behavior
// names and option values are resolved against the plan library at load
// time by the runner.
type PlanConfig struct {
	Behavior string `yaml:"behavior"`

	Stance string `yaml:"stance"` // approach | close | avoid
	Policy string `yaml:"policy"` // basic-only | weighted-walk-in | weighted-in-range | status-biased | optimal

	Awareness []string `yaml:"awareness"`
	Mobility  []string `yaml:"mobility"`

	AttackMinRange     int32 `yaml:"attack_min_range"`
	StatusMinRange     int32 `yaml:"status_min_range"`
	SelfStatusMinRange int32 `yaml:"self_status_min_range"`

	SenseRange      int32  `yaml:"sense_range"`
	BasicSlot       int    `yaml:"basic_slot"`
	Period          int32  `yaml:"period"`
	TriggerStatus   string `yaml:"trigger_status"`
	ThresholdFactor int32  `yaml:"threshold_factor"`
	OrbitRadius     int32  `yaml:"orbit_radius"`
	OpenerSlot      int    `yaml:"opener_slot"`
}

// ConditionConfig activates an environmental status at simulation start.
type ConditionConfig struct {
	Status    string `yaml:"status"`
	Countdown int32  `yaml:"countdown"`
}

// DefaultScenario returns a small two-actor skirmish used when no scenario
// file is supplied.
func DefaultScenario() Scenario {
	return Scenario{
		Seed:     1,
		Turns:    30,
		LogLevel: "info",
		Map: []string{
			"############",
			"#..........#",
			"#..........#",
			"#....##....#",
			"#..........#",
			"#.........>#",
			"############",
		},
		Actors: []ActorConfig{
			{
				Name: "Delver", Team: 1, Rank: 0, X: 1, Y: 1, HP: 40, Sight: 8,
				Abilities: []AbilitySlotConfig{{ID: 1, Charges: 30, Enabled: true}},
				Chain:     []PlanConfig{{Behavior: "pursue"}, {Behavior: "wander"}},
			},
			{
				Name: "Gnasher", Team: 2, Rank: 0, X: 10, Y: 5, HP: 25, Sight: 6,
				Abilities: []AbilitySlotConfig{{ID: 2, Charges: 20, Enabled: true}},
				Chain:     []PlanConfig{{Behavior: "pursue-cautious"}, {Behavior: "wander"}},
			},
		},
	}
}

// LoadScenario loads a scenario from a YAML file. A missing file yields
// the default scenario.
func LoadScenario(path string) (Scenario, error) {
	sc := DefaultScenario()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return sc, nil
		}
		return sc, fmt.Errorf("reading scenario %s: %w", path, err)
	}

	sc = Scenario{}
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return sc, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	return sc, nil
}

// awarenessNames maps config strings to awareness bits.
var awarenessNames = map[string]model.Awareness{
	"attacks-allies":       model.AwareAttacksAllies,
	"picks-up-items":       model.AwarePicksUpItems,
	"uses-items":           model.AwareUsesItems,
	"type-matchups":        model.AwareTypeMatchups,
	"escape-abilities":     model.AwareEscapeAbilities,
	"wont-disturb":         model.AwareWontDisturb,
	"avoids-hazards":       model.AwareAvoidsHazards,
	"player-sensibilities": model.AwarePlayerSensibilities,
}

// ParseAwareness resolves awareness flag names into the bitset.
func ParseAwareness(names []string) (model.Awareness, error) {
	var out model.Awareness
	for _, name := range names {
		bit, ok := awarenessNames[name]
		if !ok {
			return 0, fmt.Errorf("unknown awareness flag %q", name)
		}
		out |= bit
	}
	return out, nil
}

// mobilityNames maps config strings to mobility bits.
var mobilityNames = map[string]model.Mobility{
	"ground": model.MobilityGround,
	"water":  model.MobilityWater,
	"lava":   model.MobilityLava,
	"chasm":  model.MobilityChasm,
	"cover":  model.MobilityCover,
	"all":    model.MobilityAll,
}

// ParseMobility resolves terrain-mobility names into the mask. An empty
// list yields the default land-walker mask.
func ParseMobility(names []string) (model.Mobility, error) {
	if len(names) == 0 {
		return model.MobilityDefault, nil
	}
	var out model.Mobility
	for _, name := range names {
		bit, ok := mobilityNames[name]
		if !ok {
			return 0, fmt.Errorf("unknown mobility class %q", name)
		}
		out |= bit
	}
	return out, nil
}

// statusNames maps config strings to status identifiers.
var statusNames = map[string]model.StatusID{
	"sleep":     model.StatusSleep,
	"frozen":    model.StatusFrozen,
	"shackled":  model.StatusShackled,
	"provoked":  model.StatusProvoked,
	"marked":    model.StatusMarked,
	"stormy":    model.StatusStormy,
	"sandstorm": model.StatusSandstorm,
}

// ParseStatus resolves a status name. An empty string yields zero.
func ParseStatus(name string) (model.StatusID, error) {
	if name == "" {
		return 0, nil
	}
	id, ok := statusNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown status %q", name)
	}
	return id, nil
}
