package world

import (
	"fmt"

	"github.com/dgrange/crawlmind/internal/model"
)

// World is one simulated dungeon floor: the tile grid, the actor roster in
// turn order, the floor turn counter, and the environmental status registry.
// It is the concrete query surface the behavior core consumes.
//
// All access is single-threaded by the turn discipline; no locking.
type World struct {
	width  int32
	height int32
	tiles  []Terrain

	actors    map[uint32]*model.Actor
	occupancy map[model.Coord]uint32
	roster    []uint32 // turn order (registration order)

	exits []model.Coord

	turn       int64
	conditions map[model.StatusID]*model.StatusEffect
}

// New creates an empty all-wall floor of the given size.
func New(width, height int32) *World {
	return &World{
		width:      width,
		height:     height,
		tiles:      make([]Terrain, int(width)*int(height)),
		actors:     make(map[uint32]*model.Actor),
		occupancy:  make(map[model.Coord]uint32),
		conditions: make(map[model.StatusID]*model.StatusEffect),
	}
}

// Parse builds a floor from map rows. Recognized tiles:
// '#' wall, '.' open, '~' water, '^' lava, 'x' chasm, '+' cover, '>' exit.
func Parse(rows []string) (*World, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("parsing floor: no rows")
	}
	width := len(rows[0])
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("parsing floor: row %d width %d, want %d", y, len(row), width)
		}
	}

	w := New(int32(width), int32(len(rows)))
	for y, row := range rows {
		for x := range width {
			terrain, ok := terrainRunes[row[x]]
			if !ok {
				return nil, fmt.Errorf("parsing floor: unknown tile %q at (%d,%d)", row[x], x, y)
			}
			c := model.NewCoord(int32(x), int32(y))
			w.SetTile(c, terrain)
		}
	}
	return w, nil
}

// Width returns the grid width in tiles.
func (w *World) Width() int32 { return w.width }

// Height returns the grid height in tiles.
func (w *World) Height() int32 { return w.height }

// InBounds reports whether the coordinate lies on the grid.
func (w *World) InBounds(c model.Coord) bool {
	return c.X >= 0 && c.X < w.width && c.Y >= 0 && c.Y < w.height
}

// Tile returns the terrain at c. Out-of-bounds tiles read as wall.
func (w *World) Tile(c model.Coord) Terrain {
	if !w.InBounds(c) {
		return TerrainWall
	}
	return w.tiles[c.Y*w.width+c.X]
}

// SetTile overwrites the terrain at c and maintains the exit list.
func (w *World) SetTile(c model.Coord, t Terrain) {
	if !w.InBounds(c) {
		return
	}
	prev := w.tiles[c.Y*w.width+c.X]
	w.tiles[c.Y*w.width+c.X] = t
	if prev == TerrainExit && t != TerrainExit {
		for i, e := range w.exits {
			if e == c {
				w.exits = append(w.exits[:i], w.exits[i+1:]...)
				break
			}
		}
	}
	if t == TerrainExit && prev != TerrainExit {
		w.exits = append(w.exits, c)
	}
}

// Exits returns the floor exit tiles in scan order.
func (w *World) Exits() []model.Coord { return w.exits }

// Blocked reports whether an actor with the given mobility mask cannot enter
// the tile. Occupants count only when includeOccupants is set: the pre-think
// pass evaluates terrain alone, the commit pass respects occupants.
func (w *World) Blocked(c model.Coord, mobility model.Mobility, includeOccupants bool) bool {
	if !w.Tile(c).Passable(mobility) {
		return true
	}
	if includeOccupants {
		if _, ok := w.occupancy[c]; ok {
			return true
		}
	}
	return false
}

// AddActor registers an actor on the floor at its current position and
// appends it to the turn roster.
func (w *World) AddActor(a *model.Actor) error {
	if _, exists := w.actors[a.ID()]; exists {
		return fmt.Errorf("adding actor %d: already on floor", a.ID())
	}
	pos := a.Position()
	if !w.InBounds(pos) {
		return fmt.Errorf("adding actor %d: position %v out of bounds", a.ID(), pos)
	}
	if occ, taken := w.occupancy[pos]; taken {
		return fmt.Errorf("adding actor %d: tile %v occupied by %d", a.ID(), pos, occ)
	}
	w.actors[a.ID()] = a
	w.occupancy[pos] = a.ID()
	a.SetTurnOrder(int32(len(w.roster)))
	w.roster = append(w.roster, a.ID())
	return nil
}

// RemoveActor takes an actor off the floor.
func (w *World) RemoveActor(id uint32) {
	a, ok := w.actors[id]
	if !ok {
		return
	}
	delete(w.occupancy, a.Position())
	delete(w.actors, id)
	for i, rid := range w.roster {
		if rid == id {
			w.roster = append(w.roster[:i], w.roster[i+1:]...)
			break
		}
	}
	for i, rid := range w.roster {
		w.actors[rid].SetTurnOrder(int32(i))
	}
}

// Actor looks up an actor by ID.
func (w *World) Actor(id uint32) (*model.Actor, bool) {
	a, ok := w.actors[id]
	return a, ok
}

// ActorAt returns the occupant of a tile, if any.
func (w *World) ActorAt(c model.Coord) (*model.Actor, bool) {
	id, ok := w.occupancy[c]
	if !ok {
		return nil, false
	}
	return w.actors[id], true
}

// MoveActor relocates an actor, keeping the occupancy index consistent.
func (w *World) MoveActor(a *model.Actor, to model.Coord) error {
	if !w.InBounds(to) {
		return fmt.Errorf("moving actor %d: %v out of bounds", a.ID(), to)
	}
	if occ, taken := w.occupancy[to]; taken && occ != a.ID() {
		return fmt.Errorf("moving actor %d: tile %v occupied by %d", a.ID(), to, occ)
	}
	delete(w.occupancy, a.Position())
	w.occupancy[to] = a.ID()
	a.SetPosition(to)
	return nil
}

// Roster returns all actors in turn order.
func (w *World) Roster() []*model.Actor {
	out := make([]*model.Actor, 0, len(w.roster))
	for _, id := range w.roster {
		out = append(out, w.actors[id])
	}
	return out
}

// Teammates returns the actors of one team in rank order.
func (w *World) Teammates(team model.TeamID) []*model.Actor {
	var out []*model.Actor
	for _, a := range w.Roster() {
		if a.Team() == team {
			out = append(out, a)
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Rank() < out[j-1].Rank(); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// Leader returns the lowest-rank member of a team.
func (w *World) Leader(team model.TeamID) (*model.Actor, bool) {
	members := w.Teammates(team)
	if len(members) == 0 {
		return nil, false
	}
	return members[0], true
}

// Turn returns the floor-global turn counter.
func (w *World) Turn() int64 { return w.turn }

// AdvanceTurn increments the floor turn counter, clears per-turn acted
// flags, and ticks environmental condition countdowns.
func (w *World) AdvanceTurn() {
	w.turn++
	for _, a := range w.actors {
		a.SetActed(false)
	}
	for id, eff := range w.conditions {
		if eff.Countdown > 0 {
			eff.Countdown--
			if eff.Countdown == 0 {
				delete(w.conditions, id)
			}
		}
	}
}

// Condition reports whether an environmental status is active on the floor.
func (w *World) Condition(id model.StatusID) bool {
	_, ok := w.conditions[id]
	return ok
}

// SetCondition activates an environmental status. Countdown zero means
// indefinite.
func (w *World) SetCondition(effect model.StatusEffect) {
	e := effect
	w.conditions[e.ID] = &e
}

// ClearCondition removes an environmental status.
func (w *World) ClearCondition(id model.StatusID) {
	delete(w.conditions, id)
}
