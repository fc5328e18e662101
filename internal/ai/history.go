package ai

import "github.com/dgrange/crawlmind/internal/model"

// historyCapacity bounds the oscillation guard. Old entries fall off the
// front once the buffer is full.
const historyCapacity = 12

// LocationHistory is the oscillation guard: a bounded FIFO of recently
// occupied tiles, used by exploration and pursuit plans to bias movement
// away from immediate backtracking.
type LocationHistory struct {
	entries []model.Coord
}

// Push records a tile, skipping consecutive duplicates and trimming the
// buffer to capacity.
func (h *LocationHistory) Push(c model.Coord) {
	if n := len(h.entries); n > 0 && h.entries[n-1] == c {
		return
	}
	h.entries = append(h.entries, c)
	if len(h.entries) > historyCapacity {
		h.entries = h.entries[len(h.entries)-historyCapacity:]
	}
}

// Len returns the number of retained entries.
func (h *LocationHistory) Len() int { return len(h.entries) }

// Contains reports whether the tile is in the retained history.
func (h *LocationHistory) Contains(c model.Coord) bool {
	for _, e := range h.entries {
		if e == c {
			return true
		}
	}
	return false
}

// TrimToSight drops entries outside the actor's current sight window, so
// stale history from a previous area never biases current decisions.
func (h *LocationHistory) TrimToSight(actor *model.Actor) {
	pos := actor.Position()
	radius := actor.SightRange()
	kept := h.entries[:0]
	for _, e := range h.entries {
		if pos.Chebyshev(e) <= radius {
			kept = append(kept, e)
		}
	}
	h.entries = kept
}

// Farthest returns the retained entry most distant from the given tile.
func (h *LocationHistory) Farthest(from model.Coord) (model.Coord, bool) {
	if len(h.entries) == 0 {
		return model.Coord{}, false
	}
	best := h.entries[0]
	bestDist := from.DistanceSquared(best)
	for _, e := range h.entries[1:] {
		if d := from.DistanceSquared(e); d > bestDist {
			best = e
			bestDist = d
		}
	}
	return best, true
}

// ForwardOf reports whether dest lies forward of the travel direction the
// history implies: a dot-product sign test of (dest - pos) against the
// vector from the most distant retained point to pos. With no usable
// history every destination counts as forward.
func (h *LocationHistory) ForwardOf(pos, dest model.Coord) bool {
	anchor, ok := h.Farthest(pos)
	if !ok || anchor == pos {
		return true
	}
	travelX := int64(pos.X - anchor.X)
	travelY := int64(pos.Y - anchor.Y)
	headX := int64(dest.X - pos.X)
	headY := int64(dest.Y - pos.Y)
	return travelX*headX+travelY*headY >= 0
}

// Clone returns an independent copy for history inheritance across a plan
// handoff.
func (h *LocationHistory) Clone() LocationHistory {
	if len(h.entries) == 0 {
		return LocationHistory{}
	}
	out := make([]model.Coord, len(h.entries))
	copy(out, h.entries)
	return LocationHistory{entries: out}
}

// Reset clears the history.
func (h *LocationHistory) Reset() {
	h.entries = nil
}
