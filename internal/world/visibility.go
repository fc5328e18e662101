package world

import (
	"github.com/dgrange/crawlmind/internal/geo"
	"github.com/dgrange/crawlmind/internal/model"
)

// LineOfSight traces a Bresenham line between two tiles and reports whether
// any tile strictly between them blocks sight. The endpoints themselves do
// not block; concealment of the far endpoint is CoordVisible's concern.
func (w *World) LineOfSight(from, to model.Coord) bool {
	it := geo.NewLineIterator(from, to)
	it.Next() // skip the start tile

	for it.Next() {
		c := it.At()
		if c == to {
			break
		}
		if w.Tile(c).BlocksSight() {
			return false
		}
	}
	return true
}

// CoordVisible reports whether the viewer can see a tile: inside the sight
// radius with a clear line to it. A sight-blocking destination tile (cover)
// is only visible from an adjacent tile.
func (w *World) CoordVisible(viewer *model.Actor, c model.Coord) bool {
	return w.CoordVisibleWithin(viewer, c, viewer.SightRange())
}

// CoordVisibleWithin is CoordVisible with an explicit radius, for plans
// that widen or narrow the actor's sensing range.
func (w *World) CoordVisibleWithin(viewer *model.Actor, c model.Coord, radius int32) bool {
	from := viewer.Position()
	if from.Chebyshev(c) > radius {
		return false
	}
	if w.Tile(c).BlocksSight() && from.Chebyshev(c) > 1 {
		return false
	}
	return w.LineOfSight(from, c)
}

// Visible reports whether the viewer can see another actor.
func (w *World) Visible(viewer, target *model.Actor) bool {
	return w.CoordVisible(viewer, target.Position())
}

// Sensed reports whether the target falls inside an omniscient sense radius
// around the viewer, ignoring line of sight and concealment. Used by
// ambush-type plans with a sense-in-the-dark radius.
func (w *World) Sensed(viewer, target *model.Actor, radius int32) bool {
	return viewer.Position().Chebyshev(target.Position()) <= radius
}
