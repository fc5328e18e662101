package geo

import "github.com/dgrange/crawlmind/internal/model"

// BlockedFunc reports whether a tile cannot be entered. The caller decides
// whether occupants count, so the same search serves both evaluation passes.
type BlockedFunc func(c model.Coord) bool

// MaxSearchNodes bounds graph exploration per FindPaths call to cap CPU
// usage on open floors.
const MaxSearchNodes = 4096

// Path is the search result for one destination.
type Path struct {
	// Steps are the tiles to walk, in order, excluding the origin.
	Steps []model.Coord
	// Complete is false when the walk was cut short of the requested
	// destination and Steps lead to the nearest reachable tile instead.
	Complete bool
}

// Length returns the number of steps in the path.
func (p *Path) Length() int {
	if p == nil {
		return 0
	}
	return len(p.Steps)
}

// Destination returns the final tile of the path.
func (p *Path) Destination() (model.Coord, bool) {
	if p == nil || len(p.Steps) == 0 {
		return model.Coord{}, false
	}
	return p.Steps[len(p.Steps)-1], true
}

// FindPaths runs one shared breadth-first exploration from origin and
// returns one path per destination, aligned by index. A nil entry means no
// path at all. Destinations the flood never reaches get a partial path to
// the reachable tile nearest them, unless that tile is the origin itself.
//
// Step cost is uniform (a diagonal step spends the same turn as a cardinal
// one), so breadth-first order is cost order. Expansion follows the fixed
// model direction order, which makes tie-breaking deterministic.
func FindPaths(origin model.Coord, dests []model.Coord, blocked BlockedFunc, maxNodes int) []*Path {
	if maxNodes <= 0 {
		maxNodes = MaxSearchNodes
	}

	results := make([]*Path, len(dests))
	if len(dests) == 0 {
		return results
	}

	// Destinations still waiting for a complete path.
	pending := make(map[model.Coord][]int, len(dests))
	for i, d := range dests {
		pending[d] = append(pending[d], i)
	}

	parent := map[model.Coord]model.Coord{origin: origin}
	// visitOrder preserves discovery order for deterministic partial-path
	// selection.
	visitOrder := []model.Coord{origin}

	if idxs, ok := pending[origin]; ok {
		for _, i := range idxs {
			results[i] = &Path{Steps: nil, Complete: true}
		}
		delete(pending, origin)
	}

	queue := []model.Coord{origin}
	expanded := 0

	for len(queue) > 0 && len(pending) > 0 && expanded < maxNodes {
		cur := queue[0]
		queue = queue[1:]
		expanded++

		// Cardinal passability feeds the diagonal corner-cut rule.
		var cardinalOpen [model.NumDirections]bool

		for d := model.Direction(0); d < model.NumDirections; d++ {
			next := cur.Add(d)
			if blocked(next) {
				continue
			}
			if d.Diagonal() {
				if !cornerOpen(cur, d, cardinalOpen, blocked) {
					continue
				}
			} else {
				cardinalOpen[d] = true
			}

			if _, seen := parent[next]; seen {
				continue
			}
			parent[next] = cur
			visitOrder = append(visitOrder, next)
			queue = append(queue, next)

			if idxs, ok := pending[next]; ok {
				p := reconstruct(origin, next, parent)
				for _, i := range idxs {
					results[i] = &Path{Steps: p, Complete: true}
				}
				delete(pending, next)
			}
		}
	}

	// Unreached destinations: settle for the visited tile nearest each one.
	for dest, idxs := range pending {
		best, ok := nearestVisited(dest, visitOrder)
		if !ok || best == origin {
			continue // no partial progress possible
		}
		p := reconstruct(origin, best, parent)
		for _, i := range idxs {
			results[i] = &Path{Steps: p, Complete: false}
		}
	}

	return results
}

// cornerOpen checks the anti-corner-cut rule: a diagonal step requires both
// adjacent cardinal tiles to be passable.
func cornerOpen(cur model.Coord, d model.Direction, cardinalOpen [model.NumDirections]bool, blocked BlockedFunc) bool {
	dx, dy := d.Delta()
	horiz, _ := model.DirectionOf(dx, 0)
	vert, _ := model.DirectionOf(0, dy)
	// cardinalOpen is only filled for cardinals already expanded this
	// iteration; fall back to a direct check for the rest.
	if !cardinalOpen[horiz] && blocked(cur.Add(horiz)) {
		return false
	}
	if !cardinalOpen[vert] && blocked(cur.Add(vert)) {
		return false
	}
	return true
}

// reconstruct builds the step list from origin to goal out of parent links.
func reconstruct(origin, goal model.Coord, parent map[model.Coord]model.Coord) []model.Coord {
	var rev []model.Coord
	for c := goal; c != origin; c = parent[c] {
		rev = append(rev, c)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// nearestVisited returns the visited tile closest to dest; ties resolve to
// the earliest-discovered tile so repeated searches agree.
func nearestVisited(dest model.Coord, visitOrder []model.Coord) (model.Coord, bool) {
	if len(visitOrder) == 0 {
		return model.Coord{}, false
	}
	best := visitOrder[0]
	bestDist := dest.DistanceSquared(best)
	for _, c := range visitOrder[1:] {
		if d := dest.DistanceSquared(c); d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best, true
}
