package lp2d

import "github.com/astoeckel/linprog2d/geom"

// verdict is the locator's classification of a probe x relative to the
// current ceiling/floor envelopes.
type verdict int

const (
	locInfeasible verdict = iota
	locLeft
	locRight
	locHere
	locHereEdge
)

// locate decides, for a probe x, whether the optimum lies to the left of
// x, to the right of x, exactly at x (a unique point, whose y is
// returned), along an edge through x, or that x proves infeasibility.
//
// locate requires at least one floor constraint to be present; the engine
// only calls it once that precondition holds (an empty floor list means
// the problem may be unbounded, which the finalizer handles separately).
func (s *State) locate(x float64) (v verdict, y float64) {
	ceil := trackExtremum(s.dx, s.y0, s.ceilIdx[:s.ceilLen], x, true)
	floor := trackExtremum(s.dx, s.y0, s.floorIdx[:s.floorLen], x, false)

	if ceil.valid && ceil.y < floor.y {
		switch {
		case floor.minDx > ceil.maxDx:
			return locLeft, 0
		case floor.maxDx < ceil.minDx:
			return locRight, 0
		default:
			return locInfeasible, 0
		}
	}

	// x is feasible against the ceiling envelope (or there is none).
	switch {
	case geom.FloatEqual(floor.minDx, 0) && !geom.FloatEqual(floor.maxDx, 0):
		return locLeft, 0
	case geom.FloatEqual(floor.maxDx, 0) && !geom.FloatEqual(floor.minDx, 0):
		return locRight, 0
	case geom.FloatEqual(floor.minDx, 0) && geom.FloatEqual(floor.maxDx, 0):
		return locHereEdge, 0
	case floor.minDx < 0 && floor.maxDx > 0:
		return locHere, floor.y
	case floor.minDx > 0:
		return locLeft, 0
	case floor.maxDx < 0:
		return locRight, 0
	}
	return locInfeasible, 0
}
