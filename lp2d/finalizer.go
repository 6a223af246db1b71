package lp2d

import (
	"math"

	"github.com/astoeckel/linprog2d/geom"
	"gonum.org/v1/gonum/spatial/r2"
)

// backTransform maps a point from the conditioner's rotated, translated
// coordinate system back to the caller's original coordinates: add back
// the translation, then undo the rotation.
func (s *State) backTransform(p r2.Vec) r2.Vec {
	return s.rot.ApplyT(p.Add(s.o))
}

func (s *State) finalizePoint(x, y float64) Result {
	p := s.backTransform(r2.Vec{X: x, Y: y})
	return point(p.X, p.Y)
}

func (s *State) finalizeEdgeResult(x0, y0, x1, y1 float64) Result {
	p := s.backTransform(r2.Vec{X: x0, Y: y0})
	q := s.backTransform(r2.Vec{X: x1, Y: y1})
	return edge(p.X, p.Y, q.X, q.Y)
}

// finalizeEdge handles the locHereEdge verdict: the floor envelope is flat
// at the current probe, so the optimum runs along that horizontal line.
// It finds the topmost horizontal floor constraint, tightens x0/x1 against
// every other surviving constraint's intersection with it, and emits a
// point (if the tightened interval collapses) or an edge.
func (s *State) finalizeEdge() Result {
	// locHereEdge guarantees the floor envelope is flat here, so a
	// horizontal floor constraint achieving the maximum is guaranteed to
	// exist.
	j := -1
	bestY := negInf
	for _, k := range s.floorIdx[:s.floorLen] {
		if geom.FloatEqual(s.dx[k], 0) && s.y0[k] > bestY {
			bestY = s.y0[k]
			j = k
		}
	}
	yj := s.y0[j]
	x0, x1 := s.x0, s.x1

	tighten := func(k int, isCeilK bool) {
		if k == j || geom.FloatEqual(s.dx[k], 0) {
			return
		}
		ix := (yj - s.y0[k]) / s.dx[k]
		switch {
		case isCeilK && s.dx[k] > 0:
			if ix > x0 {
				x0 = ix
			}
		case isCeilK && s.dx[k] < 0:
			if ix < x1 {
				x1 = ix
			}
		case !isCeilK && s.dx[k] > 0:
			if ix < x1 {
				x1 = ix
			}
		default: // !isCeilK && s.dx[k] < 0
			if ix > x0 {
				x0 = ix
			}
		}
	}
	for _, k := range s.ceilIdx[:s.ceilLen] {
		tighten(k, true)
	}
	for _, k := range s.floorIdx[:s.floorLen] {
		tighten(k, false)
	}

	if geom.FloatEqual(x0, x1) {
		return s.finalizePoint(x0, yj)
	}
	return s.finalizeEdgeResult(x0, yj, x1, yj)
}

// finalizeEndOfLoop handles the case where the prune-and-search loop
// exited because at most one ceiling and one floor constraint remain.
func (s *State) finalizeEndOfLoop() Result {
	if s.floorLen == 0 {
		return resultUnbounded
	}
	if0 := s.floorIdx[0]
	x0, x1 := s.x0, s.x1

	if s.ceilLen > 0 {
		ic0 := s.ceilIdx[0]
		lineFloor := geom.Line{G: r2.Vec{X: s.gx[if0], Y: s.gy[if0]}, H: s.h[if0]}
		lineCeil := geom.Line{G: r2.Vec{X: s.gx[ic0], Y: s.gy[ic0]}, H: s.h[ic0]}
		if p, ok := geom.Intersect(lineFloor, lineCeil); ok {
			if s.dx[if0] > s.dx[ic0] {
				if p.X < x1 {
					x1 = p.X
				}
			} else {
				if p.X > x0 {
					x0 = p.X
				}
			}
		} else if s.y0[if0] > s.y0[ic0] && !geom.FloatEqual(s.y0[if0], s.y0[ic0]) {
			return resultInfeasible
		}
	}

	ry0 := s.y0[if0] + x0*s.dx[if0]
	ry1 := s.y0[if0] + x1*s.dx[if0]

	switch {
	case geom.FloatEqual(s.dx[if0], 0):
		if isFinite(x0) && isFinite(x1) {
			return s.finalizeEdgeResult(x0, ry0, x1, ry1)
		}
		return resultUnbounded
	case s.dx[if0] > 0:
		if x0 > negInf {
			return s.finalizePoint(x0, ry0)
		}
		return resultUnbounded
	default: // s.dx[if0] < 0
		if x1 < posInf {
			return s.finalizePoint(x1, ry1)
		}
		return resultUnbounded
	}
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
