// Package oracle is a second, independent way to answer the questions
// lp2d.Solve answers, built for the lp2d test suite to check its results
// against rather than for speed. It enumerates every candidate vertex of
// the feasible region (pairwise constraint-line intersections) and every
// candidate unbounded ray (pairwise constraint directions), instead of
// Megiddo's prune-and-search, so a bug shared between the two solve paths
// is unlikely.
//
// This package is internal: it exists to cross-check lp2d, not to be a
// second public solver. It is cubic in the constraint count, which is
// fine for tests but not a reasonable production LP algorithm.
package oracle

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Status mirrors lp2d.Status without importing the parent package (which
// imports this one for its tests).
type Status int

const (
	StatusInfeasible Status = iota
	StatusUnbounded
	StatusPoint
)

// Result is the oracle's verdict. For StatusPoint, X/Y is a minimizer; it
// need not be the only one.
type Result struct {
	Status Status
	X, Y   float64
}

const tol = 1e-7

// Solve minimizes c_x*x + c_y*y subject to G_x[i]*x + G_y[i]*y >= h[i] for
// i in [0, n) by brute-force vertex enumeration. It assumes (c_x, c_y) is
// not the zero vector.
func Solve(cx, cy float64, gx, gy, h []float64, n int) Result {
	verts := vertices(gx, gy, h, n)
	if len(verts) == 0 && !feasibleAnyRay(gx, gy, h, n) {
		return Result{Status: StatusInfeasible}
	}

	if _, ok := descentRay(cx, cy, gx, gy, h, n, verts); ok {
		return Result{Status: StatusUnbounded}
	}

	if len(verts) == 0 {
		// Feasible, no descent ray, yet no vertex: every constraint line
		// is parallel, the region is an unbounded strip or half-plane,
		// and the objective is constant along those lines. Rare for
		// randomly generated test inputs; reported as unbounded since no
		// single optimum exists.
		return Result{Status: StatusUnbounded}
	}

	best := verts[0]
	bestVal := cx*best[0] + cy*best[1]
	for _, v := range verts[1:] {
		val := cx*v[0] + cy*v[1]
		if val < bestVal-tol {
			bestVal = val
			best = v
		}
	}
	return Result{Status: StatusPoint, X: best[0], Y: best[1]}
}

// Feasible reports whether any (x, y) satisfies every constraint.
func Feasible(gx, gy, h []float64, n int) bool {
	if len(vertices(gx, gy, h, n)) > 0 {
		return true
	}
	return feasibleAnyRay(gx, gy, h, n)
}

// vertices returns every pairwise intersection of the n constraint lines
// that satisfies all n constraints (within tol), deduplicated.
func vertices(gx, gy, h []float64, n int) [][2]float64 {
	var out [][2]float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			p, ok := intersect(gx[i], gy[i], h[i], gx[j], gy[j], h[j])
			if !ok {
				continue
			}
			if !satisfiesAll(p, gx, gy, h, n) {
				continue
			}
			out = appendUnique(out, p)
		}
	}
	return out
}

func intersect(a1, a2, ah, b1, b2, bh float64) ([2]float64, bool) {
	d := a1*b2 - b1*a2
	if math.Abs(d) < 1e-12 {
		return [2]float64{}, false
	}
	A := mat.NewDense(2, 2, []float64{a1, a2, b1, b2})
	bb := mat.NewVecDense(2, []float64{ah, bh})
	var x mat.VecDense
	if err := x.SolveVec(A, bb); err != nil {
		return [2]float64{}, false
	}
	return [2]float64{x.AtVec(0), x.AtVec(1)}, true
}

func satisfiesAll(p [2]float64, gx, gy, h []float64, n int) bool {
	for i := 0; i < n; i++ {
		if gx[i]*p[0]+gy[i]*p[1] < h[i]-tol {
			return false
		}
	}
	return true
}

func appendUnique(vs [][2]float64, p [2]float64) [][2]float64 {
	for _, v := range vs {
		if floats.EqualWithinAbsOrRel(v[0], p[0], tol, tol) &&
			floats.EqualWithinAbsOrRel(v[1], p[1], tol, tol) {
			return vs
		}
	}
	return append(vs, p)
}

// feasibleAnyRay reports whether the feasible region is non-empty by
// walking along every constraint's boundary line far enough to see if it
// stays feasible; used only to tell "empty" from "unbounded with no
// vertex" (e.g. a single constraint, or two parallel ones).
func feasibleAnyRay(gx, gy, h []float64, n int) bool {
	if n == 0 {
		return true
	}
	for i := 0; i < n; i++ {
		// A point on constraint i's boundary line, offset along that
		// line, probed at increasing distance both ways.
		dirx, diry := -gy[i], gx[i]
		base := basePoint(gx[i], gy[i], h[i])
		for _, dist := range []float64{0, 1, 1e3, 1e6, -1, -1e3, -1e6} {
			p := [2]float64{base[0] + dirx*dist, base[1] + diry*dist}
			if satisfiesAll(p, gx, gy, h, n) {
				return true
			}
		}
	}
	return false
}

func basePoint(gx, gy, h float64) [2]float64 {
	n2 := gx*gx + gy*gy
	if n2 == 0 {
		return [2]float64{}
	}
	return [2]float64{gx * h / n2, gy * h / n2}
}

// descentRay reports whether there is a feasible direction along which
// c_x*x + c_y*y decreases without bound: a direction (dx, dy) with
// c.(dx,dy) < 0 that satisfies G_x[i]*dx + G_y[i]*dy >= 0 for every i (so
// moving that way from any feasible point never leaves the feasible
// region), checked against every constraint's own perpendicular and every
// pair of constraint directions as candidate generators of the feasible
// cone.
func descentRay(cx, cy float64, gx, gy, h []float64, n int, verts [][2]float64) ([2]float64, bool) {
	if n == 0 {
		return [2]float64{}, cx != 0 || cy != 0
	}
	candidates := make([][2]float64, 0, n*n)
	for i := 0; i < n; i++ {
		candidates = append(candidates, [2]float64{gx[i], gy[i]}, [2]float64{-gy[i], gx[i]}, [2]float64{gy[i], -gx[i]})
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			d := gx[i]*gy[j] - gx[j]*gy[i]
			if math.Abs(d) < 1e-12 {
				continue
			}
			// Direction sliding along constraint i's boundary and into
			// constraint j's half-plane: solve G_i . d = 0, G_j . d = t
			// for t=1.
			A := mat.NewDense(2, 2, []float64{gx[i], gy[i], gx[j], gy[j]})
			bb := mat.NewVecDense(2, []float64{0, 1})
			var x mat.VecDense
			if err := x.SolveVec(A, bb); err == nil {
				candidates = append(candidates, [2]float64{x.AtVec(0), x.AtVec(1)})
			}
		}
	}

	var probe [2]float64
	if len(verts) > 0 {
		probe = verts[0]
	} else {
		for i := 0; i < n; i++ {
			p := basePoint(gx[i], gy[i], h[i])
			if satisfiesAll(p, gx, gy, h, n) {
				probe = p
				break
			}
		}
	}

	for _, d := range candidates {
		if cx*d[0]+cy*d[1] >= -tol {
			continue
		}
		ok := true
		for i := 0; i < n; i++ {
			if gx[i]*d[0]+gy[i]*d[1] < -tol {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		far := [2]float64{probe[0] + d[0]*1e6, probe[1] + d[1]*1e6}
		if satisfiesAll(far, gx, gy, h, n) {
			return d, true
		}
	}
	return [2]float64{}, false
}
