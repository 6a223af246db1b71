package lp2d

import (
	"github.com/astoeckel/linprog2d/geom"
	"gonum.org/v1/gonum/spatial/r2"
)

// condition rewrites the caller's problem into s: it rotates every
// constraint so the objective axis-aligns to +y, normalizes each
// constraint to unit-max form, drops trivially-true constraints, and
// translates the system to minimize the squared residual of the
// right-hand side (so the zero vector is a least-squares solution of
// G*o = h, which keeps the subsequent arithmetic well centered).
//
// It returns false if a trivially-false constraint (0 >= positive) is
// detected, i.e. the problem is immediately infeasible; true otherwise.
// condition does not itself detect a degenerate objective; the caller
// must build a valid geom.Rotation first.
func (s *State) condition(rot geom.Rotation, gx, gy, h []float64, n int) (ok bool) {
	s.rot = rot

	var a11, a12, a22 float64
	var gth r2.Vec

	m := 0
	for i := 0; i < n; i++ {
		v := rot.Apply(r2.Vec{X: gx[i], Y: gy[i]})
		hh := h[i]

		if geom.FloatEqual(v.X, 0) && geom.FloatEqual(v.Y, 0) {
			if hh <= 0 {
				continue // trivially true: 0 >= h with h <= 0
			}
			return false // trivially false: 0 >= h with h > 0
		}

		scale := maxAbs(v.X, v.Y)
		v.X /= scale
		v.Y /= scale
		hh /= scale

		s.gx[m] = v.X
		s.gy[m] = v.Y
		s.h[m] = hh
		m++

		a11 += v.X * v.X
		a12 += v.X * v.Y
		a22 += v.Y * v.Y
		gth.X += v.X * hh
		gth.Y += v.Y * hh
	}
	s.n = m

	det := a11*a22 - a12*a12
	var o r2.Vec
	if !geom.FloatEqual(det, 0) {
		o = r2.Vec{
			X: (a22*gth.X - a12*gth.Y) / det,
			Y: (a11*gth.Y - a12*gth.X) / det,
		}
	}
	s.o = o

	for i := 0; i < m; i++ {
		s.h[i] -= s.gx[i]*o.X + s.gy[i]*o.Y
	}

	return true
}

func maxAbs(a, b float64) float64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	if a > b {
		return a
	}
	return b
}
