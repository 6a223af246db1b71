// Package geom provides the small set of geometric primitives the lp2d
// prune-and-search engine builds on: an objective-aligning rotation, line
// intersection, and the approximate-equality predicate used throughout for
// zero testing on floats.
package geom

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// absTol is the absolute tolerance below which two floats are
	// considered equal regardless of magnitude.
	absTol = 1e-30
	// relTol scales with the larger operand's magnitude.
	relTol = 1e-15
)

// FloatEqual reports whether a and b are equal up to the solver's standing
// tolerance: |a-b| < absTol, or |a-b| < relTol*max(|a|,|b|). Every zero test
// on a float anywhere in lp2d goes through this predicate; it must not be
// replaced by bitwise equality, since the prune-and-search loop relies on it
// to treat near-degenerate geometry as exact.
func FloatEqual(a, b float64) bool {
	d := math.Abs(a - b)
	if d < absTol {
		return true
	}
	m := math.Max(math.Abs(a), math.Abs(b))
	return d < relTol*m
}

// Rotation is a 2x2 rotation matrix, represented the same way
// optimize/convex/lp represents its basis submatrices: as a *mat.Dense.
type Rotation struct {
	m *mat.Dense
}

// NewRotation builds the rotation R such that R*(x,y) = (0, H) where
// H = hypot(x, y). This is the rotation the conditioner uses to axis-align
// the LP's objective gradient to +y. ok is false when (x, y) is the zero
// vector, in which case the gradient is degenerate and R is unusable.
func NewRotation(x, y float64) (r Rotation, ok bool) {
	h := math.Hypot(x, y)
	if h == 0 {
		return Rotation{}, false
	}
	data := []float64{
		y / h, -x / h,
		x / h, y / h,
	}
	return Rotation{m: mat.NewDense(2, 2, data)}, true
}

// Identity returns the rotation that leaves every vector unchanged.
func Identity() Rotation {
	return Rotation{m: mat.NewDense(2, 2, []float64{1, 0, 0, 1})}
}

// Apply returns R*v.
func (r Rotation) Apply(v r2.Vec) r2.Vec {
	return r2.Vec{
		X: r.m.At(0, 0)*v.X + r.m.At(0, 1)*v.Y,
		Y: r.m.At(1, 0)*v.X + r.m.At(1, 1)*v.Y,
	}
}

// T returns the transpose of R, the rotation that undoes R.
func (r Rotation) T() Rotation {
	return Rotation{m: mat.DenseCopyOf(r.m.T())}
}

// ApplyT returns R^T*v, i.e. r.T().Apply(v) without allocating the
// transposed matrix.
func (r Rotation) ApplyT(v r2.Vec) r2.Vec {
	return r2.Vec{
		X: r.m.At(0, 0)*v.X + r.m.At(1, 0)*v.Y,
		Y: r.m.At(0, 1)*v.X + r.m.At(1, 1)*v.Y,
	}
}

// Line is an oriented line written in half-plane form Gx*x + Gy*y = h.
type Line struct {
	G r2.Vec
	H float64
}

// Intersect solves the 2x2 linear system formed by a and b and returns their
// intersection point. ok is false when the denominator
// d = a.G.X*b.G.Y - b.G.X*a.G.Y is (approximately) zero, i.e. the lines are
// parallel or coincident.
func Intersect(a, b Line) (p r2.Vec, ok bool) {
	d := a.G.X*b.G.Y - b.G.X*a.G.Y
	if FloatEqual(d, 0) {
		return r2.Vec{}, false
	}
	return r2.Vec{
		X: (a.H*b.G.Y - b.H*a.G.Y) / d,
		Y: (b.H*a.G.X - a.H*b.G.X) / d,
	}, true
}
