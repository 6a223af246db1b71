package lp2d

import "github.com/astoeckel/linprog2d/geom"

// Solve runs one problem against s:
//
//	minimize    c_x*x + c_y*y
//	subject to  G_x[i]*x + G_y[i]*y >= h[i],  i = 0..n-1
//
// G_x, G_y, and h must each have length n, and n must not exceed
// s.Capacity(). s is fully reset and repopulated by each call, so the same
// State can be reused for any number of unrelated problems (but not
// concurrently; see the package doc).
func (s *State) Solve(cx, cy float64, gx, gy, h []float64, n int) (Result, error) {
	if s == nil {
		return resultError, ErrNilState
	}
	if n > s.capacity || n < 0 {
		return resultError, ErrCapacity
	}

	s.reset()

	rot, ok := geom.NewRotation(cx, cy)
	if !ok {
		return resultError, ErrDegenerateObjective
	}

	if !s.condition(rot, gx, gy, h, n) {
		return resultInfeasible, nil
	}
	if !s.categorize() {
		return resultInfeasible, nil
	}

	return s.run(), nil
}

// SolveSimple is a convenience wrapper around Solve: it acquires a State of
// exactly the capacity needed for this one problem, runs it, and lets the
// State be reclaimed by the garbage collector. Prefer Solve with a reused
// State when solving many problems, to avoid an allocation per call.
func SolveSimple(cx, cy float64, gx, gy, h []float64, n int) (Result, error) {
	if n < 0 {
		return resultError, ErrCapacity
	}
	s := NewState(n)
	return s.Solve(cx, cy, gx, gy, h, n)
}
