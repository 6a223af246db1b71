package lp2d

import "github.com/astoeckel/linprog2d/geom"

// categorize partitions s's conditioned constraints (s.gx/gy/h, length
// s.n) into vertical bounds on x0/x1 and the ceil/floor index lists, then
// precomputes the slope/intercept (dx, y0) of every ceiling and floor
// constraint's line.
//
// It returns false if the vertical bounds alone already prove the problem
// infeasible (x0 > x1).
func (s *State) categorize() (ok bool) {
	s.x0 = negInf
	s.x1 = posInf
	s.ceilLen = 0
	s.floorLen = 0

	for i := 0; i < s.n; i++ {
		gx, gy, h := s.gx[i], s.gy[i], s.h[i]
		switch {
		case geom.FloatEqual(gy, 0) && gx > 0:
			if b := h / gx; b > s.x0 {
				s.x0 = b
			}
		case geom.FloatEqual(gy, 0) && gx < 0:
			if b := h / gx; b < s.x1 {
				s.x1 = b
			}
		case gy < 0:
			s.ceilIdx[s.ceilLen] = i
			s.ceilLen++
		case gy > 0:
			s.floorIdx[s.floorLen] = i
			s.floorLen++
		}
	}

	for _, j := range s.ceilIdx[:s.ceilLen] {
		s.dx[j] = -s.gx[j] / s.gy[j]
		s.y0[j] = s.h[j] / s.gy[j]
	}
	for _, j := range s.floorIdx[:s.floorLen] {
		s.dx[j] = -s.gx[j] / s.gy[j]
		s.y0[j] = s.h[j] / s.gy[j]
	}

	if s.x0 > s.x1 && !geom.FloatEqual(s.x0, s.x1) {
		return false
	}
	return true
}
