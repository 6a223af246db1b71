package lp2d

import "github.com/astoeckel/linprog2d/geom"

// extremum is the output of scanning one envelope (ceil or floor) at a
// probe x: the envelope's value there, and the range of slopes among the
// lines that (approximately) achieve it.
type extremum struct {
	y            float64
	minDx, maxDx float64
	valid        bool
}

// trackExtremum scans the lines indexed by idcs (y = y0[j] + dx[j]*x) and
// returns the minimum (findMin) or maximum (!findMin) value at x, along
// with the min/max slope among the lines (approximately) tied for that
// extreme value. This is the shared machinery behind the locator's
// ceiling-minimum and floor-maximum envelope scans.
func trackExtremum(dx, y0 []float64, idcs []int, x float64, findMin bool) extremum {
	best := posInf
	if !findMin {
		best = negInf
	}
	minDx, maxDx := posInf, negInf

	for _, j := range idcs {
		y := y0[j] + dx[j]*x
		switch {
		case geom.FloatEqual(y, best):
			if dx[j] < minDx {
				minDx = dx[j]
			}
			if dx[j] > maxDx {
				maxDx = dx[j]
			}
		case findMin && y < best, !findMin && y > best:
			best = y
			minDx = dx[j]
			maxDx = dx[j]
		}
	}

	return extremum{y: best, minDx: minDx, maxDx: maxDx, valid: len(idcs) > 0}
}
