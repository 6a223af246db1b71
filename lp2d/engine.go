package lp2d

import (
	"github.com/astoeckel/linprog2d/geom"
	"github.com/astoeckel/linprog2d/selectk"
	"gonum.org/v1/gonum/spatial/r2"
)

// run executes the prune-and-search main loop until either an immediate
// verdict is reached or at most one ceiling and one floor constraint
// remain, at which point it hands off to the end-of-loop finalizer.
func (s *State) run() Result {
	for s.loopShouldContinue() {
		s.xIntLen = 0
		s.ceilLen = s.pruneList(s.ceilIdx[:s.ceilLen], true)
		s.floorLen = s.pruneList(s.floorIdx[:s.floorLen], false)

		if s.xIntLen == 0 {
			// Some constraints were eliminated without producing a
			// candidate intersection; the next round will find new pairs.
			continue
		}

		x := selectk.Median(s.xInt[:s.xIntLen])
		v, y := s.locate(x)
		switch v {
		case locInfeasible:
			return resultInfeasible
		case locLeft:
			if x < s.x1 {
				s.x1 = x
			}
			s.optimumIsLeft, s.hasMedian, s.medianX = true, true, x
		case locRight:
			if x > s.x0 {
				s.x0 = x
			}
			s.optimumIsLeft, s.hasMedian, s.medianX = false, true, x
		case locHere:
			return s.finalizePoint(x, y)
		case locHereEdge:
			return s.finalizeEdge()
		}
	}
	return s.finalizeEndOfLoop()
}

func (s *State) loopShouldContinue() bool {
	if s.floorLen < 1 {
		return false
	}
	if s.floorLen <= 1 && s.ceilLen <= 1 {
		return false
	}
	return s.x0 < s.x1 || geom.FloatEqual(s.x0, s.x1)
}

// pruneList rewrites idcs (a view into s.ceilIdx or s.floorIdx) in place,
// pairing up its entries, discarding the member of each pair that cannot
// be binding for the optimum, and recording the x-coordinate of every pair
// whose usefulness is still undetermined into s.xInt. It returns the new
// length of idcs.
func (s *State) pruneList(idcs []int, isCeil bool) int {
	length := len(idcs)
	tmp := s.tmp[:length]
	pairTail := 0
	singleTail := length - 1

	numPairs := length / 2
	for k := 0; k < numPairs; k++ {
		i1, i2 := idcs[2*k], idcs[2*k+1]
		l1 := geom.Line{G: r2.Vec{X: s.gx[i1], Y: s.gy[i1]}, H: s.h[i1]}
		l2 := geom.Line{G: r2.Vec{X: s.gx[i2], Y: s.gy[i2]}, H: s.h[i2]}

		p, ok := geom.Intersect(l1, l2)
		if !ok {
			surv := i1
			if s.h[i2] > s.h[i1] {
				surv = i2
			}
			tmp[singleTail] = surv
			singleTail--
			continue
		}

		x := p.X
		leftOfKnown := x < s.x0 || (s.hasMedian && geom.FloatEqual(x, s.medianX) && !s.optimumIsLeft)
		rightOfKnown := x > s.x1 || (s.hasMedian && geom.FloatEqual(x, s.medianX) && s.optimumIsLeft)

		switch {
		case leftOfKnown, rightOfKnown:
			tmp[singleTail] = s.survivor(i1, i2, isCeil)
			singleTail--
		default:
			s.xInt[s.xIntLen] = x
			s.xIntLen++
			tmp[pairTail] = i1
			pairTail++
			tmp[pairTail] = i2
			pairTail++
		}
	}
	if length%2 == 1 {
		tmp[singleTail] = idcs[length-1]
		singleTail--
	}

	n := 0
	for i := 0; i < pairTail; i++ {
		idcs[n] = tmp[i]
		n++
	}
	for i := length - 1; i > singleTail; i-- {
		idcs[n] = tmp[i]
		n++
	}
	return n
}

// survivor picks which of a parallel-free pair (i1, i2) to keep once their
// intersection has been judged irrelevant to the surviving search
// interval: the one whose half-plane dominates in the direction implied by
// which side the optimum is known to lie on and which envelope (ceil or
// floor) the pair belongs to.
func (s *State) survivor(i1, i2 int, isCeil bool) int {
	dir := -1.0
	if s.optimumIsLeft {
		dir = 1.0
	}
	if !isCeil {
		dir = -dir
	}
	if dir*s.dx[i1] >= dir*s.dx[i2] {
		return i1
	}
	return i2
}
