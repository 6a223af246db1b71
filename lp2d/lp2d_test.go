package lp2d

import (
	"testing"

	"github.com/astoeckel/linprog2d/lp2d/internal/oracle"
	"golang.org/x/exp/rand"
)

const eps = 1e-6

func approxEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < eps
}

type scenario struct {
	name       string
	cx, cy     float64
	gx, gy, h  []float64
	wantStatus Status
	x1, y1     float64
	x2, y2     float64
}

var scenarios = []scenario{
	{
		name: "Barnfm10e",
		cx:   -5, cy: -10,
		gx: []float64{1, 0, -1, -8, -4},
		gy: []float64{0, 1, 0, -8, -12},
		h:  []float64{0, 0, -15, -160, -180},
		wantStatus: StatusPoint,
		x1: 7.5, y1: 12.5,
	},
	{
		name: "NR book",
		cx:   -40, cy: -60,
		gx: []float64{-2, 1, -1},
		gy: []float64{-1, 1, -3},
		h:  []float64{-70, 40, -90},
		wantStatus: StatusPoint,
		x1: 24, y1: 22,
	},
	{
		name: "V-vertex",
		cx:   0, cy: 1,
		gx: []float64{1, -1},
		gy: []float64{1, 1},
		h:  []float64{0, 0},
		wantStatus: StatusPoint,
		x1: 0, y1: 0,
	},
	{
		name: "Horizontal edge",
		cx:   0, cy: 1,
		gx: []float64{0, 1, -1},
		gy: []float64{1, 0, 0},
		h:  []float64{1, -2, -3},
		wantStatus: StatusEdge,
		x1: -2, y1: 1, x2: 3, y2: 1,
	},
	{
		name: "Vertical-strip infeasible",
		cx:   0, cy: 1,
		gx: []float64{0, 0, 1, -1},
		gy: []float64{1, -1, 0, 0},
		h:  []float64{1, -3, 5, 5},
		wantStatus: StatusInfeasible,
	},
	{
		name: "Single horizontal floor",
		cx:   0, cy: 1,
		gx: []float64{0},
		gy: []float64{1},
		h:  []float64{1},
		wantStatus: StatusUnbounded,
	},
	{
		name:       "Degenerate objective",
		cx:         0, cy: 0,
		gx:         []float64{1},
		gy:         []float64{0},
		h:          []float64{0},
		wantStatus: StatusError,
	},
}

func TestScenarios(t *testing.T) {
	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			res, err := SolveSimple(sc.cx, sc.cy, sc.gx, sc.gy, sc.h, len(sc.gx))
			if sc.wantStatus == StatusError {
				if err == nil || res.Status != StatusError {
					t.Fatalf("got (%+v, %v), want StatusError", res, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != sc.wantStatus {
				t.Fatalf("status = %v, want %v (result %+v)", res.Status, sc.wantStatus, res)
			}
			switch sc.wantStatus {
			case StatusPoint:
				if !approxEqual(res.X1, sc.x1) || !approxEqual(res.Y1, sc.y1) {
					t.Errorf("got (%v, %v), want (%v, %v)", res.X1, res.Y1, sc.x1, sc.y1)
				}
			case StatusEdge:
				matches := (approxEqual(res.X1, sc.x1) && approxEqual(res.Y1, sc.y1) &&
					approxEqual(res.X2, sc.x2) && approxEqual(res.Y2, sc.y2)) ||
					(approxEqual(res.X1, sc.x2) && approxEqual(res.Y1, sc.y2) &&
						approxEqual(res.X2, sc.x1) && approxEqual(res.Y2, sc.y1))
				if !matches {
					t.Errorf("got edge (%v,%v)-(%v,%v), want (%v,%v)-(%v,%v)",
						res.X1, res.Y1, res.X2, res.Y2, sc.x1, sc.y1, sc.x2, sc.y2)
				}
			}
		})
	}
}

// feasible reports whether p satisfies every constraint within tolerance.
func feasible(x, y float64, gx, gy, h []float64) bool {
	for i := range gx {
		if gx[i]*x+gy[i]*y < h[i]-1e-6 {
			return false
		}
	}
	return true
}

func TestScenarioConstraintsSatisfied(t *testing.T) {
	for _, sc := range scenarios {
		if sc.wantStatus != StatusPoint && sc.wantStatus != StatusEdge {
			continue
		}
		t.Run(sc.name, func(t *testing.T) {
			res, err := SolveSimple(sc.cx, sc.cy, sc.gx, sc.gy, sc.h, len(sc.gx))
			if err != nil {
				t.Fatal(err)
			}
			if !feasible(res.X1, res.Y1, sc.gx, sc.gy, sc.h) {
				t.Errorf("(%v, %v) violates a constraint", res.X1, res.Y1)
			}
			if res.Status == StatusEdge && !feasible(res.X2, res.Y2, sc.gx, sc.gy, sc.h) {
				t.Errorf("(%v, %v) violates a constraint", res.X2, res.Y2)
			}
		})
	}
}

// TestCrossCheckAgainstOracle generates random small LPs and checks that
// lp2d and the brute-force oracle agree on feasibility, and on the
// objective value whenever both report a bounded optimum.
func TestCrossCheckAgainstOracle(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	const trials = 300
	for trial := 0; trial < trials; trial++ {
		n := 2 + rnd.Intn(5)
		gx := make([]float64, n)
		gy := make([]float64, n)
		h := make([]float64, n)
		for i := 0; i < n; i++ {
			gx[i] = rnd.Float64()*4 - 2
			gy[i] = rnd.Float64()*4 - 2
			h[i] = rnd.Float64()*4 - 2
		}
		cx := rnd.Float64()*2 - 1
		cy := rnd.Float64()*2 - 1
		if cx == 0 && cy == 0 {
			cy = 1
		}

		got, err := SolveSimple(cx, cy, gx, gy, h, n)
		if err != nil {
			t.Fatalf("trial %d: unexpected error %v", trial, err)
		}
		want := oracle.Solve(cx, cy, gx, gy, h, n)

		switch got.Status {
		case StatusInfeasible:
			if want.Status != oracle.StatusInfeasible {
				t.Errorf("trial %d: lp2d said Infeasible, oracle said %v", trial, want.Status)
			}
		case StatusUnbounded:
			if want.Status != oracle.StatusUnbounded {
				t.Errorf("trial %d: lp2d said Unbounded, oracle said %v", trial, want.Status)
			}
		case StatusPoint:
			if want.Status != oracle.StatusPoint {
				t.Errorf("trial %d: lp2d said Point, oracle said %v", trial, want.Status)
				continue
			}
			gotVal := cx*got.X1 + cy*got.Y1
			wantVal := cx*want.X + cy*want.Y
			if gotVal > wantVal+1e-3 {
				t.Errorf("trial %d: lp2d value %v worse than oracle's %v", trial, gotVal, wantVal)
			}
			if !feasible(got.X1, got.Y1, gx, gy, h) {
				t.Errorf("trial %d: lp2d point (%v,%v) infeasible", trial, got.X1, got.Y1)
			}
		case StatusEdge:
			if want.Status != oracle.StatusPoint {
				t.Errorf("trial %d: lp2d said Edge, oracle said %v", trial, want.Status)
				continue
			}
			if !feasible(got.X1, got.Y1, gx, gy, h) || !feasible(got.X2, got.Y2, gx, gy, h) {
				t.Errorf("trial %d: lp2d edge endpoint infeasible", trial)
			}
			gotVal := cx*got.X1 + cy*got.Y1
			wantVal := cx*want.X + cy*want.Y
			if gotVal > wantVal+1e-3 {
				t.Errorf("trial %d: lp2d edge value %v worse than oracle's %v", trial, gotVal, wantVal)
			}
		}
	}
}

func TestSolveRejectsOversizedN(t *testing.T) {
	s := NewState(2)
	_, err := s.Solve(1, 1, []float64{1, 1, 1}, []float64{0, 0, 0}, []float64{0, 0, 0}, 3)
	if err != ErrCapacity {
		t.Fatalf("err = %v, want ErrCapacity", err)
	}
}

func TestSolveRejectsNilState(t *testing.T) {
	var s *State
	_, err := s.Solve(1, 1, nil, nil, nil, 0)
	if err != ErrNilState {
		t.Fatalf("err = %v, want ErrNilState", err)
	}
}

func TestStateReuseAcrossProblems(t *testing.T) {
	s := NewState(5)
	for _, sc := range scenarios {
		if sc.wantStatus == StatusError {
			continue
		}
		res, err := s.Solve(sc.cx, sc.cy, sc.gx, sc.gy, sc.h, len(sc.gx))
		if err != nil {
			t.Fatalf("%s: unexpected error %v", sc.name, err)
		}
		if res.Status != sc.wantStatus {
			t.Fatalf("%s: status = %v, want %v", sc.name, res.Status, sc.wantStatus)
		}
	}
}

func TestNewStateInTooSmall(t *testing.T) {
	_, err := NewStateIn(10, make([]byte, 1))
	if err != ErrStorageUnavailable {
		t.Fatalf("err = %v, want ErrStorageUnavailable", err)
	}
}

func TestNewStateInMatchesNewState(t *testing.T) {
	capacity := 5
	storage := make([]byte, MemSize(capacity))
	s, err := NewStateIn(capacity, storage)
	if err != nil {
		t.Fatal(err)
	}
	sc := scenarios[0]
	res, err := s.Solve(sc.cx, sc.cy, sc.gx, sc.gy, sc.h, len(sc.gx))
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != StatusPoint || !approxEqual(res.X1, sc.x1) || !approxEqual(res.Y1, sc.y1) {
		t.Errorf("got %+v, want point (%v, %v)", res, sc.x1, sc.y1)
	}
}
