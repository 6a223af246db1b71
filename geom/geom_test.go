package geom

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestFloatEqual(t *testing.T) {
	t.Parallel()
	cases := []struct {
		a, b float64
		want bool
	}{
		{0, 0, true},
		{1, 1 + 1e-16, true},
		{0, 1, false},
		{1e20, 1e20 * (1 + 1e-16), true},
		{1, -1, false},
	}
	for _, c := range cases {
		if got := FloatEqual(c.a, c.b); got != c.want {
			t.Errorf("FloatEqual(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestFloatEqualSymmetricReflexive(t *testing.T) {
	t.Parallel()
	vals := []float64{0, 1, -1, 1e-20, 1e20, math.Pi}
	for _, a := range vals {
		if !FloatEqual(a, a) {
			t.Errorf("FloatEqual(%v, %v) should be reflexive", a, a)
		}
		for _, b := range vals {
			if FloatEqual(a, b) != FloatEqual(b, a) {
				t.Errorf("FloatEqual(%v, %v) not symmetric", a, b)
			}
		}
	}
}

func TestNewRotationAxisAligns(t *testing.T) {
	t.Parallel()
	cases := []r2.Vec{{X: 3, Y: 4}, {X: -1, Y: 2}, {X: 5, Y: 0}, {X: 0, Y: -7}}
	for _, c := range cases {
		r, ok := NewRotation(c.X, c.Y)
		if !ok {
			t.Fatalf("NewRotation(%v) unexpectedly degenerate", c)
		}
		got := r.Apply(c)
		h := math.Hypot(c.X, c.Y)
		if !FloatEqual(got.X, 0) || !FloatEqual(got.Y, h) {
			t.Errorf("rotating %v gave %v, want (0, %v)", c, got, h)
		}
	}
}

func TestNewRotationDegenerate(t *testing.T) {
	t.Parallel()
	if _, ok := NewRotation(0, 0); ok {
		t.Error("NewRotation(0, 0) should report degenerate")
	}
}

func TestRotationRoundTrip(t *testing.T) {
	t.Parallel()
	r, ok := NewRotation(2, -3)
	if !ok {
		t.Fatal("unexpected degenerate rotation")
	}
	v := r2.Vec{X: 11, Y: -5}
	rotated := r.Apply(v)
	back := r.T().Apply(rotated)
	if !FloatEqual(back.X, v.X) || !FloatEqual(back.Y, v.Y) {
		t.Errorf("R^T*R*v = %v, want %v", back, v)
	}
	backT := r.ApplyT(rotated)
	if !FloatEqual(backT.X, v.X) || !FloatEqual(backT.Y, v.Y) {
		t.Errorf("ApplyT round trip = %v, want %v", backT, v)
	}
}

func TestIntersect(t *testing.T) {
	t.Parallel()
	// x = 1 (G=(1,0), h=1) and y = 2 (G=(0,1), h=2) meet at (1,2).
	a := Line{G: r2.Vec{X: 1, Y: 0}, H: 1}
	b := Line{G: r2.Vec{X: 0, Y: 1}, H: 2}
	p, ok := Intersect(a, b)
	if !ok {
		t.Fatal("expected intersection")
	}
	if !FloatEqual(p.X, 1) || !FloatEqual(p.Y, 2) {
		t.Errorf("Intersect = %v, want (1, 2)", p)
	}
}

func TestIntersectParallel(t *testing.T) {
	t.Parallel()
	a := Line{G: r2.Vec{X: 1, Y: 1}, H: 1}
	b := Line{G: r2.Vec{X: 2, Y: 2}, H: 4}
	if _, ok := Intersect(a, b); ok {
		t.Error("expected parallel lines to report no intersection")
	}
}
