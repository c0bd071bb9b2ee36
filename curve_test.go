package epicycle

import (
	"math"
	"testing"
)

func TestSolveITP(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - x - 2.0 }
	x := SolveITP(f, 1.0, 2.0, 1e-12, 0, 0.2, f(1.0), f(2.0))
	if n := math.Abs(f(x)); n > 6e-12 {
		t.Errorf("%v > 6e-12", n)
	}
}

func TestSolveForArclen(t *testing.T) {
	c := CubicBez{
		Pt(0.0, 0.0),
		Pt(100.0/3.0, 0.0),
		Pt(200.0/3.0, 100.0/3.0),
		Pt(100.0, 100.0),
	}
	const target = 100.0
	ts := SolveITP(
		func(t float64) float64 { return c.Subsegment(0.0, t).Arclen(1e-9) - target },
		0.0,
		1.0,
		1e-6,
		1,
		0.2,
		-target,
		c.Arclen(1e-9)-target,
	)
	if d := math.Abs(ts - SolveForArclen(c, target, 1e-9)); d > 2e-6 {
		t.Errorf("SolveITP and SolveForArclen differ by %g", d)
	}
}

func TestSolveForArclenBounds(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(0, 0.5), Pt(1, 1)}
	if got := SolveForArclen(q, -1, 1e-9); got != 0 {
		t.Errorf("got %g for negative arc length, want 0", got)
	}
	if got := SolveForArclen(q, 10, 1e-9); got != 1 {
		t.Errorf("got %g past the end, want 1", got)
	}
}
