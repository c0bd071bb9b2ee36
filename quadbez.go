package epicycle

import (
	"math"
)

var _ ParametricCurve = QuadBez{}

type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// Raise raises the order by 1.
//
// It returns a cubic Bézier segment that exactly represents this quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Translate(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Translate(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

func (q QuadBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}

// Arclen returns the arclength of the quadratic Bézier segment.
//
// This computation is based on an analytical formula. Since that formula suffers
// from numerical instability when the curve is very close to a straight line, we
// detect that case and fall back to Legendre-Gauss quadrature.
//
// Overall accuracy should be better than 1e-13 over the entire range.
func (q QuadBez) Arclen(accuracy float64) float64 {
	d2 := Vec2(q.P0).Sub(Vec2(q.P1).Mul(2)).Add(Vec2(q.P2))
	a := d2.Hypot2()
	d1 := q.P1.Sub(q.P0)
	c := d1.Hypot2()
	if a < 5e-4*c {
		// This case happens for nearly straight Béziers.
		//
		// Calculate arclength using Legendre-Gauss quadrature using formula from Behdad
		// in https://github.com/Pomax/BezierInfo-2/issues/77
		v0 := Vec2(q.P0).Mul(-0.492943519233745).
			Add(Vec2(q.P1).Mul(0.430331482911935)).
			Add(Vec2(q.P2).Mul(0.0626120363218102)).
			Hypot()
		v1 := q.P2.Sub(q.P0).Mul(0.4444444444444444).Hypot()
		v2 := Vec2(q.P0).Mul(-0.0626120363218102).
			Sub(Vec2(q.P1).Mul(0.430331482911935)).
			Add(Vec2(q.P2).Mul(0.492943519233745)).
			Hypot()
		return v0 + v1 + v2
	}
	b := 2.0 * d2.Dot(d1)

	sabc := math.Sqrt(a + b + c)
	a2 := math.Pow(a, -0.5)
	a32 := a2 * a2 * a2
	c2 := 2.0 * math.Sqrt(c)
	baC2 := b*a2 + c2

	v0 := 0.25*a2*a2*b*(2.0*sabc-c2) + sabc
	if baC2 < 1e-13 {
		// This case happens for Béziers with a sharp kink.
		return v0
	}
	return v0 + 0.25*a32*(4.0*c*a-b*b)*math.Log(((2.0*a+b)*a2+2.0*sabc)/baC2)
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	pm := q.Eval(0.5)
	return QuadBez{q.P0, q.P0.Midpoint(q.P1), pm},
		QuadBez{pm, q.P1.Midpoint(q.P2), q.P2}
}

func (q QuadBez) SubdivideCurve() (ParametricCurve, ParametricCurve) {
	return q.Subdivide()
}

func (q QuadBez) Subsegment(t0 float64, t1 float64) QuadBez {
	p0 := q.Eval(t0)
	p2 := q.Eval(t1)
	p1 := p0.Translate(q.P1.Sub(q.P0).Lerp(q.P2.Sub(q.P1), t0).Mul(t1 - t0))
	return QuadBez{p0, p1, p2}
}

func (q QuadBez) SubsegmentCurve(t0 float64, t1 float64) ParametricCurve {
	return q.Subsegment(t0, t1)
}

func (q QuadBez) Differentiate() Line {
	return Line{
		Point(q.P1.Sub(q.P0).Mul(2)),
		Point(q.P2.Sub(q.P1).Mul(2)),
	}
}

func (q QuadBez) Start() Point {
	return q.P0
}

func (q QuadBez) End() Point {
	return q.P2
}

// Tangents returns the tangent vectors at the start and end of the curve.
// A control arm of (near) zero length falls back to the chord.
func (q QuadBez) Tangents() (Vec2, Vec2) {
	const epsilon = 1e-12
	d01 := q.P1.Sub(q.P0)
	var d0, d1 Vec2
	if d01.Hypot2() > epsilon {
		d0 = d01
	} else {
		d0 = q.P2.Sub(q.P0)
	}
	d12 := q.P2.Sub(q.P1)
	if d12.Hypot2() > epsilon {
		d1 = d12
	} else {
		d1 = q.P2.Sub(q.P0)
	}
	return d0, d1
}

func (q QuadBez) Seg() PathSegment {
	return PathSegment{Kind: QuadKind, P0: q.P0, P1: q.P1, P2: q.P2}
}
