package epicycle

// Line represents a line segment. It is a [ParametricCurve].
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

var _ ParametricCurve = Line{}
var _ ArclenSolver = Line{}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Arclen returns the length of the line
func (l Line) Arclen(accuracy float64) float64 {
	return l.Length()
}

// SolveForArclen returns the parameter at the given distance from the start.
// Degenerate lines report 0 for every distance.
func (l Line) SolveForArclen(arclen float64, accuracy float64) float64 {
	n := l.Length()
	if n == 0 {
		return 0
	}
	return min(max(arclen/n, 0), 1)
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

func (l Line) Subsegment(start, end float64) Line {
	return Line{l.Eval(start), l.Eval(end)}
}

func (l Line) SubsegmentCurve(start, end float64) ParametricCurve {
	return l.Subsegment(start, end)
}

func (l Line) Subdivide() (Line, Line) {
	return l.Subsegment(0.0, 0.5), l.Subsegment(0.5, 1.0)
}

func (l Line) SubdivideCurve() (ParametricCurve, ParametricCurve) {
	return l.Subdivide()
}

func (l Line) Tangents() (Vec2, Vec2) {
	d := l.P1.Sub(l.P0)
	return d, d
}

func (l Line) Seg() PathSegment {
	return PathSegment{Kind: LineKind, P0: l.P0, P1: l.P1}
}
