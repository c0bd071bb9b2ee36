package epicycle

import "fmt"

type PathSegmentKind int

const (
	// A line segment.
	LineKind PathSegmentKind = iota + 1
	// A quadratic Bézier segment.
	QuadKind
	// A cubic Bézier segment.
	CubicKind
)

// PathSegment represents a drawn segment of a path: a [Line], [QuadBez] or
// [CubicBez] together with its start point. Unlike [Command], which is relative
// to the current point, a segment is self-contained, which makes it the unit of
// measurement.
type PathSegment struct {
	// We don't use an interface for PathSegment because we want {Line, Quad,
	// Cubic}.Subsegment to return their respective types, not PathSegment.
	//
	// This also avoids having to allocate for path segments.

	Kind PathSegmentKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
}

var _ ParametricCurve = PathSegment{}

// Line returns the line represented by this segment. This is only valid when Kind ==
// LineKind.
func (seg PathSegment) Line() Line { return Line{seg.P0, seg.P1} }

// Quad returns the quadratic Bézier represented by this segment. This is only valid when Kind ==
// QuadKind.
func (seg PathSegment) Quad() QuadBez { return QuadBez{seg.P0, seg.P1, seg.P2} }

// Cubic converts seg to a cubic Bézier. This is valid for any Kind.
func (seg PathSegment) Cubic() CubicBez {
	switch seg.Kind {
	case LineKind:
		d := seg.P1.Sub(seg.P0)
		return CubicBez{
			seg.P0,
			seg.P0.Translate(d.Mul(1.0 / 3.0)),
			seg.P0.Translate(d.Mul(2.0 / 3.0)),
			seg.P1,
		}
	case QuadKind:
		return seg.Quad().Raise()
	case CubicKind:
		return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3}
	default:
		return CubicBez{}
	}
}

func (seg PathSegment) IsInf() bool {
	return seg.P0.IsInf() || seg.P1.IsInf() || seg.P2.IsInf() || seg.P3.IsInf()
}

func (seg PathSegment) IsNaN() bool {
	return seg.P0.IsNaN() || seg.P1.IsNaN() || seg.P2.IsNaN() || seg.P3.IsNaN()
}

func (seg PathSegment) Eval(t float64) Point {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Eval(t)
	case QuadKind:
		return seg.Quad().Eval(t)
	case CubicKind:
		return seg.Cubic().Eval(t)
	default:
		return Point{}
	}
}

func (seg PathSegment) Subsegment(start, end float64) PathSegment {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Subsegment(start, end).Seg()
	case QuadKind:
		return seg.Quad().Subsegment(start, end).Seg()
	case CubicKind:
		return seg.Cubic().Subsegment(start, end).Seg()
	default:
		return PathSegment{}
	}
}

func (seg PathSegment) Start() Point {
	return seg.P0
}

func (seg PathSegment) End() Point {
	switch seg.Kind {
	case LineKind:
		return seg.P1
	case QuadKind:
		return seg.P2
	case CubicKind:
		return seg.P3
	default:
		return Point{}
	}
}

func (seg PathSegment) SubsegmentCurve(start, end float64) ParametricCurve {
	return seg.Subsegment(start, end)
}

func (seg PathSegment) Subdivide() (PathSegment, PathSegment) {
	return seg.Subsegment(0.0, 0.5), seg.Subsegment(0.5, 1.0)
}

func (seg PathSegment) SubdivideCurve() (ParametricCurve, ParametricCurve) {
	return seg.Subdivide()
}

func (seg PathSegment) Arclen(accuracy float64) float64 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Arclen(accuracy)
	case QuadKind:
		return seg.Quad().Arclen(accuracy)
	case CubicKind:
		return seg.Cubic().Arclen(accuracy)
	default:
		return 0
	}
}

func (seg PathSegment) SolveForArclen(arclen, accuracy float64) float64 {
	switch seg.Kind {
	case LineKind:
		return SolveForArclen(seg.Line(), arclen, accuracy)
	case QuadKind:
		return SolveForArclen(seg.Quad(), arclen, accuracy)
	case CubicKind:
		return SolveForArclen(seg.Cubic(), arclen, accuracy)
	default:
		return 0
	}
}

// Command returns the path command drawing this segment from its start point.
func (seg PathSegment) Command() Command {
	switch seg.Kind {
	case LineKind:
		return LineTo(seg.P1.X, seg.P1.Y)
	case QuadKind:
		return QuadTo(seg.P1.X, seg.P1.Y, seg.P2.X, seg.P2.Y)
	case CubicKind:
		return CubicTo(seg.P1.X, seg.P1.Y, seg.P2.X, seg.P2.Y, seg.P3.X, seg.P3.Y)
	default:
		panic(fmt.Sprintf("invalid PathSegment kind %v", seg.Kind))
	}
}

// Tangents computes endpoint tangents of a path segment.
//
// This version is robust to the path segment not being a regular curve.
func (seg PathSegment) Tangents() (Vec2, Vec2) {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Tangents()
	case QuadKind:
		return seg.Quad().Tangents()
	case CubicKind:
		return seg.Cubic().Tangents()
	default:
		panic(fmt.Sprintf("invalid PathSegment kind %v", seg.Kind))
	}
}
