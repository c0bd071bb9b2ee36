package epicycle

import (
	"errors"
	"fmt"
	"math"
)

// ErrSegmentCount is returned when sampling with fewer than one segment.
var ErrSegmentCount = errors.New("segment count must be at least 1")

// Func is a parametric curve t ↦ (x, y), usually evaluated for t ∈ [0, 1].
type Func func(t float64) Point

// InvalidSampleError reports a parametric function returning a non-finite
// point, or panicking, at parameter T.
type InvalidSampleError struct {
	T     float64
	Value Point
	// Err is the value the function panicked with, if it did.
	Err error
}

func (e *InvalidSampleError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sampling at t=%g: %s", e.T, e.Err)
	}
	return fmt.Sprintf("invalid sample %s at t=%g", e.Value, e.T)
}

func (e *InvalidSampleError) Unwrap() error { return e.Err }

// Sample evaluates f at t and checks the result for NaN and infinities. A
// panic in f is recovered and returned as an [InvalidSampleError] carrying t.
func (f Func) Sample(t float64) (pt Point, err error) {
	defer func() {
		if r := recover(); r != nil {
			perr, ok := r.(error)
			if !ok {
				perr = fmt.Errorf("%v", r)
			}
			pt, err = Point{}, &InvalidSampleError{T: t, Err: perr}
		}
	}()
	pt = f(t)
	if !pt.IsFinite() {
		return pt, &InvalidSampleError{T: t, Value: pt}
	}
	return pt, nil
}

func (f Func) samples(segments int) ([]Point, error) {
	if segments < 1 {
		return nil, ErrSegmentCount
	}
	pts := make([]Point, segments+1)
	for i := range pts {
		pt, err := f.Sample(float64(i) / float64(segments))
		if err != nil {
			return nil, err
		}
		pts[i] = pt
	}
	return pts, nil
}

// SampleParametric evaluates f at segments+1 evenly spaced values of t in
// [0, 1] and connects the samples with lines.
func SampleParametric(f Func, segments int) (Path, error) {
	pts, err := f.samples(segments)
	if err != nil {
		return Path{}, err
	}
	var b Builder
	b.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		b.LineTo(pt.X, pt.Y)
	}
	return b.Path()
}

// SampleParametricSmooth is like [SampleParametric] but connects the samples
// with quadratic Béziers that follow the curve's tangents.
//
// Tangents are estimated from neighboring samples. Consecutive samples that
// (nearly) coincide are skipped, which happens for example when f collapses
// onto a point, and a line is used wherever a tangent is degenerate or no
// quadratic matches both tangents.
func SampleParametricSmooth(f Func, segments int) (Path, error) {
	pts, err := f.samples(segments)
	if err != nil {
		return Path{}, err
	}

	minX, maxX := pts[0].X, pts[0].X
	minY, maxY := pts[0].Y, pts[0].Y
	for _, pt := range pts[1:] {
		minX, maxX = min(minX, pt.X), max(maxX, pt.X)
		minY, maxY = min(minY, pt.Y), max(maxY, pt.Y)
	}
	eps := 1e-9 * max(maxX-minX, maxY-minY, 1)

	tangents := make([]Vec2, len(pts))
	for i := range pts {
		prev := pts[max(i-1, 0)]
		next := pts[min(i+1, len(pts)-1)]
		tangents[i] = next.Sub(prev)
	}

	var b Builder
	b.MoveTo(pts[0].X, pts[0].Y)
	last := 0
	for i := 1; i < len(pts); i++ {
		p0, p1 := pts[last], pts[i]
		if p0.Distance(p1) <= eps {
			continue
		}
		t0, t1 := tangents[last], tangents[i]
		if t0.Hypot() <= eps || t1.Hypot() <= eps {
			b.LineTo(p1.X, p1.Y)
		} else if fit, ok := TryFit(p0.X, p0.Y, t0.Angle(), p1.X, p1.Y, t1.Angle()); ok && !fit.Quad().IsNaN() {
			b.Append(fit.Command())
		} else {
			b.LineTo(p1.X, p1.Y)
		}
		last = i
	}
	return b.Path()
}

// Circle returns the parametric function of a circle, starting at angle start
// and running counter-clockwise in a y-up coordinate system.
func Circle(center Point, radius, start float64) Func {
	return func(t float64) Point {
		return center.Translate(VecFromAngle(start + 2*math.Pi*t).Mul(radius))
	}
}
