package epicycle

import (
	"errors"
	"math"
	"testing"
)

func TestSampleParametric(t *testing.T) {
	p, err := SampleParametric(Circle(Pt(0, 0), 1, 0), 4)
	if err != nil {
		t.Fatal(err)
	}
	if p.Len() != 5 {
		t.Fatalf("got %d commands, want 5", p.Len())
	}
	want := []Point{Pt(1, 0), Pt(0, 1), Pt(-1, 0), Pt(0, -1), Pt(1, 0)}
	i := 0
	for from, cmd := range p.Steps() {
		wantKind := LineToKind
		if i == 0 {
			wantKind = MoveToKind
		}
		if cmd.Kind != wantKind {
			t.Errorf("command %d is %s, want %s", i, cmd.Kind, wantKind)
		}
		assertNear(t, want[i], cmd.End(from), 1e-12)
		i++
	}
}

func TestSampleParametricInvalid(t *testing.T) {
	f := func(t float64) Point {
		if t == 0.5 {
			return Pt(nan, 0)
		}
		return Pt(t, t)
	}
	for _, sample := range []func(Func, int) (Path, error){SampleParametric, SampleParametricSmooth} {
		_, err := sample(f, 4)
		var serr *InvalidSampleError
		if !errors.As(err, &serr) {
			t.Fatalf("got %v, want an InvalidSampleError", err)
		}
		diff(t, 0.5, serr.T)

		if _, err := sample(f, 0); !errors.Is(err, ErrSegmentCount) {
			t.Errorf("got %v, want %v", err, ErrSegmentCount)
		}
	}
}

func TestSampleParametricPanic(t *testing.T) {
	errBoom := errors.New("boom")
	tests := []struct {
		name string
		f    Func
	}{
		{"string", func(t float64) Point {
			if t > 0.5 {
				panic("boom")
			}
			return Pt(t, t)
		}},
		{"error", func(t float64) Point {
			if t > 0.5 {
				panic(errBoom)
			}
			return Pt(t, t)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, sample := range []func(Func, int) (Path, error){SampleParametric, SampleParametricSmooth} {
				_, err := sample(tt.f, 4)
				var serr *InvalidSampleError
				if !errors.As(err, &serr) {
					t.Fatalf("got %v, want an InvalidSampleError", err)
				}
				diff(t, 0.75, serr.T)
				if serr.Err == nil || serr.Err.Error() != "boom" {
					t.Errorf("got cause %v, want boom", serr.Err)
				}
			}
		})
	}

	_, err := SampleParametric(tests[1].f, 4)
	if !errors.Is(err, errBoom) {
		t.Errorf("%v doesn't wrap %v", err, errBoom)
	}
}

func TestSampleParametricSmooth(t *testing.T) {
	const segments = 16
	p, err := SampleParametricSmooth(Circle(Pt(0, 0), 1, 0), segments)
	if err != nil {
		t.Fatal(err)
	}
	if p.Len() != segments+1 {
		t.Fatalf("got %d commands, want %d", p.Len(), segments+1)
	}
	i := 0
	for from, cmd := range p.Steps() {
		if d := cmd.End(from).Distance(Pt(0, 0)); math.Abs(d-1) > 1e-12 {
			t.Errorf("command %d ends %g away from the center", i, d)
		}
		// The tangents at the ends are one-sided, so the outermost segments may
		// degrade to lines.
		if i >= 2 && i < segments {
			if cmd.Kind != QuadToKind {
				t.Errorf("command %d is %s, want %s", i, cmd.Kind, QuadToKind)
			}
			// The control point lies outside the circle, but not by much.
			if d := cmd.P0.Distance(Pt(0, 0)); d < 1 || d > 1.1 {
				t.Errorf("control point %d is %g away from the center", i, d)
			}
		}
		i++
	}
}

func TestSampleParametricSmoothDegenerate(t *testing.T) {
	p, err := SampleParametricSmooth(func(float64) Point { return Pt(3, 4) }, 8)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, "M 3,4", p.String())

	p, err = SampleParametricSmooth(func(t float64) Point { return Pt(t, 2*t) }, 8)
	if err != nil {
		t.Fatal(err)
	}
	if p.Len() != 9 {
		t.Fatalf("got %d commands, want 9", p.Len())
	}
	for i := 1; i < p.Len(); i++ {
		if cmd := p.At(i); cmd.Kind != LineToKind {
			t.Errorf("command %d is %s, want %s", i, cmd.Kind, LineToKind)
		}
	}
	assertNear(t, Pt(1, 2), p.End(), 1e-12)
}

func TestCircle(t *testing.T) {
	f := Circle(Pt(1, 2), 3, math.Pi/2)
	assertNear(t, Pt(1, 5), f(0), 1e-12)
	assertNear(t, Pt(-2, 2), f(0.25), 1e-12)
	assertNear(t, f(0), f(1), 1e-12)
}
