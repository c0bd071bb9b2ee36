package epicycle

import (
	"math"
	"testing"
)

func TestTryFit(t *testing.T) {
	fit, ok := TryFit(0, 0, math.Pi/4, 2, 0, -math.Pi/4)
	if !ok {
		t.Fatal("fit failed")
	}
	assertNear(t, Pt(1, 1), fit.Control, 1e-12)
	diff(t, Pt(0, 0), fit.From)
	diff(t, Pt(2, 0), fit.To)
	diff(t, FitFromAngles, fit.Source)
	if !fit.Success {
		t.Error("successful fit doesn't report success")
	}
	if d := AngleDiff(fit.IncomingAngle, math.Pi/4); math.Abs(d) > 1e-12 {
		t.Errorf("incoming angle is off by %g", d)
	}
	if d := AngleDiff(fit.OutgoingAngle, -math.Pi/4); math.Abs(d) > 1e-12 {
		t.Errorf("outgoing angle is off by %g", d)
	}
	diff(t, QuadTo(fit.Control.X, fit.Control.Y, 2, 0), fit.Command())
}

func TestTryFitFailures(t *testing.T) {
	tests := []struct {
		name                    string
		x0, y0, in, x1, y1, out float64
	}{
		{"coincident end points", 1, 1, math.Pi, 1, 1, 0},
		{"parallel", 0, 0, 0, 5, 5, 0},
		{"antiparallel", 0, 0, 0, 5, 5, math.Pi},
		{"behind the end points", 0, 0, 3 * math.Pi / 4, 10, 0, math.Pi / 4},
		{"behind the start", 0, 0, math.Pi, 10, 0, math.Pi / 2},
		{"NaN angle", 0, 0, nan, 10, 0, 0},
		{"infinite end point", 0, 0, math.Pi / 4, inf, 0, -math.Pi / 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := TryFit(tt.x0, tt.y0, tt.in, tt.x1, tt.y1, tt.out); ok {
				t.Error("fit succeeded")
			}
		})
	}
}

func TestFitFallback(t *testing.T) {
	fit := Fit(1, 1, math.Pi, 1, 1, 0)
	if fit.Success {
		t.Error("degenerate fit reports success")
	}
	diff(t, Pt(1, 1), fit.Control)
	diff(t, math.Pi, fit.RequestedIn)
	diff(t, 0.0, fit.RequestedOut)
	if math.IsNaN(fit.IncomingAngle) || math.IsNaN(fit.OutgoingAngle) {
		t.Errorf("fallback has NaN angles %g and %g", fit.IncomingAngle, fit.OutgoingAngle)
	}

	fit = Fit(0, 0, 3*math.Pi/4, 10, 0, math.Pi/4)
	if fit.Success {
		t.Error("impossible fit reports success")
	}
	diff(t, Pt(5, 0), fit.Control)
	// The derived angles describe the actual curve, a straight line.
	diff(t, 0.0, fit.IncomingAngle)
	diff(t, 0.0, fit.OutgoingAngle)
}

func TestFitAngles(t *testing.T) {
	from, to := Pt(0, 0), Pt(3, 1)
	for i := range 12 {
		for j := range 12 {
			in := float64(i) * math.Pi / 6
			out := float64(j) * math.Pi / 6
			fit := Fit(from.X, from.Y, in, to.X, to.Y, out)
			_, ok := TryFit(from.X, from.Y, in, to.X, to.Y, out)
			if fit.Success != ok {
				t.Fatalf("Fit and TryFit disagree for %g, %g", in, out)
			}
			if !ok {
				continue
			}
			if d := AngleDiff(fit.IncomingAngle, in); math.Abs(d) > 1e-9 {
				t.Errorf("in=%g out=%g: incoming angle is off by %g", in, out, d)
			}
			if d := AngleDiff(fit.OutgoingAngle, out); math.Abs(d) > 1e-9 {
				t.Errorf("in=%g out=%g: outgoing angle is off by %g", in, out, d)
			}
		}
	}
}

func TestNewAngleFit(t *testing.T) {
	fit := NewAngleFit(0, 0, 0, 1, 1, 1)
	diff(t, FitFromPoints, fit.Source)
	if !fit.Success {
		t.Error("explicit fit doesn't report success")
	}
	diff(t, math.Pi/2, fit.IncomingAngle)
	diff(t, 0.0, fit.OutgoingAngle)

	// A control point on an end point falls back to the chord.
	fit = NewAngleFit(0, 0, 0, 0, 1, 1)
	if math.Abs(fit.IncomingAngle-math.Pi/4) > 1e-12 || math.Abs(fit.OutgoingAngle-math.Pi/4) > 1e-12 {
		t.Errorf("got angles %g and %g, want π/4", fit.IncomingAngle, fit.OutgoingAngle)
	}
}

func TestAngleDiff(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{0.1, 0, 0.1},
		{0, 0.1, -0.1},
		{math.Pi, -math.Pi, 0},
		{3 * math.Pi / 2, 0, -math.Pi / 2},
		{math.Pi, 0, math.Pi},
		{-math.Pi, 0, math.Pi},
		{2*math.Pi + 0.5, 0, 0.5},
	}
	for _, tt := range tests {
		if got := AngleDiff(tt.a, tt.b); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("AngleDiff(%g, %g) = %g, want %g", tt.a, tt.b, got, tt.want)
		}
	}
}
