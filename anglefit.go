package epicycle

import "math"

// FitSource records how an [AngleFit] was constructed.
type FitSource int

const (
	// The control point was given explicitly.
	FitFromPoints FitSource = iota + 1
	// The control point was derived from two requested tangent angles.
	FitFromAngles
)

// fitEpsilon is the smallest magnitude of the cross product of the two unit
// tangent directions for which the tangent rays are considered non-parallel.
const fitEpsilon = 1e-9

// AngleFit is a quadratic Bézier described by the tangent directions at its
// end points.
//
// IncomingAngle and OutgoingAngle are always derived from the actual control
// point. When the fit was built from requested angles, RequestedIn and
// RequestedOut hold the request and Success reports whether both angles could
// be matched. An unsuccessful fit is still a usable curve; its control point
// is the midpoint of the end points.
type AngleFit struct {
	From    Point
	Control Point
	To      Point

	// Tangent direction at From, in radians.
	IncomingAngle float64
	// Tangent direction at To, in radians.
	OutgoingAngle float64

	Source       FitSource
	RequestedIn  float64
	RequestedOut float64
	Success      bool
}

// NewAngleFit returns the fit for an explicit quadratic Bézier.
func NewAngleFit(x0, y0, cx, cy, x1, y1 float64) AngleFit {
	f := AngleFit{
		From:    Pt(x0, y0),
		Control: Pt(cx, cy),
		To:      Pt(x1, y1),
		Source:  FitFromPoints,
		Success: true,
	}
	f.deriveAngles()
	return f
}

// TryFit finds the quadratic Bézier from (x0, y0) to (x1, y1) that leaves its
// start at angleIn and arrives at its end at angleOut. It reports false if no
// such curve exists: when the two tangent rays are parallel, when their
// intersection lies behind either end point, or when an input isn't finite.
//
// The control point is the intersection of the ray from the start along
// angleIn with the ray from the end against angleOut.
func TryFit(x0, y0, angleIn, x1, y1, angleOut float64) (AngleFit, bool) {
	f, ok := solveFit(x0, y0, angleIn, x1, y1, angleOut)
	if !ok {
		return AngleFit{}, false
	}
	return f, true
}

// Fit is like [TryFit] but always returns a curve. When the angles can't be
// matched, the result has Success set to false and uses the midpoint of the end
// points as its control point.
func Fit(x0, y0, angleIn, x1, y1, angleOut float64) AngleFit {
	f, ok := solveFit(x0, y0, angleIn, x1, y1, angleOut)
	if !ok {
		Logger().Debug("angle fit fell back to midpoint control",
			"from", f.From, "to", f.To, "angleIn", angleIn, "angleOut", angleOut)
	}
	return f
}

func solveFit(x0, y0, angleIn, x1, y1, angleOut float64) (AngleFit, bool) {
	f := AngleFit{
		From:         Pt(x0, y0),
		To:           Pt(x1, y1),
		Source:       FitFromAngles,
		RequestedIn:  angleIn,
		RequestedOut: angleOut,
	}
	ctrl, ok := intersectTangents(f.From, angleIn, f.To, angleOut)
	if ok {
		f.Control = ctrl
		f.Success = true
	} else {
		f.Control = f.From.Midpoint(f.To)
	}
	f.deriveAngles()
	return f, ok
}

// intersectTangents solves p0 + s·u = p1 − r·v for s, r > 0.
func intersectTangents(p0 Point, angleIn float64, p1 Point, angleOut float64) (Point, bool) {
	if !p0.IsFinite() || !p1.IsFinite() || !isFinite(angleIn) || !isFinite(angleOut) {
		return Point{}, false
	}
	u := VecFromAngle(angleIn)
	v := VecFromAngle(angleOut)
	det := u.Cross(v)
	if math.Abs(det) < fitEpsilon {
		return Point{}, false
	}
	d := p1.Sub(p0)
	s := d.Cross(v) / det
	r := u.Cross(d) / det
	if !(s > 0) || !(r > 0) {
		return Point{}, false
	}
	return p0.Translate(u.Mul(s)), true
}

func (f *AngleFit) deriveAngles() {
	d0, d1 := f.Quad().Tangents()
	f.IncomingAngle = d0.Angle()
	f.OutgoingAngle = d1.Angle()
}

// Quad returns the fit as a quadratic Bézier.
func (f AngleFit) Quad() QuadBez {
	return QuadBez{f.From, f.Control, f.To}
}

// Command returns the QuadTo command drawing the fit from its start point.
func (f AngleFit) Command() Command {
	return QuadTo(f.Control.X, f.Control.Y, f.To.X, f.To.Y)
}

// AngleDiff returns the signed difference a−b wrapped to (−π, π].
func AngleDiff(a, b float64) float64 {
	d := math.Mod(a-b, 2*math.Pi)
	switch {
	case d > math.Pi:
		d -= 2 * math.Pi
	case d <= -math.Pi:
		d += 2 * math.Pi
	}
	return d
}
