package fourier

import (
	"math"
	"slices"

	"honnef.co/go/epicycle"
)

// Reconstruct returns the parametric function summing count terms, starting
// at terms[start]:
//
//	x(t) = Σ amplitude·cos(2π·frequency·t + phase)
//	y(t) = Σ amplitude·sin(2π·frequency·t + phase)
//
// The range is clamped to the term list. The terms are copied, so later
// changes to the slice don't affect the function.
func Reconstruct(terms []Term, count, start int) epicycle.Func {
	start, end := termRange(len(terms), count, start)
	active := slices.Clone(terms[start:end])
	return func(t float64) epicycle.Point {
		var x, y float64
		for _, term := range active {
			s, c := math.Sincos(2*math.Pi*float64(term.Frequency)*t + term.Phase)
			x += term.Amplitude * c
			y += term.Amplitude * s
		}
		return epicycle.Pt(x, y)
	}
}

// FixedContribution returns the constant point contributed by a term of
// frequency 0. Other terms move with t and report false.
func FixedContribution(term Term) (epicycle.Point, bool) {
	if term.Frequency != 0 {
		return epicycle.Point{}, false
	}
	s, c := math.Sincos(term.Phase)
	return epicycle.Pt(term.Amplitude*c, term.Amplitude*s), true
}

// ReconstructPath draws the sum of count terms, starting at terms[start], as a
// path of the given number of line segments.
//
// If the selected terms don't depend on t, for example when only a frequency
// 0 term is selected, the result is a single move to that point.
func ReconstructPath(terms []Term, count, start, segments int) (epicycle.Path, error) {
	start, end := termRange(len(terms), count, start)
	if fixed, ok := fixedOnly(terms[start:end]); ok {
		return epicycle.NewBuilder().MoveTo(fixed.X, fixed.Y).Path()
	}
	return epicycle.SampleParametric(Reconstruct(terms, count, start), segments)
}

// termRange clamps [start, start+count) to [0, n) without overflowing.
func termRange(n, count, start int) (int, int) {
	start = min(max(start, 0), n)
	return start, start + min(max(count, 0), n-start)
}

func fixedOnly(terms []Term) (epicycle.Point, bool) {
	var sum epicycle.Point
	for _, term := range terms {
		pt, ok := FixedContribution(term)
		if !ok {
			return epicycle.Point{}, false
		}
		sum = sum.Translate(epicycle.Vec2(pt))
	}
	return sum, true
}
