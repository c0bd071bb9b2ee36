package fourier

import (
	"errors"
	"math/cmplx"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	"honnef.co/go/epicycle"
)

var equateComplex = cmp.Comparer(func(a, b complex128) bool {
	return cmplx.Abs(a-b) < 1e-9
})

func TestAllocate(t *testing.T) {
	tests := []struct {
		lengths []float64
		budget  int
		want    []int
	}{
		{[]float64{1, 1, 1, 1}, 64, []int{16, 16, 16, 16}},
		{[]float64{1, 2, 3, 0}, 10, []int{2, 3, 5, 0}},
		{[]float64{3, 1, 2}, 6, []int{3, 1, 2}},
		// Fewer samples than pieces: the shortest pieces are served first.
		{[]float64{5, 1, 1, 1, 1}, 3, []int{0, 1, 1, 1, 0}},
		{[]float64{0, 0}, 8, []int{0, 0}},
		{[]float64{1, 2}, 0, []int{0, 0}},
		{nil, 8, []int{}},
	}
	for _, tt := range tests {
		got := Allocate(tt.lengths, tt.budget)
		diff(t, tt.want, got)
	}
}

func TestAllocateConservesBudget(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for range 1000 {
		lengths := make([]float64, 1+rng.IntN(20))
		var positive int
		for i := range lengths {
			switch rng.IntN(4) {
			case 0:
				// zero length
			case 1:
				lengths[i] = rng.Float64() * 1e-3
				positive++
			default:
				lengths[i] = rng.Float64() * 100
				positive++
			}
		}
		budget := rng.IntN(2048)
		counts := Allocate(lengths, budget)

		var sum, served int
		for i, n := range counts {
			if n < 0 {
				t.Fatalf("negative count %d for %v", n, lengths)
			}
			if lengths[i] == 0 && n != 0 {
				t.Fatalf("zero length piece got %d samples", n)
			}
			if n > 0 {
				served++
			}
			sum += n
		}
		if positive == 0 {
			if sum != 0 {
				t.Fatalf("allocated %d samples to zero length pieces", sum)
			}
			continue
		}
		if sum != budget {
			t.Fatalf("allocated %d of %d samples to %v", sum, budget, lengths)
		}
		if budget >= positive && served != positive {
			t.Fatalf("only %d of %d pieces got samples with a budget of %d", served, positive, budget)
		}
	}
}

func TestExtract(t *testing.T) {
	tests := []struct {
		path   string
		budget int
		want   []complex128
	}{
		{
			"M 0,0 L 1,0 L 1,1 L 0,1 L 0,0",
			8,
			[]complex128{0, 0.5, 1, 1 + 0.5i, 1 + 1i, 0.5 + 1i, 1i, 0.5i},
		},
		{
			// The gap between the subpaths is bridged.
			"M 0,0 L 1,0 M 1,1 L 0,1",
			6,
			[]complex128{0, 0.5, 1, 1 + 0.5i, 1 + 1i, 0.5 + 1i},
		},
		{
			// Moves to the current point add nothing.
			"M 0,0 L 2,0 M 2,0 V 2",
			4,
			[]complex128{0, 1, 2, 2 + 1i},
		},
		{
			"M 0,0 H 4",
			4,
			[]complex128{0, 1, 2, 3},
		},
		{
			"M 1,1",
			4,
			[]complex128{},
		},
	}
	for _, tt := range tests {
		got, err := Extract(tt.path, tt.budget, epicycle.NumericMeasurer{})
		if err != nil {
			t.Errorf("%q: %s", tt.path, err)
			continue
		}
		diff(t, tt.want, got, equateComplex)
	}
}

func TestExtractCurves(t *testing.T) {
	const path = "M 0,0 Q 1,2 2,0 C 3,-1 4,1 5,0"
	p := epicycle.MustParsePath(path)
	m := epicycle.NumericMeasurer{}
	samples, err := Extract(path, 256, m)
	if err != nil {
		t.Fatal(err)
	}
	if len(samples) != 256 {
		t.Fatalf("got %d samples, want 256", len(samples))
	}
	if samples[0] != 0 {
		t.Errorf("first sample is %v, want 0", samples[0])
	}
	// Samples are spaced evenly along each piece, so consecutive samples are
	// roughly equally far apart.
	step := p.Length(epicycle.DefaultAccuracy) / 256
	for i := 1; i < len(samples); i++ {
		if d := cmplx.Abs(samples[i] - samples[i-1]); d > step*1.01 {
			t.Errorf("samples %d and %d are %g apart, step is %g", i-1, i, d, step)
		}
	}
}

type failingMeasurer struct {
	epicycle.NumericMeasurer
}

var errMeasure = errors.New("measurement failed")

func (failingMeasurer) PointAtDistance(string, float64) (epicycle.Point, error) {
	return epicycle.Point{}, errMeasure
}

func TestExtractErrors(t *testing.T) {
	if _, err := Extract("M 0,0 L 1,1", 4, failingMeasurer{}); !errors.Is(err, errMeasure) {
		t.Errorf("got %v, want %v", err, errMeasure)
	}
	if _, err := Extract("L 1,1", 4, epicycle.NumericMeasurer{}); !errors.Is(err, epicycle.ErrMissingMove) {
		t.Errorf("got %v, want %v", err, epicycle.ErrMissingMove)
	}
	if _, err := Extract("", 4, epicycle.NumericMeasurer{}); !errors.Is(err, epicycle.ErrEmptyPath) {
		t.Errorf("got %v, want %v", err, epicycle.ErrEmptyPath)
	}
}
