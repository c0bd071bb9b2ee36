package fourier

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"slices"

	"honnef.co/go/epicycle"
)

const (
	// DefaultSampleCount is the number of samples taken from a path or
	// function before transforming it.
	DefaultSampleCount = 1024
	// DefaultPruneRatio is the share of the total amplitude that may be
	// dropped from the end of a term list.
	DefaultPruneRatio = 1e-7
)

// ErrZeroLength is returned when analyzing a path that has no length.
var ErrZeroLength = errors.New("path has zero length")

// Term is one rotating circle of a Fourier series: the point
// amplitude·e^(i·(2π·frequency·t + phase)).
type Term struct {
	// Number of full turns per period. Negative frequencies turn clockwise in
	// a y-up coordinate system.
	Frequency int `json:"frequency"`
	// Radius of the circle, always ≥ 0.
	Amplitude float64 `json:"amplitude"`
	// Angle at t = 0, in radians.
	Phase float64 `json:"phase"`
}

// Options are the tunables of the analysis.
type Options struct {
	// Number of samples, a power of two. Zero means DefaultSampleCount.
	SampleCount int
	// Zero means DefaultPruneRatio.
	PruneRatio float64
}

func DefaultOptions() Options {
	return Options{
		SampleCount: DefaultSampleCount,
		PruneRatio:  DefaultPruneRatio,
	}
}

func (o Options) withDefaults() Options {
	if o.SampleCount == 0 {
		o.SampleCount = DefaultSampleCount
	}
	if o.PruneRatio == 0 {
		o.PruneRatio = DefaultPruneRatio
	}
	return o
}

// Analyze decomposes the samples, interpreted as one period of a closed curve
// with x in the real and y in the imaginary part, into Fourier terms.
//
// The terms are sorted by decreasing amplitude. The smallest terms are dropped
// as long as their combined amplitude doesn't exceed PruneRatio of the total,
// so the kept terms always carry at least 1−PruneRatio of the total amplitude.
func Analyze(samples []complex128, opts Options) ([]Term, error) {
	opts = opts.withDefaults()
	coeffs, err := Forward(samples)
	if err != nil {
		return nil, err
	}
	n := len(coeffs)
	terms := make([]Term, n)
	for k, c := range coeffs {
		freq := k
		if k > n/2 {
			freq = k - n
		}
		terms[k] = Term{
			Frequency: freq,
			Amplitude: cmplx.Abs(c) / float64(n),
			Phase:     math.Atan2(imag(c), real(c)),
		}
	}
	SortTerms(terms)
	kept := Prune(terms, opts.PruneRatio)
	epicycle.Logger().Debug("analyzed samples",
		"samples", n, "kept", len(kept), "pruned", n-len(kept))
	return kept, nil
}

// SortTerms sorts terms by decreasing amplitude. Ties are broken by
// increasing absolute frequency, then by frequency.
func SortTerms(terms []Term) {
	slices.SortStableFunc(terms, func(a, b Term) int {
		if c := cmp.Compare(b.Amplitude, a.Amplitude); c != 0 {
			return c
		}
		if c := cmp.Compare(absInt(a.Frequency), absInt(b.Frequency)); c != 0 {
			return c
		}
		return cmp.Compare(a.Frequency, b.Frequency)
	})
}

// Prune drops terms from the end of a sorted term list for as long as the
// dropped amplitude stays within ratio of the total amplitude. It returns a
// prefix of terms.
func Prune(terms []Term, ratio float64) []Term {
	var total float64
	for _, t := range terms {
		total += t.Amplitude
	}
	limit := total * ratio
	var dropped float64
	end := len(terms)
	for end > 0 && dropped+terms[end-1].Amplitude <= limit {
		dropped += terms[end-1].Amplitude
		end--
	}
	return terms[:end:end]
}

// AnalyzePath samples the path with m and analyzes it. See [Extract] for how
// samples are distributed along the path.
func AnalyzePath(path string, m epicycle.Measurer, opts Options) ([]Term, error) {
	opts = opts.withDefaults()
	if !isPowerOfTwo(opts.SampleCount) {
		return nil, fmt.Errorf("%w, got %d", ErrNotPowerOfTwo, opts.SampleCount)
	}
	samples, err := Extract(path, opts.SampleCount, m)
	if err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, ErrZeroLength
	}
	return Analyze(samples, opts)
}

// AnalyzeFunc samples f at t = i/SampleCount for i in [0, SampleCount) and
// analyzes it. f is expected to be periodic with period 1.
func AnalyzeFunc(f epicycle.Func, opts Options) ([]Term, error) {
	opts = opts.withDefaults()
	if !isPowerOfTwo(opts.SampleCount) {
		return nil, fmt.Errorf("%w, got %d", ErrNotPowerOfTwo, opts.SampleCount)
	}
	samples := make([]complex128, opts.SampleCount)
	for i := range samples {
		pt, err := f.Sample(float64(i) / float64(opts.SampleCount))
		if err != nil {
			return nil, err
		}
		samples[i] = complex(pt.X, pt.Y)
	}
	return Analyze(samples, opts)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
