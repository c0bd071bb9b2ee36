package fourier

import (
	"errors"
	"math"
	"math/cmplx"
	"math/rand/v2"
	"testing"
)

func naiveDFT(samples []complex128) []complex128 {
	n := len(samples)
	out := make([]complex128, n)
	for k := range out {
		for j, s := range samples {
			out[k] += s * cmplx.Rect(1, -2*math.Pi*float64(j*k)/float64(n))
		}
	}
	return out
}

func TestForward(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, n := range []int{1, 2, 4, 8, 64} {
		samples := make([]complex128, n)
		for i := range samples {
			samples[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
		}
		got, err := Forward(samples)
		if err != nil {
			t.Fatal(err)
		}
		want := naiveDFT(samples)
		for k := range want {
			if d := cmplx.Abs(got[k] - want[k]); d > 1e-9 {
				t.Errorf("n=%d: coefficient %d is %v, want %v", n, k, got[k], want[k])
			}
		}
	}
}

func TestForwardNotPowerOfTwo(t *testing.T) {
	for _, n := range []int{0, 3, 6, 100, 1000} {
		_, err := Forward(make([]complex128, n))
		if !errors.Is(err, ErrNotPowerOfTwo) {
			t.Errorf("n=%d: got error %v, want %v", n, err, ErrNotPowerOfTwo)
		}
	}
}
