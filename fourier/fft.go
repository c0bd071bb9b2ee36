package fourier

import (
	"errors"
	"fmt"

	dsp "gonum.org/v1/gonum/dsp/fourier"
)

// ErrNotPowerOfTwo is returned for sample counts that aren't a power of two.
var ErrNotPowerOfTwo = errors.New("numSamples must be a power of 2")

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Forward computes the discrete Fourier transform of the samples,
//
//	c_k = Σ_j samples[j] · e^(−2πi·jk/N)
//
// without normalization. The number of samples must be a power of two.
func Forward(samples []complex128) ([]complex128, error) {
	if !isPowerOfTwo(len(samples)) {
		return nil, fmt.Errorf("%w, got %d", ErrNotPowerOfTwo, len(samples))
	}
	fft := dsp.NewCmplxFFT(len(samples))
	return fft.Coefficients(nil, samples), nil
}
