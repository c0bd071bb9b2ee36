package epicycle

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var (
	nan = math.NaN()
	inf = math.Inf(1)
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p0.Distance(p1); d > epsilon {
		t.Errorf("%v and %v are %g apart, want at most %g", p0, p1, d, epsilon)
	}
}
