package epicycle

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// MakePolygon returns a closed polygon with the given number of sides, inscribed
// in the unit circle and starting at its top (0, -1).
//
// Vertex i is connected to vertex i+skip+1, so a skip of 0 produces a regular
// polygon and, for example, MakePolygon(5, 1, 0, nil) a pentagram. Randomness
// jitters each vertex's distance from the center by up to that fraction of the
// radius, using rng or the global source if rng is nil.
//
// The path consists of one MoveTo followed by exactly sides LineTo commands,
// the last of which ends on the start point. When sides and skip+1 share a
// divisor g > 1, only sides/g vertices are reachable and the resulting
// polygon is traced g times; MakePolygon(6, 1, 0, nil) draws a triangle
// twice.
func MakePolygon(sides, skip int, randomness float64, rng *rand.Rand) (Path, error) {
	if sides < 3 {
		return Path{}, fmt.Errorf("polygon needs at least 3 sides, got %d", sides)
	}
	if skip < 0 {
		return Path{}, fmt.Errorf("polygon skip must not be negative, got %d", skip)
	}
	uniform := rand.Float64
	if rng != nil {
		uniform = rng.Float64
	}

	verts := make([]Point, sides)
	for i := range verts {
		r := 1.0
		if randomness != 0 {
			r += randomness * (2*uniform() - 1)
		}
		th := 2*math.Pi*float64(i)/float64(sides) - math.Pi/2
		verts[i] = Point(VecFromAngle(th).Mul(r))
	}

	step := skip + 1
	var b Builder
	b.MoveTo(verts[0].X, verts[0].Y)
	for i := 1; i <= sides; i++ {
		v := verts[(i*step)%sides]
		b.LineTo(v.X, v.Y)
	}
	return b.Path()
}
