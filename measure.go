package epicycle

// Measurer measures paths given in path syntax.
//
// Implementations must be synchronous and safe for concurrent use.
type Measurer interface {
	// Length returns the arc length of the path.
	Length(path string) (float64, error)
	// PointAtDistance returns the point at the given arc length from the start
	// of the path.
	PointAtDistance(path string, distance float64) (Point, error)
}

// NumericMeasurer is a [Measurer] that parses paths and integrates their arc
// length numerically.
type NumericMeasurer struct {
	// The accuracy of arc length computations. Zero means DefaultAccuracy.
	Accuracy float64
}

var _ Measurer = NumericMeasurer{}

func (m NumericMeasurer) accuracy() float64 {
	if m.Accuracy <= 0 {
		return DefaultAccuracy
	}
	return m.Accuracy
}

func (m NumericMeasurer) Length(path string) (float64, error) {
	p, err := ParsePath(path)
	if err != nil {
		return 0, err
	}
	return p.Length(m.accuracy()), nil
}

func (m NumericMeasurer) PointAtDistance(path string, distance float64) (Point, error) {
	p, err := ParsePath(path)
	if err != nil {
		return Point{}, err
	}
	return p.PointAtDistance(distance, m.accuracy()), nil
}
