package fourier

import (
	"cmp"
	"math"

	"github.com/emirpasic/gods/trees/binaryheap"

	"honnef.co/go/epicycle"
)

// Extract distributes budget samples along the path, in proportion to arc
// length, and returns them as complex numbers x+iy.
//
// The path is first made connected: wherever a command doesn't start where
// the previous one ended (that is, at a move inside the path), a line is
// inserted to bridge the gap. Each drawing command then becomes its own
// piece, measured with m. [Allocate] assigns sample counts to the pieces, and
// a piece with n samples is sampled at distances i/n of its length for
// i = 0…n−1, so adjacent pieces never sample their shared end point twice.
//
// The result has exactly budget samples unless the path has zero length, in
// which case it is empty.
func Extract(path string, budget int, m epicycle.Measurer) ([]complex128, error) {
	p, err := epicycle.ParsePath(path)
	if err != nil {
		return nil, err
	}
	pieces := connectedPieces(p)

	lengths := make([]float64, len(pieces))
	for i, piece := range pieces {
		l, err := m.Length(piece)
		if err != nil {
			return nil, err
		}
		lengths[i] = l
	}

	counts := Allocate(lengths, budget)
	samples := make([]complex128, 0, max(budget, 0))
	for i, piece := range pieces {
		n := counts[i]
		for j := range n {
			pt, err := m.PointAtDistance(piece, float64(j)/float64(n)*lengths[i])
			if err != nil {
				return nil, err
			}
			samples = append(samples, complex(pt.X, pt.Y))
		}
	}
	epicycle.Logger().Debug("extracted samples",
		"pieces", len(pieces), "budget", budget, "samples", len(samples))
	return samples, nil
}

// connectedPieces splits the path into one-command paths, in path syntax,
// bridging moves with lines.
func connectedPieces(p epicycle.Path) []string {
	var pieces []string
	first := true
	for from, c := range p.Steps() {
		if c.Kind == epicycle.MoveToKind {
			if !first && c.P0 != from {
				pieces = append(pieces, piece(from, epicycle.LineTo(c.P0.X, c.P0.Y)))
			}
			first = false
			continue
		}
		pieces = append(pieces, piece(from, c))
	}
	return pieces
}

func piece(from epicycle.Point, c epicycle.Command) string {
	b := epicycle.NewBuilder().MoveTo(from.X, from.Y).Append(c)
	// Commands of a parsed path are finite and follow a move.
	return b.MustPath().String()
}

// Allocate divides budget among pieces of the given lengths.
//
// Pieces are processed from shortest to longest. A piece of zero length gets
// nothing and consumes nothing. Every other piece gets its proportional share
// of the remaining budget over the remaining length, rounded, but at least
// one; the longest piece absorbs whatever is left. Once the budget is used up,
// the remaining pieces get nothing. Renormalizing after each piece keeps
// rounding errors from accumulating.
//
// The counts sum to budget unless all lengths are zero.
func Allocate(lengths []float64, budget int) []int {
	counts := make([]int, len(lengths))
	if budget <= 0 {
		return counts
	}

	length := func(i int) float64 {
		if l := lengths[i]; l > 0 && !math.IsInf(l, 0) {
			return l
		}
		return 0
	}
	heap := binaryheap.NewWith(func(a, b interface{}) int {
		i, j := a.(int), b.(int)
		if c := cmp.Compare(length(i), length(j)); c != 0 {
			return c
		}
		return cmp.Compare(i, j)
	})
	var lengthAvailable float64
	for i := range lengths {
		heap.Push(i)
		lengthAvailable += length(i)
	}

	available := budget
	for available > 0 {
		v, ok := heap.Pop()
		if !ok {
			break
		}
		i := v.(int)
		l := length(i)
		if l == 0 {
			continue
		}
		var n int
		if heap.Empty() || lengthAvailable <= l {
			n = available
		} else {
			ideal := float64(available) / lengthAvailable * l
			n = min(max(1, int(math.Round(ideal))), available)
		}
		counts[i] = n
		available -= n
		lengthAvailable -= l
	}
	epicycle.Logger().Debug("allocated samples",
		"pieces", len(lengths), "budget", budget, "unused", available)
	return counts
}
