package epicycle

import (
	"fmt"
	"strconv"
	"strings"
)

type CommandKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind CommandKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a horizontal line from the current location to the x coordinate.
	HorizontalToKind
	// Draw a vertical line from the current location to the y coordinate.
	VerticalToKind
	// Draw a quadratic Bézier using the current location and the two points.
	QuadToKind
	// Draw a cubic Bézier using the current location and the three points.
	CubicToKind
)

func (k CommandKind) String() string {
	switch k {
	case MoveToKind:
		return "MoveTo"
	case LineToKind:
		return "LineTo"
	case HorizontalToKind:
		return "HorizontalTo"
	case VerticalToKind:
		return "VerticalTo"
	case QuadToKind:
		return "QuadTo"
	case CubicToKind:
		return "CubicTo"
	default:
		return "InvalidCommand"
	}
}

// Command is a single drawing instruction of a [Path].
//
// The meaning of the points depends on Kind. The end point is always the last
// point used by the kind: P0 for MoveTo and LineTo, P1 for QuadTo and P2 for
// CubicTo. HorizontalTo only uses P0.X and VerticalTo only uses P0.Y; the other
// coordinate is inherited from the current location.
type Command struct {
	Kind CommandKind
	P0   Point
	P1   Point
	P2   Point
}

func MoveTo(x, y float64) Command {
	return Command{Kind: MoveToKind, P0: Pt(x, y)}
}

func LineTo(x, y float64) Command {
	return Command{Kind: LineToKind, P0: Pt(x, y)}
}

func HorizontalTo(x float64) Command {
	return Command{Kind: HorizontalToKind, P0: Pt(x, 0)}
}

func VerticalTo(y float64) Command {
	return Command{Kind: VerticalToKind, P0: Pt(0, y)}
}

func QuadTo(cx, cy, x, y float64) Command {
	return Command{Kind: QuadToKind, P0: Pt(cx, cy), P1: Pt(x, y)}
}

func CubicTo(c1x, c1y, c2x, c2y, x, y float64) Command {
	return Command{Kind: CubicToKind, P0: Pt(c1x, c1y), P1: Pt(c2x, c2y), P2: Pt(x, y)}
}

// coords returns the numeric arguments of the command, in path syntax order.
func (c Command) coords() []float64 {
	switch c.Kind {
	case MoveToKind, LineToKind:
		return []float64{c.P0.X, c.P0.Y}
	case HorizontalToKind:
		return []float64{c.P0.X}
	case VerticalToKind:
		return []float64{c.P0.Y}
	case QuadToKind:
		return []float64{c.P0.X, c.P0.Y, c.P1.X, c.P1.Y}
	case CubicToKind:
		return []float64{c.P0.X, c.P0.Y, c.P1.X, c.P1.Y, c.P2.X, c.P2.Y}
	default:
		return nil
	}
}

// IsFinite reports whether all coordinates used by the command are finite.
func (c Command) IsFinite() bool {
	for _, v := range c.coords() {
		if !isFinite(v) {
			return false
		}
	}
	return true
}

// End returns the point the command ends at when drawn from the given current
// location.
func (c Command) End(from Point) Point {
	switch c.Kind {
	case MoveToKind, LineToKind:
		return c.P0
	case HorizontalToKind:
		return Pt(c.P0.X, from.Y)
	case VerticalToKind:
		return Pt(from.X, c.P0.Y)
	case QuadToKind:
		return c.P1
	case CubicToKind:
		return c.P2
	default:
		panic(fmt.Sprintf("invalid command kind %v", c.Kind))
	}
}

// Translate returns the command shifted by (dx, dy).
func (c Command) Translate(dx, dy float64) Command {
	v := Vec(dx, dy)
	switch c.Kind {
	case MoveToKind, LineToKind:
		c.P0 = c.P0.Translate(v)
	case HorizontalToKind:
		c.P0.X += dx
	case VerticalToKind:
		c.P0.Y += dy
	case QuadToKind:
		c.P0 = c.P0.Translate(v)
		c.P1 = c.P1.Translate(v)
	case CubicToKind:
		c.P0 = c.P0.Translate(v)
		c.P1 = c.P1.Translate(v)
		c.P2 = c.P2.Translate(v)
	default:
		panic(fmt.Sprintf("invalid command kind %v", c.Kind))
	}
	return c
}

// ToCubic returns an equivalent CubicTo command. MoveTo and CubicTo are
// returned unchanged. The end point of the result is identical to the end point
// of c, not merely close to it.
func (c Command) ToCubic(from Point) Command {
	switch c.Kind {
	case MoveToKind, CubicToKind:
		return c
	case LineToKind, HorizontalToKind, VerticalToKind:
		end := c.End(from)
		cb := Line{from, end}.Seg().Cubic()
		return CubicTo(cb.P1.X, cb.P1.Y, cb.P2.X, cb.P2.Y, end.X, end.Y)
	case QuadToKind:
		cb := QuadBez{from, c.P0, c.P1}.Raise()
		return CubicTo(cb.P1.X, cb.P1.Y, cb.P2.X, cb.P2.Y, c.P1.X, c.P1.Y)
	default:
		panic(fmt.Sprintf("invalid command kind %v", c.Kind))
	}
}

// Segment returns the segment drawn by the command, starting at from. MoveTo
// draws nothing and reports false.
func (c Command) Segment(from Point) (PathSegment, bool) {
	switch c.Kind {
	case MoveToKind:
		return PathSegment{}, false
	case LineToKind, HorizontalToKind, VerticalToKind:
		return Line{from, c.End(from)}.Seg(), true
	case QuadToKind:
		return QuadBez{from, c.P0, c.P1}.Seg(), true
	case CubicToKind:
		return CubicBez{from, c.P0, c.P1, c.P2}.Seg(), true
	default:
		panic(fmt.Sprintf("invalid command kind %v", c.Kind))
	}
}

// Token renders the command in path syntax, for example "Q 1,2 3,4".
func (c Command) Token() string {
	sb := &strings.Builder{}
	c.writeToken(sb)
	return sb.String()
}

func (c Command) String() string {
	return c.Token()
}

func (c Command) writeToken(sb *strings.Builder) {
	format := func(n float64) string {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	pair := func(pt Point) {
		sb.WriteString(format(pt.X))
		sb.WriteByte(',')
		sb.WriteString(format(pt.Y))
	}
	switch c.Kind {
	case MoveToKind:
		sb.WriteString("M ")
		pair(c.P0)
	case LineToKind:
		sb.WriteString("L ")
		pair(c.P0)
	case HorizontalToKind:
		sb.WriteString("H ")
		sb.WriteString(format(c.P0.X))
	case VerticalToKind:
		sb.WriteString("V ")
		sb.WriteString(format(c.P0.Y))
	case QuadToKind:
		sb.WriteString("Q ")
		pair(c.P0)
		sb.WriteByte(' ')
		pair(c.P1)
	case CubicToKind:
		sb.WriteString("C ")
		pair(c.P0)
		sb.WriteByte(' ')
		pair(c.P1)
		sb.WriteByte(' ')
		pair(c.P2)
	default:
		panic("unreachable")
	}
}
