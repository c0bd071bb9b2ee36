package epicycle

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
)

var (
	// ErrEmptyPath is returned when a path would contain no commands.
	ErrEmptyPath = errors.New("path has no commands")
	// ErrMissingMove is returned when a path doesn't start with a MoveTo.
	ErrMissingMove = errors.New("path must start with a move")
	// ErrNonFiniteInput matches every [NonFiniteInputError].
	ErrNonFiniteInput = errors.New("non-finite input")
)

// NonFiniteInputError reports a NaN or infinite coordinate passed to a
// [Builder].
type NonFiniteInputError struct {
	Op     string
	Values []float64
}

func (e *NonFiniteInputError) Error() string {
	return fmt.Sprintf("%s: non-finite input %v", e.Op, e.Values)
}

func (e *NonFiniteInputError) Is(target error) bool {
	return target == ErrNonFiniteInput
}

// Path is an immutable sequence of commands. A valid path always starts with a
// MoveTo, which makes its start point well-defined.
//
// Paths are built with a [Builder], parsed with [ParsePath], or derived from
// other paths. The zero value is an empty path, which is only useful as a
// placeholder.
type Path struct {
	cmds []Command
}

// Len returns the number of commands in the path.
func (p Path) Len() int { return len(p.cmds) }

// At returns the i-th command.
func (p Path) At(i int) Command { return p.cmds[i] }

// IsEmpty reports whether the path has no commands.
func (p Path) IsEmpty() bool { return len(p.cmds) == 0 }

// Commands returns an iterator over the path's commands.
func (p Path) Commands() iter.Seq[Command] { return slices.Values(p.cmds) }

// Steps returns an iterator over the path's commands, each paired with the
// location it is drawn from. The first MoveTo is drawn from its own point.
func (p Path) Steps() iter.Seq2[Point, Command] {
	return func(yield func(Point, Command) bool) {
		var cur option[Point]
		for _, c := range p.cmds {
			from := cur.value
			if !cur.isSet {
				from = c.End(Point{})
			}
			if !yield(from, c) {
				return
			}
			cur.set(c.End(from))
		}
	}
}

// Segments returns an iterator over the drawn segments of the path. MoveTo
// commands don't produce segments.
func (p Path) Segments() iter.Seq[PathSegment] {
	return func(yield func(PathSegment) bool) {
		for from, c := range p.Steps() {
			if seg, ok := c.Segment(from); ok {
				if !yield(seg) {
					return
				}
			}
		}
	}
}

// Start returns the path's start point.
func (p Path) Start() Point {
	if len(p.cmds) == 0 {
		return Point{}
	}
	return p.cmds[0].P0
}

// End returns the point the path ends at.
func (p Path) End() Point {
	var end Point
	for from, c := range p.Steps() {
		end = c.End(from)
	}
	return end
}

// Translate returns a copy of the path shifted by (dx, dy).
func (p Path) Translate(dx, dy float64) Path {
	out := make([]Command, len(p.cmds))
	for i, c := range p.cmds {
		out[i] = c.Translate(dx, dy)
	}
	return Path{cmds: out}
}

// ConvertToCubics returns an equivalent path in which every drawing command is
// a CubicTo. MoveTo commands are kept. All end points are preserved exactly.
func (p Path) ConvertToCubics() Path {
	out := make([]Command, 0, len(p.cmds))
	for from, c := range p.Steps() {
		out = append(out, c.ToCubic(from))
	}
	return Path{cmds: out}
}

// SplitOnMove splits the path at every MoveTo into independent sub-paths, each
// starting with its MoveTo.
func (p Path) SplitOnMove() []Path {
	var out []Path
	start := 0
	for i, c := range p.cmds {
		if c.Kind == MoveToKind && i > start {
			out = append(out, Path{cmds: slices.Clone(p.cmds[start:i])})
			start = i
		}
	}
	if start < len(p.cmds) {
		out = append(out, Path{cmds: slices.Clone(p.cmds[start:])})
	}
	return out
}

// Piece is a path positioned by an offset, as used by [Join].
type Piece struct {
	Dx   float64
	Dy   float64
	Path Path
}

// Join concatenates the translated pieces into a single path.
func Join(pieces ...Piece) (Path, error) {
	var b Builder
	for _, pc := range pieces {
		if pc.Path.IsEmpty() {
			return Path{}, fmt.Errorf("join: %w", ErrEmptyPath)
		}
		for _, c := range pc.Path.cmds {
			b.Append(c.Translate(pc.Dx, pc.Dy))
		}
	}
	return b.Path()
}

// String renders the path in path syntax, with commands separated by spaces.
func (p Path) String() string {
	sb := &strings.Builder{}
	for i, c := range p.cmds {
		if i > 0 {
			sb.WriteByte(' ')
		}
		c.writeToken(sb)
	}
	return sb.String()
}

// CSS renders the path wrapped for use as a CSS path() value.
func (p Path) CSS() string {
	return `path("` + p.String() + `")`
}

// Length returns the arc length of the path.
func (p Path) Length(accuracy float64) float64 {
	var sum float64
	for seg := range p.Segments() {
		sum += seg.Arclen(accuracy)
	}
	return sum
}

// PointAtDistance returns the point at the given arc length from the start of
// the path. Distances are clamped to the path.
func (p Path) PointAtDistance(distance float64, accuracy float64) Point {
	if distance <= 0 {
		return p.Start()
	}
	remaining := distance
	end := p.Start()
	for seg := range p.Segments() {
		l := seg.Arclen(accuracy)
		if l > 0 && remaining <= l {
			return seg.Eval(seg.SolveForArclen(remaining, accuracy))
		}
		remaining -= l
		end = seg.End()
	}
	return end
}

// Builder accumulates commands for a [Path]. Its methods can be chained; the
// first error is recorded and all later calls are ignored.
//
// The zero value is ready to use.
type Builder struct {
	cmds []Command
	err  error
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) MoveTo(x, y float64) *Builder { return b.push("MoveTo", MoveTo(x, y)) }

func (b *Builder) LineTo(x, y float64) *Builder { return b.push("LineTo", LineTo(x, y)) }

func (b *Builder) HorizontalTo(x float64) *Builder {
	return b.push("HorizontalTo", HorizontalTo(x))
}

func (b *Builder) VerticalTo(y float64) *Builder { return b.push("VerticalTo", VerticalTo(y)) }

func (b *Builder) QuadraticTo(cx, cy, x, y float64) *Builder {
	return b.push("QuadraticTo", QuadTo(cx, cy, x, y))
}

func (b *Builder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *Builder {
	return b.push("CubicTo", CubicTo(c1x, c1y, c2x, c2y, x, y))
}

// Append appends an arbitrary command.
func (b *Builder) Append(c Command) *Builder {
	return b.push(c.Kind.String(), c)
}

// AppendFit appends the quadratic of an angle fit. If the builder doesn't
// currently end at the fit's start point, a MoveTo to it is inserted first.
func (b *Builder) AppendFit(f AngleFit) *Builder {
	if cur, ok := b.Current(); !ok || cur != f.From {
		b.MoveTo(f.From.X, f.From.Y)
	}
	return b.push("AppendFit", f.Command())
}

// Current returns the point the commands so far end at.
func (b *Builder) Current() (Point, bool) {
	if len(b.cmds) == 0 {
		return Point{}, false
	}
	return Path{cmds: b.cmds}.End(), true
}

// Err returns the first error encountered, if any.
func (b *Builder) Err() error { return b.err }

// Path returns the built path. The builder may continue to be used; the
// returned path is unaffected by later calls.
func (b *Builder) Path() (Path, error) {
	if b.err != nil {
		return Path{}, b.err
	}
	if len(b.cmds) == 0 {
		return Path{}, ErrEmptyPath
	}
	return Path{cmds: slices.Clone(b.cmds)}, nil
}

// MustPath is like [Builder.Path] but panics on error.
func (b *Builder) MustPath() Path {
	p, err := b.Path()
	if err != nil {
		panic(err)
	}
	return p
}

func (b *Builder) push(op string, c Command) *Builder {
	if b.err != nil {
		return b
	}
	if c.Kind < MoveToKind || c.Kind > CubicToKind {
		b.err = fmt.Errorf("%s: invalid command kind %d", op, int(c.Kind))
		return b
	}
	if !c.IsFinite() {
		b.err = &NonFiniteInputError{Op: op, Values: c.coords()}
		return b
	}
	if len(b.cmds) == 0 && c.Kind != MoveToKind {
		b.err = fmt.Errorf("%s: %w", op, ErrMissingMove)
		return b
	}
	b.cmds = append(b.cmds, c)
	return b
}
