package epicycle

import (
	"errors"
	"fmt"
	"strconv"

	parse "github.com/tdewolff/parse/v2/strconv"
)

// SyntaxError describes malformed path syntax.
type SyntaxError struct {
	// Pos is the 1-based byte offset of the offending input.
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("bad path at position %d: %s", e.Pos, e.Msg)
}

var commandArgs = map[byte]int{
	'M': 2,
	'L': 2,
	'H': 1,
	'V': 1,
	'Q': 4,
	'C': 6,
}

// ParsePath parses the subset of SVG path syntax produced by [Path.String]:
// the absolute, uppercase commands M, L, H, V, Q and C with comma or
// whitespace separated numbers. As in SVG, a command letter may be omitted
// when it repeats, and extra coordinate pairs after M are treated as L.
func ParsePath(s string) (Path, error) {
	path := []byte(s)
	i := skipCommaWhitespace(path)
	if i == len(path) {
		return Path{}, ErrEmptyPath
	}

	var b Builder
	var f [6]float64
	var cmd byte
	for {
		i += skipCommaWhitespace(path[i:])
		if i >= len(path) {
			break
		}

		if !isNumberStart(path[i]) {
			cmd = path[i]
			if _, ok := commandArgs[cmd]; !ok {
				return Path{}, &SyntaxError{Pos: i + 1, Msg: fmt.Sprintf("unsupported command '%c'", cmd)}
			}
			i++
		} else if cmd == 0 {
			return Path{}, &SyntaxError{Pos: i + 1, Msg: "path should start with a command"}
		}

		n := commandArgs[cmd]
		for j := range n {
			i += skipCommaWhitespace(path[i:])
			// The scanner finds the extent of the number; strconv rounds it
			// correctly so that written paths read back unchanged.
			_, m := parse.ParseFloat(path[i:])
			if m == 0 {
				return Path{}, &SyntaxError{
					Pos: i + 1,
					Msg: fmt.Sprintf("sets of %d numbers should follow command '%c'", n, cmd),
				}
			}
			num, err := strconv.ParseFloat(string(path[i:i+m]), 64)
			if err != nil && !errors.Is(err, strconv.ErrRange) {
				return Path{}, &SyntaxError{Pos: i + 1, Msg: fmt.Sprintf("invalid number %q", path[i:i+m])}
			}
			f[j] = num
			i += m
		}

		switch cmd {
		case 'M':
			b.MoveTo(f[0], f[1])
			cmd = 'L'
		case 'L':
			b.LineTo(f[0], f[1])
		case 'H':
			b.HorizontalTo(f[0])
		case 'V':
			b.VerticalTo(f[0])
		case 'Q':
			b.QuadraticTo(f[0], f[1], f[2], f[3])
		case 'C':
			b.CubicTo(f[0], f[1], f[2], f[3], f[4], f[5])
		}
		if b.err != nil {
			return Path{}, b.err
		}
	}
	return b.Path()
}

// MustParsePath is like [ParsePath] but panics on error.
func MustParsePath(s string) Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

func isNumberStart(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}
