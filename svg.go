package xpath

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// format formats a coordinate, dropping trailing zeros left over from a
// fixed precision.
func (opts SVGOptions) format(n float64) string {
	if opts.MaxPrecision <= 0 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	return s
}

// SVG converts a sequence of path elements, such as the one returned by
// [XPath.Elements], to SVG path data. Plotting the data of a path next to
// sampled values of [XPath.YAt] shows where evaluation departs from the
// drawn curve.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG writes a sequence of path elements to w as SVG path data, one
// absolute command per element. It returns the first write error.
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	space := []byte(" ")
	z := []byte("Z")
	var err error
	write := func(s []byte) {
		if err != nil {
			return
		}
		_, err = w.Write(s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := opts.format
	first := true
	for el := range seq {
		if err != nil {
			return err
		}
		if !first {
			write(space)
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			writef("M%s,%s", format(el.P0.X), format(el.P0.Y))
		case LineToKind:
			writef("L%s,%s", format(el.P0.X), format(el.P0.Y))
		case QuadToKind:
			writef("Q%s,%s %s,%s",
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y))
		case CubicToKind:
			writef("C%s,%s %s,%s %s,%s",
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y),
				format(el.P2.X), format(el.P2.Y))
		case ClosePathKind:
			write(z)
		default:
			panic("unreachable")
		}
	}
	return err
}
