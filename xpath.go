package xpath

import (
	"fmt"
	"io"
	"iter"
	"math"
	"reflect"
	"slices"
)

// XPath is a segmented function y(x).
//
// A path consists of n segments and n+1 knots. Segment i spans the knots i and
// i+1. Paths are built by starting at a point with [XPath.MoveTo] and
// appending segments with [XPath.LineTo], [XPath.QuadTo], [XPath.CubicTo] and
// [XPath.Append], each of which starts at the previous knot and returns the
// path, so that calls can be chained:
//
//	var p xpath.XPath
//	p.MoveTo(0, 0).LineTo(1, 1).QuadTo(1.5, 2, 2, 1)
//
// The first error encountered while building is recorded and returned by
// [XPath.Err]; further appends are ignored until the next MoveTo.
//
// The zero value is an empty path. A path must not be modified while it is
// being evaluated, but a path that is no longer modified can be evaluated
// concurrently.
type XPath struct {
	xs   []float64
	ys   []float64
	segs []Segment
	err  error
}

// New returns a path made of the given segments, where segment i spans the x
// values xs[i] to xs[i+1].
//
// At least len(segs)+1 knots must be provided; additional knots are ignored.
// The y coordinates of the knots are computed by evaluating the segments, the
// first knot with the first segment and every other knot with the segment
// ending at it.
//
// New returns an empty path if segs is empty.
func New(xs []float64, segs []Segment) (*XPath, error) {
	p := &XPath{}
	n := len(segs)
	if n == 0 {
		return p, nil
	}
	if len(xs) < n+1 {
		return nil, fmt.Errorf("%w: %d knots for %d segments, need at least %d",
			ErrInvalidArgument, len(xs), n, n+1)
	}
	for i, seg := range segs {
		if isNil(seg) {
			return nil, fmt.Errorf("%w: segment %d is nil", ErrInvalidArgument, i)
		}
	}

	p.xs = slices.Clone(xs[:n+1])
	p.segs = slices.Clone(segs)
	p.ys = make([]float64, n+1)
	p.ys[0] = segs[0].YAt(p.xs[0])
	for i, seg := range segs {
		p.ys[i+1] = seg.YAt(p.xs[i+1])
	}
	return p, nil
}

// FromElements builds a path from a sequence of path elements. The sequence
// must start with a MoveTo, which must be the only MoveTo, and must not
// contain ClosePath elements.
func FromElements(seq iter.Seq[PathElement]) (*XPath, error) {
	p := &XPath{}
	first := true
	for el := range seq {
		end, ok := el.EndPoint()
		if !ok {
			if el.Kind == ClosePathKind {
				return nil, fmt.Errorf("%w: a function of x can't be closed", ErrInvalidArgument)
			}
			panic(fmt.Sprintf("unhandled case %v", el.Kind))
		}
		switch el.Kind {
		case MoveToKind:
			if !first {
				return nil, fmt.Errorf("%w: path has more than one subpath", ErrInvalidArgument)
			}
			p.MoveTo(end.X, end.Y)
		case LineToKind:
			p.LineTo(end.X, end.Y)
		case QuadToKind:
			p.QuadTo(el.P0.X, el.P0.Y, end.X, end.Y)
		case CubicToKind:
			p.CubicTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y, end.X, end.Y)
		}
		if p.err != nil {
			return nil, p.err
		}
		first = false
	}
	return p, nil
}

// isNil reports whether seg is nil or holds a nil pointer, func, or other
// nilable value, none of which can be evaluated.
func isNil(seg Segment) bool {
	if seg == nil {
		return true
	}
	v := reflect.ValueOf(seg)
	switch v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// MoveTo resets the path to the single knot (x, y), discarding all segments
// and any error.
func (p *XPath) MoveTo(x, y float64) *XPath {
	p.xs = []float64{x}
	p.ys = []float64{y}
	p.segs = nil
	p.err = nil
	return p
}

// LineTo appends a line segment ending at (x, y).
func (p *XPath) LineTo(x, y float64) *XPath {
	p0, ok := p.current("LineTo")
	if !ok {
		return p
	}
	if x == p0.X {
		p.err = fmt.Errorf("LineTo(%g, %g): %w: line is vertical at x=%g", x, y, ErrDegenerateSegment, x)
		return p
	}
	p.push(Line{p0, Pt(x, y)}, Pt(x, y))
	return p
}

// QuadTo appends a quadratic Bézier segment with the control point (x1, y1)
// that ends at (x2, y2).
func (p *XPath) QuadTo(x1, y1, x2, y2 float64) *XPath {
	p0, ok := p.current("QuadTo")
	if !ok {
		return p
	}
	if x2 == p0.X {
		p.err = fmt.Errorf("QuadTo(%g, %g, %g, %g): %w: end points share x=%g",
			x1, y1, x2, y2, ErrDegenerateSegment, x2)
		return p
	}
	p.push(QuadBez{p0, Pt(x1, y1), Pt(x2, y2)}, Pt(x2, y2))
	return p
}

// CubicTo appends a cubic Bézier segment with the control points (x1, y1) and
// (x2, y2) that ends at (x3, y3).
func (p *XPath) CubicTo(x1, y1, x2, y2, x3, y3 float64) *XPath {
	p0, ok := p.current("CubicTo")
	if !ok {
		return p
	}
	if x3 == p0.X {
		p.err = fmt.Errorf("CubicTo(%g, %g, %g, %g, %g, %g): %w: end points share x=%g",
			x1, y1, x2, y2, x3, y3, ErrDegenerateSegment, x3)
		return p
	}
	p.push(CubicBez{p0, Pt(x1, y1), Pt(x2, y2), Pt(x3, y3)}, Pt(x3, y3))
	return p
}

// Append appends an arbitrary segment ending at the knot (x, y). The segment
// is used as is; it is the caller's responsibility that it passes through
// the previous knot.
func (p *XPath) Append(seg Segment, x, y float64) *XPath {
	if _, ok := p.current("Append"); !ok {
		return p
	}
	if isNil(seg) {
		p.err = fmt.Errorf("Append: %w: segment is nil", ErrInvalidArgument)
		return p
	}
	p.push(seg, Pt(x, y))
	return p
}

// current returns the last knot, which starts the next segment. It records an
// error if the path has no knots.
func (p *XPath) current(op string) (Point, bool) {
	if p.err != nil {
		return Point{}, false
	}
	if len(p.xs) == 0 {
		p.err = fmt.Errorf("%s: %w", op, ErrInvalidState)
		return Point{}, false
	}
	return Pt(p.xs[len(p.xs)-1], p.ys[len(p.ys)-1]), true
}

func (p *XPath) push(seg Segment, end Point) {
	p.xs = append(p.xs, end.X)
	p.ys = append(p.ys, end.Y)
	p.segs = append(p.segs, seg)
}

// Err returns the first error encountered while building the path since the
// last call to [XPath.MoveTo].
func (p *XPath) Err() error {
	return p.err
}

// YAt returns y(x).
//
// The segment is found by scanning the knots from the left. A value of x that
// equals an interior knot belongs to the segment ending at that knot. Outside
// of the range of knots, y is extrapolated with the first or last segment. A
// path with a single segment is that segment's function everywhere.
//
// YAt returns NaN for paths without segments.
func (p *XPath) YAt(x float64) float64 {
	n := len(p.segs)
	switch n {
	case 0:
		return math.NaN()
	case 1:
		return p.segs[0].YAt(x)
	}
	i := 0
	for i < n && x > p.xs[i] {
		i++
	}
	i = max(0, min(i-1, n-1))
	return p.segs[i].YAt(x)
}

// Len returns the number of segments.
func (p *XPath) Len() int {
	return len(p.segs)
}

// Knots returns a copy of the knots' x coordinates.
func (p *XPath) Knots() []float64 {
	return slices.Clone(p.xs)
}

// Knot returns the i-th knot.
func (p *XPath) Knot(i int) Point {
	return Pt(p.xs[i], p.ys[i])
}

// Segment returns the i-th segment.
func (p *XPath) Segment(i int) Segment {
	return p.segs[i]
}

// Segments returns an iterator over the segments and their indices.
func (p *XPath) Segments() iter.Seq2[int, Segment] {
	return slices.All(p.segs)
}

// Validate checks the assumptions that evaluation relies on but doesn't
// enforce: that knots are finite and strictly increase in x, and that lines
// and Béziers have finite control points and are monotonic in x. Segments of
// other types are assumed to be valid.
//
// Validate returns the construction error, if there is one. Otherwise, the
// error wraps [ErrNonFinite] or [ErrNotMonotonic].
func (p *XPath) Validate() error {
	if p.err != nil {
		return p.err
	}
	for i := range p.xs {
		if k := p.Knot(i); k.IsInf() || k.IsNaN() {
			return fmt.Errorf("%w: knot %d at %s", ErrNonFinite, i, k)
		}
	}
	for i := 1; i < len(p.xs); i++ {
		if !(p.xs[i] > p.xs[i-1]) {
			return fmt.Errorf("%w: knot %d at x=%g doesn't follow knot %d at x=%g",
				ErrNotMonotonic, i, p.xs[i], i-1, p.xs[i-1])
		}
	}
	for i, seg := range p.segs {
		if f, ok := seg.(finiteChecker); ok && (f.IsInf() || f.IsNaN()) {
			return fmt.Errorf("%w: segment %d (%v)", ErrNonFinite, i, seg)
		}
		m, ok := seg.(interface{ MonotonicX() bool })
		if ok && !m.MonotonicX() {
			return fmt.Errorf("%w: segment %d (%v)", ErrNotMonotonic, i, seg)
		}
	}
	return nil
}

type finiteChecker interface {
	IsInf() bool
	IsNaN() bool
}

// Elements returns the path as a sequence of path elements. Segments that
// aren't lines or Béziers are represented by lines between their knots.
func (p *XPath) Elements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if len(p.xs) == 0 {
			return
		}
		if !yield(MoveTo(p.Knot(0))) {
			return
		}
		for i, seg := range p.segs {
			var el PathElement
			switch seg := seg.(type) {
			case QuadBez:
				el = QuadTo(seg.P1, seg.P2)
			case CubicBez:
				el = CubicTo(seg.P1, seg.P2, seg.P3)
			default:
				el = LineTo(p.Knot(i + 1))
			}
			if !yield(el) {
				return
			}
		}
	}
}

// SVG converts the path to SVG path data. See [SVG].
func (p *XPath) SVG(opts SVGOptions) string {
	return SVG(p.Elements(), opts)
}

// WriteSVG writes the path as SVG path data to w. See [WriteSVG].
func (p *XPath) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, p.Elements(), opts)
}

func (p *XPath) String() string {
	return fmt.Sprintf("XPath(xs=%v, segs=%v)", p.xs, p.segs)
}
