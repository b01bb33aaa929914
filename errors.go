package xpath

import "errors"

var (
	// ErrInvalidState is returned when a segment is appended to a path that
	// has no starting point.
	ErrInvalidState = errors.New("xpath: no starting point")
	// ErrInvalidArgument is returned when a path is constructed from
	// inconsistent knots, segments, or path elements.
	ErrInvalidArgument = errors.New("xpath: invalid argument")
	// ErrDegenerateSegment is returned when a segment's end points share the
	// same x coordinate, so that y(x) isn't defined.
	ErrDegenerateSegment = errors.New("xpath: degenerate segment")
	// ErrNotMonotonic is returned by [XPath.Validate] when knots aren't
	// increasing in x or a segment isn't a single-valued function of x.
	ErrNotMonotonic = errors.New("xpath: not monotonic in x")
	// ErrNonFinite is returned by [XPath.Validate] when a knot or control
	// point has an infinite or NaN coordinate.
	ErrNonFinite = errors.New("xpath: non-finite coordinate")
)
