package xpath

import (
	"fmt"
)

type PathElementKind int

const (
	/// Move directly to the point without drawing anything, starting the path.
	MoveToKind PathElementKind = iota + 1
	/// Draw a line from the current location to the point.
	LineToKind
	/// Draw a quadratic bezier using the current location and the two points.
	QuadToKind
	/// Draw a cubic bezier using the current location and the three points.
	CubicToKind
	/// Close off the path. Paths describing y(x) can't be closed, but the
	/// kind exists so that general Bézier paths can be represented.
	ClosePathKind
)

// PathElement is a drawing command of a Bézier path. Together with the
// current position, each command other than MoveTo describes one segment.
//
// See [XPath.Elements] and [FromElements].
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	case QuadToKind:
		kind = "QuadTo"
	case CubicToKind:
		kind = "CubicTo"
	case ClosePathKind:
		kind = "ClosePath"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

// EndPoint returns the position of the pen after the element. ClosePath has
// no end point of its own.
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return el.P0, true
	case QuadToKind:
		return el.P1, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func QuadTo(p0, p1 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p0, P1: p1}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}
